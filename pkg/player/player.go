// Package player is the transport-control state machine behind the project
// demo modal. It owns the playing/muted/fullscreen flags and the progress
// percentage, and drives an injected Media collaborator; the rendering layer
// forwards clicks and the media element's native events here.
package player

import "math"

// Media is the underlying playback element. Implementations wrap whatever
// the frontend runtime provides (a browser video element, a test fake).
type Media interface {
	Play() error
	Pause()
	SetMuted(muted bool)
	// Seek moves the playhead to an absolute time in seconds.
	Seek(seconds float64)
	// Duration reports the media length in seconds; may be 0 or NaN before
	// metadata has loaded.
	Duration() float64
	EnterFullscreen() error
	ExitFullscreen() error
}

// Controller tracks playback state for one modal instance. Not safe for
// concurrent use; the UI event loop serializes calls.
type Controller struct {
	media      Media
	playing    bool
	muted      bool
	fullscreen bool
	progress   float64 // 0..100
}

func NewController(media Media) *Controller {
	return &Controller{media: media}
}

// Open resets playback state. Called whenever the modal transitions from
// closed to open, regardless of prior state.
func (c *Controller) Open() {
	c.playing = false
	c.progress = 0
	c.media.Seek(0)
}

// TogglePlay starts or pauses playback. The playing flag only flips once the
// collaborator accepted the call.
func (c *Controller) TogglePlay() error {
	if c.playing {
		c.media.Pause()
		c.playing = false
		return nil
	}
	if err := c.media.Play(); err != nil {
		return err
	}
	c.playing = true
	return nil
}

// ToggleMute flips the mute flag and pushes it to the media element.
func (c *Controller) ToggleMute() {
	c.muted = !c.muted
	c.media.SetMuted(c.muted)
}

// ToggleFullscreen requests or exits fullscreen. Best-effort: if the request
// is rejected the flag is left unchanged so it cannot desync from reality.
func (c *Controller) ToggleFullscreen() error {
	if c.fullscreen {
		if err := c.media.ExitFullscreen(); err != nil {
			return err
		}
		c.fullscreen = false
		return nil
	}
	if err := c.media.EnterFullscreen(); err != nil {
		return err
	}
	c.fullscreen = true
	return nil
}

// TimeUpdate records the playhead position reported by the media element.
// Events arrive in playback order but the one just before a pause may be
// stale by a frame; duplicates simply overwrite, latest wins.
func (c *Controller) TimeUpdate(currentTime float64) {
	d := c.media.Duration()
	value := currentTime / d * 100
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	c.progress = value
}

// Ended resets the controller when playback runs off the end.
func (c *Controller) Ended() {
	c.playing = false
	c.progress = 0
	c.media.Seek(0)
}

// ClickProgress seeks to the position under a click on the progress bar,
// given the click's x offset and the bar's rendered width.
func (c *Controller) ClickProgress(offsetX, width float64) {
	if width <= 0 {
		return
	}
	fraction := offsetX / width
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	c.media.Seek(fraction * c.media.Duration())
	c.progress = fraction * 100
}

func (c *Controller) Playing() bool     { return c.playing }
func (c *Controller) Muted() bool       { return c.muted }
func (c *Controller) Fullscreen() bool  { return c.fullscreen }
func (c *Controller) Progress() float64 { return c.progress }
