// Package contactform holds the client-side half of the contact pipeline:
// the form's draft and status live in an explicit state struct advanced by a
// pure reducer, and a small HTTP client carries one submission at a time to
// the relay endpoint. The rendering layer re-reads State after each event.
package contactform

// Draft is the in-progress, unsent form data. It lives only in memory and is
// cleared after a successful submission.
type Draft struct {
	Name    string
	Email   string
	Message string
}

// Phase is the lifecycle of the current submission attempt. Exactly one
// phase is active at a time.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseError
)

// State is the whole observable state of the form.
type State struct {
	Draft         Draft
	Phase         Phase
	StatusMessage string
}

// Event is something that happened to the form: a keystroke, a submit, or
// the verdict of a submission.
type Event interface{ isEvent() }

// FieldChanged updates one draft field. It never fails and has no
// validation side effect.
type FieldChanged struct {
	Field string // "name", "email" or "message"
	Value string
}

// SubmitStarted marks the beginning of a submission attempt.
type SubmitStarted struct{}

// SubmitSucceeded carries the server-supplied confirmation message.
type SubmitSucceeded struct{ Message string }

// SubmitFailed carries the message to show the user; the draft is preserved
// so they can resubmit.
type SubmitFailed struct{ Message string }

func (FieldChanged) isEvent()    {}
func (SubmitStarted) isEvent()   {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}

// Reduce returns the state that follows ev. The input state is not mutated.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case FieldChanged:
		switch e.Field {
		case "name":
			s.Draft.Name = e.Value
		case "email":
			s.Draft.Email = e.Value
		case "message":
			s.Draft.Message = e.Value
		}
	case SubmitStarted:
		s.Phase = PhaseSubmitting
		s.StatusMessage = ""
	case SubmitSucceeded:
		s.Phase = PhaseSuccess
		s.StatusMessage = e.Message
		s.Draft = Draft{}
	case SubmitFailed:
		s.Phase = PhaseError
		s.StatusMessage = e.Message
	}
	return s
}
