package contactform

import (
	"context"
	"errors"
	"sync"
)

// FallbackErrorMessage is shown when the failure was local (network
// unreachable, malformed response) rather than a structured server verdict.
const FallbackErrorMessage = "Failed to send message. Please try again or contact directly via email."

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not finished. The attempt is dropped, not queued.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// Submitter dispatches one draft and returns the relay's verdict.
type Submitter interface {
	Submit(ctx context.Context, d Draft) (*Result, error)
}

// Form ties the reducer to a Submitter and guards against concurrent
// duplicate dispatches: at most one submission is outstanding per instance.
// The UI is expected to disable its submit control while Phase is
// PhaseSubmitting.
type Form struct {
	mu     sync.Mutex
	client Submitter
	state  State
}

// NewForm creates a form with an empty draft in the idle phase.
func NewForm(client Submitter) *Form {
	return &Form{client: client}
}

// State returns a snapshot of the current form state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FieldChange records a user edit to one draft field.
func (f *Form) FieldChange(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = Reduce(f.state, FieldChanged{Field: field, Value: value})
}

// Submit runs one full submission attempt: transition to submitting, send
// the draft, transition to success or error. There is no automatic retry;
// after an error the user resubmits manually.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Phase == PhaseSubmitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.state = Reduce(f.state, SubmitStarted{})
	draft := f.state.Draft
	f.mu.Unlock()

	result, err := f.client.Submit(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case err != nil:
		f.state = Reduce(f.state, SubmitFailed{Message: FallbackErrorMessage})
	case result.Success:
		f.state = Reduce(f.state, SubmitSucceeded{Message: result.Message})
	default:
		msg := result.Message
		if msg == "" {
			msg = FallbackErrorMessage
		}
		f.state = Reduce(f.state, SubmitFailed{Message: msg})
	}
	return nil
}
