package contactform_test

import (
	"testing"

	"go-portfolio-backend/pkg/contactform"

	"github.com/stretchr/testify/assert"
)

func TestReduceFieldChanged(t *testing.T) {
	var s contactform.State
	s = contactform.Reduce(s, contactform.FieldChanged{Field: "name", Value: "Jane Doe"})
	s = contactform.Reduce(s, contactform.FieldChanged{Field: "email", Value: "jane@x.com"})
	s = contactform.Reduce(s, contactform.FieldChanged{Field: "message", Value: "Hello"})

	assert.Equal(t, contactform.Draft{Name: "Jane Doe", Email: "jane@x.com", Message: "Hello"}, s.Draft)
	assert.Equal(t, contactform.PhaseIdle, s.Phase)

	// Unknown field names are ignored, never a failure
	s2 := contactform.Reduce(s, contactform.FieldChanged{Field: "subject", Value: "x"})
	assert.Equal(t, s.Draft, s2.Draft)
}

func TestReduceSubmitLifecycle(t *testing.T) {
	s := contactform.State{
		Draft:         contactform.Draft{Name: "Jane Doe", Email: "jane@x.com", Message: "Hello"},
		Phase:         contactform.PhaseError,
		StatusMessage: "old failure",
	}

	s = contactform.Reduce(s, contactform.SubmitStarted{})
	assert.Equal(t, contactform.PhaseSubmitting, s.Phase)
	assert.Empty(t, s.StatusMessage)

	t.Run("success clears the draft", func(t *testing.T) {
		done := contactform.Reduce(s, contactform.SubmitSucceeded{Message: "Email sent successfully"})
		assert.Equal(t, contactform.PhaseSuccess, done.Phase)
		assert.Equal(t, "Email sent successfully", done.StatusMessage)
		assert.Equal(t, contactform.Draft{}, done.Draft)
	})

	t.Run("failure preserves the draft for resubmission", func(t *testing.T) {
		done := contactform.Reduce(s, contactform.SubmitFailed{Message: "Failed to send email"})
		assert.Equal(t, contactform.PhaseError, done.Phase)
		assert.Equal(t, "Failed to send email", done.StatusMessage)
		assert.Equal(t, "Jane Doe", done.Draft.Name)
	})
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := contactform.State{Draft: contactform.Draft{Name: "Jane Doe"}}
	_ = contactform.Reduce(before, contactform.SubmitSucceeded{Message: "ok"})
	assert.Equal(t, "Jane Doe", before.Draft.Name)
}
