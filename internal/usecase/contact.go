package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	sender   email.Sender
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		validate: validate,
	}
}

// SendContactMessage validates the contact request and relays it as an email.
// One attempt per invocation; a transport failure is reported back, never
// queued or retried.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	// Presence check only. The contract treats "" and absent the same, and
	// deliberately does not reject whitespace or malformed addresses.
	if err := uc.validate.Struct(req); err != nil {
		return domain.ErrMissingFields
	}

	if !uc.sender.IsConfigured() {
		return domain.ErrNotConfigured
	}

	data := email.ContactEmailData{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Message:     req.Message,
	}

	// Returned unwrapped: the delivery layer surfaces the transport message
	// verbatim in the response body.
	if _, err := uc.sender.Send(data); err != nil {
		return err
	}

	return nil
}
