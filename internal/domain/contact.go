package domain

import (
	"context"
	"errors"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Message string `form:"message" validate:"required"`
}

var (
	// ErrMissingFields means at least one of the three fields was absent or
	// empty. The server-side check is authoritative regardless of any
	// validation the client performed.
	ErrMissingFields = errors.New("missing required fields")

	// ErrNotConfigured means the process has no usable SMTP credentials.
	ErrNotConfigured = errors.New("email service is not configured")
)

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and relays a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
