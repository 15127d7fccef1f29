package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(data email.ContactEmailData) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockSender) IsConfigured() bool {
	return m.Called().Bool(0)
}

func TestContactValidation(t *testing.T) {
	validate := validator.New()

	cases := []struct {
		name string
		req  domain.ContactRequest
	}{
		{"empty name", domain.ContactRequest{Email: "jane@x.com", Message: "Hello"}},
		{"empty email", domain.ContactRequest{Name: "Jane Doe", Message: "Hello"}},
		{"empty message", domain.ContactRequest{Name: "Jane Doe", Email: "jane@x.com"}},
		{"all empty", domain.ContactRequest{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockSender := new(MockSender)
			uc := usecase.NewContactUsecase(mockSender, validate)

			err := uc.SendContactMessage(context.Background(), &tc.req)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
			// The transport must never be touched for an invalid draft
			mockSender.AssertNotCalled(t, "Send", mock.Anything)
		})
	}

	t.Run("repeated identical invalid calls fail identically", func(t *testing.T) {
		mockSender := new(MockSender)
		uc := usecase.NewContactUsecase(mockSender, validate)

		req := domain.ContactRequest{Name: "Jane Doe"}
		for i := 0; i < 3; i++ {
			assert.ErrorIs(t, uc.SendContactMessage(context.Background(), &req), domain.ErrMissingFields)
		}
	})
}

func TestContactDispatch(t *testing.T) {
	validate := validator.New()
	req := domain.ContactRequest{Name: "Jane Doe", Email: "jane@x.com", Message: "Hello"}

	t.Run("valid draft is sent once", func(t *testing.T) {
		mockSender := new(MockSender)
		mockSender.On("IsConfigured").Return(true)
		mockSender.On("Send", email.ContactEmailData{
			SenderName:  "Jane Doe",
			SenderEmail: "jane@x.com",
			Message:     "Hello",
		}).Return("<id@host>", nil).Once()

		uc := usecase.NewContactUsecase(mockSender, validate)
		assert.NoError(t, uc.SendContactMessage(context.Background(), &req))
		mockSender.AssertExpectations(t)
	})

	t.Run("transport error surfaces verbatim", func(t *testing.T) {
		mockSender := new(MockSender)
		mockSender.On("IsConfigured").Return(true)
		mockSender.On("Send", mock.Anything).Return("", errors.New("Connection refused")).Once()

		uc := usecase.NewContactUsecase(mockSender, validate)
		err := uc.SendContactMessage(context.Background(), &req)
		assert.Error(t, err)
		assert.Equal(t, "Connection refused", err.Error())
		// Single attempt per invocation, no retry
		mockSender.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("unconfigured sender is reported before composing", func(t *testing.T) {
		mockSender := new(MockSender)
		mockSender.On("IsConfigured").Return(false)

		uc := usecase.NewContactUsecase(mockSender, validate)
		err := uc.SendContactMessage(context.Background(), &req)
		assert.ErrorIs(t, err, domain.ErrNotConfigured)
		mockSender.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("whitespace-only fields still count as present", func(t *testing.T) {
		// The contract rejects empty strings, not blanks.
		mockSender := new(MockSender)
		mockSender.On("IsConfigured").Return(true)
		mockSender.On("Send", mock.Anything).Return("<id@host>", nil)

		uc := usecase.NewContactUsecase(mockSender, validate)
		blank := domain.ContactRequest{Name: " ", Email: " ", Message: " "}
		assert.NoError(t, uc.SendContactMessage(context.Background(), &blank))
	})
}
