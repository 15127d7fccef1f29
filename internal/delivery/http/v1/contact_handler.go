package v1

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form submission to the site owner's inbox. Public endpoint.
// @Tags         contact
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        name     formData  string  true  "Submitter name"
// @Param        email    formData  string  true  "Submitter email (used as Reply-To)"
// @Param        message  formData  string  true  "Message body"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Absent and empty fields are equivalent, so missing keys simply bind to
	// "" and fail the usecase's presence check.
	req := domain.ContactRequest{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.Error(apperror.BadRequest("Missing required fields"))
		case errors.Is(err, domain.ErrNotConfigured):
			c.Error(apperror.Unavailable("Contact service temporarily unavailable"))
		default:
			c.Error(apperror.New(http.StatusInternalServerError, "Failed to send email", err))
		}
		return
	}

	response.Success(c, http.StatusOK, "Email sent successfully", nil)
}
