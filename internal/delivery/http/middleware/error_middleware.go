package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// The wrapped cause (e.g. the SMTP failure text) is part of
				// the contract: it rides in the body's "error" field.
				var detail interface{}
				if appErr.Err != nil {
					detail = appErr.Err.Error()
				}
				response.Error(c, appErr.Code, appErr.Message, detail)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side, send a generic message out.
				logger.Log.Error("unhandled error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
