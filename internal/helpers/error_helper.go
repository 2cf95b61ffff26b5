package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stadtkapelle/eisenstadt-backend/internal/apperrors"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithAppError maps the error taxonomy onto HTTP statuses. Errors
// outside the taxonomy become a 500 without leaking internals.
func RespondWithAppError(c *gin.Context, err error, customMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		RespondWithError(c, http.StatusBadRequest, customMessage)
	case errors.Is(err, apperrors.ErrNotFound):
		RespondWithError(c, http.StatusNotFound, customMessage)
	case errors.Is(err, apperrors.ErrConflict):
		RespondWithError(c, http.StatusConflict, customMessage)
	default:
		RespondWithError(c, http.StatusInternalServerError, customMessage)
	}
}
