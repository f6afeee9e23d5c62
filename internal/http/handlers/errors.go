package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"poolside/internal/domain"
	"poolside/internal/http/middleware"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
		})
		return
	}
	c.JSON(status, resp)
}

// respondDomainError maps the domain taxonomy onto HTTP statuses.
// Validation failures carry every failing field so the UI can surface
// them all at once; storage faults stay a single generic message.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		var verr domain.ValidationError
		errors.As(err, &verr)
		respondError(c, http.StatusBadRequest, "validation_error", "datos de reserva inválidos", verr.Fields)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsStorage(err):
		// Checked before conflict: a duplicate booking code surfaces
		// as a storage fault, not as a conflict the caller can act on.
		respondError(c, http.StatusBadGateway, "storage_error", "no se pudo guardar la reserva, intenta de nuevo", nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "error inesperado", nil)
	}
}
