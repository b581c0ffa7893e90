package handlers

import (
	"errors"
	"net/http"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string            `json:"error" example:"error message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err),
		errors.Is(err, apperrors.ErrInvalidDuration),
		errors.Is(err, apperrors.ErrZeroLengthShift),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidCategory),
		errors.Is(err, apperrors.ErrInvalidPostcode):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	case apperrors.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status it maps to. message is the summary shown
// for server-side failures; client errors show the error itself.
func respondError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	resp := ErrorResponse{Error: err.Error()}

	var verrs apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Error = "Validation failed"
		resp.Fields = verrs.Fields()
	}
	if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
		resp.Error = message
		resp.Details = err.Error()
		logger.WithContext(c.Request.Context()).WithError(err).Error(message)
	}

	c.JSON(status, resp)
}

// bindError reports a request body that could not be decoded
func bindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
}
