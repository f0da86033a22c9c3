package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ncrpintel/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// classify maps a pipeline or domain error onto an HTTP status and API code.
func classify(err error) (int, string) {
	var extErr *domain.ExtractionError
	switch {
	case errors.As(err, &extErr):
		if extErr.Reason == domain.ExtractUnsupportedFormat {
			return http.StatusBadRequest, string(extErr.Reason)
		}
		return http.StatusUnprocessableEntity, string(extErr.Reason)
	case errors.Is(err, domain.ErrMissingComplaintID):
		return http.StatusUnprocessableEntity, "MISSING_KEY"
	case errors.Is(err, domain.ErrUnsupportedFile):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// HandleError translates pipeline and domain errors to HTTP responses.
func HandleError(c *gin.Context, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	RespondError(c, status, code, msg)
}
