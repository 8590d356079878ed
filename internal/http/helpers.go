package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exotravel/exotravel/internal/auth"
)

// Machine-readable error codes carried in the error envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidJSON        = "INVALID_JSON"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// ErrorBody is the inner object of the error envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope is the standard error response shape for all API
// errors: {error: {code, message, details?}}.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// --- Error Response Helpers ---

func respondError(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, ErrorEnvelope{Error: ErrorBody{Code: code, Message: message, Details: details}})
}

func respondValidationError(c *gin.Context, message string, err error) {
	respondError(c, http.StatusBadRequest, CodeValidationError, message, auth.ValidationDetails(err))
}

func respondInvalidJSON(c *gin.Context) {
	respondError(c, http.StatusBadRequest, CodeInvalidJSON, "Request body must be valid JSON", nil)
}

func respondNotFound(c *gin.Context, resource string) {
	respondError(c, http.StatusNotFound, CodeNotFound, resource+" not found", nil)
}

// respondInternalError logs the error and fails closed with a generic
// message; storage-layer details are never exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	respondError(c, http.StatusInternalServerError, CodeInternalError, "internal server error", nil)
}

// --- Request Body Parsing ---

// bindJSON decodes the request body into dst. A syntactically broken
// body yields INVALID_JSON; a well-formed body with a wrongly typed
// field yields VALIDATION_ERROR naming the field. Returns false when
// a response has already been written.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		respondError(c, http.StatusBadRequest, CodeValidationError, "Invalid request data",
			map[string]string{typeErr.Field: "must be a " + typeErr.Type.String()})
		return false
	}

	respondInvalidJSON(c)
	return false
}
