package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error object returned on failures.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// SuccessResponse is the acknowledgment body for operations with no payload.
// swagger:model SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode and
// encodes data as the bare response body.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an ErrorResponse with the given code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: &APIError{Code: code, Message: message}})
}
