package helpers

import (
	"encoding/json"
	"net/http"

	"eventsboard/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeBadGateway       = "bad_gateway"
	ErrCodeInternalError    = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// Fields is set for validation failures only.
// swagger:model APIError
type APIError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeError(w, statusCode, &APIError{Code: code, Message: message})
}

// WriteValidationError writes a 400 carrying field-level messages.
func WriteValidationError(w http.ResponseWriter, errs domain.ValidationErrors) {
	writeError(w, http.StatusBadRequest, &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "event form has invalid fields",
		Fields:  errs,
	})
}

func writeError(w http.ResponseWriter, statusCode int, apiErr *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: nil, Error: apiErr})
}
