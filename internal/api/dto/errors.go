package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError represents a structured error response.
// All error responses from the API use this format for consistency.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Common error codes
const (
	ErrCodeNotFound      = "not_found"
	ErrCodeBadRequest    = "bad_request"
	ErrCodeInternalError = "internal_error"
	ErrCodeValidation    = "validation_error"
	ErrCodeUpstream      = "upstream_error"
)

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}

// NotFoundError creates a not found error response.
func NotFoundError(resource string) APIError {
	return NewAPIError(ErrCodeNotFound, resource+" not found")
}

// BadRequestError creates a bad request error response.
func BadRequestError(message string) APIError {
	return NewAPIError(ErrCodeBadRequest, message)
}

// InternalError creates an internal server error response.
func InternalError() APIError {
	return NewAPIError(ErrCodeInternalError, "an internal error occurred")
}

// UpstreamError creates an error response for a failed upstream call.
func UpstreamError(service string) APIError {
	return NewAPIError(ErrCodeUpstream, service+" request failed")
}

// ValidationError converts a binding failure into a field-keyed error
// response. Non-validator errors fall back to a plain message.
func ValidationError(err error) APIError {
	apiErr := NewAPIError(ErrCodeValidation, "request validation failed")

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		apiErr.Message = err.Error()
		return apiErr
	}

	apiErr.Fields = make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			apiErr.Fields[name] = "is required"
		case "oneof":
			apiErr.Fields[name] = "must be one of: " + fe.Param()
		default:
			apiErr.Fields[name] = "failed " + fe.Tag() + " validation"
		}
	}
	return apiErr
}
