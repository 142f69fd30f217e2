package common

import "errors"

// Error codes for the gateway's failure taxonomy.
const (
	CodeValidationError = "validation_error"
	CodeUpstreamError   = "upstream_error"
	CodeAuthError       = "auth_error"
)

// Error represents a standardized error with code and message
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError creates a new Error instance
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates an Error for rejected input.
func NewValidationError(message string) *Error {
	return NewError(CodeValidationError, message)
}

// NewUpstreamError creates an Error for a failed or malformed upstream query.
func NewUpstreamError(message string) *Error {
	return NewError(CodeUpstreamError, message)
}

// NewAuthError creates an Error for a rejected admin credential.
func NewAuthError(message string) *Error {
	return NewError(CodeAuthError, message)
}

// IsValidationError reports whether err carries the validation_error code.
func IsValidationError(err error) bool {
	return hasCode(err, CodeValidationError)
}

// IsUpstreamError reports whether err carries the upstream_error code.
func IsUpstreamError(err error) bool {
	return hasCode(err, CodeUpstreamError)
}

func hasCode(err error, code string) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsEmpty checks if the error is empty (no error)
func (e *Error) IsEmpty() bool {
	return e == nil || e.Code == ""
}

// String returns the string representation of the error
func (e *Error) String() string {
	if e == nil {
		return ""
	}
	return e.Code + ": " + e.Message
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.String()
}
