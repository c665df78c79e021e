// Package apierrors defines request-level error kinds surfaced to API
// callers. These are user-input or authorization failures, not transient
// infrastructure faults, so they carry no retry semantics.
package apierrors

import "fmt"

// Stable error codes exposed to clients.
const (
	CodeDuplicateEmail        = "DUPLICATE_EMAIL"
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodePasswordMismatch      = "PASSWORD_MISMATCH"
	CodeInvalidOrExpiredToken = "INVALID_OR_EXPIRED_TOKEN"
	CodeNotAuthenticated      = "NOT_AUTHENTICATED"
	CodeInvalidInput          = "INVALID_INPUT"
)

// APIError is an error with a stable code and a caller-facing message.
type APIError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Extensions exposes the stable code to GraphQL error extensions.
func (e *APIError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// NewErrDuplicateEmail reports a signup against an already registered email.
func NewErrDuplicateEmail(email string) *APIError {
	return &APIError{
		Code:    CodeDuplicateEmail,
		Message: fmt.Sprintf("email %s is already taken", email),
	}
}

// NewErrUserNotFound reports a lookup for an unknown email. The message
// echoes the submitted email, matching long-standing client expectations.
func NewErrUserNotFound(email string) *APIError {
	return &APIError{
		Code:    CodeUserNotFound,
		Message: fmt.Sprintf("no such user found for email %s", email),
	}
}

// NewErrInvalidCredentials reports a password that does not match.
func NewErrInvalidCredentials() *APIError {
	return &APIError{
		Code:    CodeInvalidCredentials,
		Message: "invalid password",
	}
}

// NewErrPasswordMismatch reports password/confirmation disagreement.
func NewErrPasswordMismatch() *APIError {
	return &APIError{
		Code:    CodePasswordMismatch,
		Message: "passwords do not match",
	}
}

// NewErrInvalidOrExpiredToken reports a reset token that matched no user
// within the validity window.
func NewErrInvalidOrExpiredToken() *APIError {
	return &APIError{
		Code:    CodeInvalidOrExpiredToken,
		Message: "this token is either invalid or expired",
	}
}

// NewErrNotAuthenticated reports a mutation that requires a signed-in user.
func NewErrNotAuthenticated() *APIError {
	return &APIError{
		Code:    CodeNotAuthenticated,
		Message: "you must be logged in to do that",
	}
}

// NewErrInvalidInput reports malformed caller input.
func NewErrInvalidInput(msg string) *APIError {
	return &APIError{
		Code:    CodeInvalidInput,
		Message: msg,
	}
}
