// internal/core/domain/errors.go
package domain

import "errors"

var (
	ErrPhoneNotFound      = errors.New("phone not found")
	ErrPhoneExists        = errors.New("phone already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPricingUnavailable = errors.New("pricing unavailable")
	ErrUnknownPlatform    = errors.New("unknown platform")
	ErrInvalidFeeModel    = errors.New("invalid fee model")
)

// ValidationError reports a malformed or out-of-range input field.
// Message is safe to return to API clients as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
