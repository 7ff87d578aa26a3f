package domain

import "errors"

// ============================================================================
// Price Prediction Errors
// ============================================================================

var (
	ErrInvalidMonthRange = errors.New("month_start must not be after month_end")
	ErrEmptyCatalog      = errors.New("catalog allow-list is empty")
)

// ValidationError rejects a request before any coefficient lookup. Message is
// returned to the client verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
