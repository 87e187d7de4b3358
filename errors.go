package resale

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports an unknown shipment or product id. It is always
// returned wrapped, so callers test it with errors.Is.
var ErrNotFound = errors.New("not found")

// ValidationDetail points at the offending field of a rejected input.
type ValidationDetail struct {
	Field   string
	Message string
}

// ValidationError is returned when an operation is rejected before touching
// any state. The book is guaranteed unchanged when one is returned.
type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", d.Field, d.Message))
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
