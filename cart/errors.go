package cart

import "errors"

// ErrEmptyOrder is returned when there is nothing to compose, so HTTP
// handlers can answer with a user-facing "nothing to order".
var ErrEmptyOrder = errors.New("nothing to order")

// validationError communicates bad arguments back to HTTP handlers.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

// NewValidationError wraps a caller mistake that should surface as a prompt,
// never as a crash.
func NewValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation helps callers distinguish between caller and infrastructure failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
