package domain

import (
	"errors"
	"fmt"
)

// ErrValidation marks input that failed a domain rule.
var ErrValidation = errors.New("validation failed")

// ErrInvalidField reports a single rejected field.
func ErrInvalidField(field, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, msg)
}
