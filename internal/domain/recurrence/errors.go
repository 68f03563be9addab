package recurrence

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("recurrence validation failed")

	ErrInvalidStartDate       = errors.New("start date is not a valid calendar date")
	ErrInvalidTime            = errors.New("time is not a valid time of day")
	ErrInvalidFrequency       = errors.New("unknown frequency")
	ErrInvalidEndMode         = errors.New("unknown end mode")
	ErrInvalidOccurrenceCount = errors.New("occurrence count must be at least 1")
	ErrOccurrenceCapExceeded  = errors.New("occurrence count exceeds the allowed maximum")
	ErrInvalidUntilDate       = errors.New("until date is not a valid calendar date")
	ErrUntilBeforeStart       = errors.New("until date is before start date")
)

// ValidationError reports a malformed recurrence parameter. It matches both
// ErrValidation and its specific cause with errors.Is.
type ValidationError struct {
	Field string
	Cause error
}

func newValidationError(field string, cause error) *ValidationError {
	return &ValidationError{Field: field, Cause: cause}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Cause.Error())
}

func (e *ValidationError) Unwrap() []error {
	return []error{e.Cause, ErrValidation}
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
