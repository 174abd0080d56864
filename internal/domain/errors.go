package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors, for use with errors.Is().
var (
	// ErrRecordNotFound is returned when a record id resolves to nothing.
	ErrRecordNotFound = errors.New("record not found")

	// ErrNameRequired is returned when ID allocation is attempted without a name.
	ErrNameRequired = errors.New("name is required")

	// ErrHireDateInvalid is returned when ID allocation cannot derive a year
	// from the hire date.
	ErrHireDateInvalid = errors.New("hire date missing or unparseable")

	// ErrSuffixesExhausted is returned when every candidate suffix collided
	// within the retry bound. The caller should surface this as retryable;
	// the 100-slot suffix space per (initials, year) genuinely can fill up.
	ErrSuffixesExhausted = errors.New("exhausted retries")

	// ErrSearchDisabled is returned when no search index is configured.
	ErrSearchDisabled = errors.New("search index not configured")
)

// ValidationError reports a missing or malformed mandatory field.
// Recoverable: the user corrects the input and retries.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// GenerationError reports a failed participant-ID allocation.
type GenerationError struct {
	Name string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("gip id generation for %q: %v", e.Name, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// IsClientError reports whether the error is due to invalid client input.
func IsClientError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRetryable reports whether retrying the same request might succeed.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrSuffixesExhausted)
}
