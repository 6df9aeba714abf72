package rain

import (
	"errors"
	"fmt"
)

// Domain errors for column construction.
var (
	// ErrLineTooShort indicates a column length below MinLength.
	ErrLineTooShort = errors.New("rain: column length too short")

	// ErrEmptyCharset indicates a source without any glyphs to sample.
	ErrEmptyCharset = errors.New("rain: empty charset")

	// ErrCountdownBounds indicates a non-positive countdown minimum.
	ErrCountdownBounds = errors.New("rain: countdown minimum must be positive")
)

// LengthError wraps ErrLineTooShort with the rejected length.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: got %d, need at least %d", ErrLineTooShort, e.Length, MinLength)
}

func (e *LengthError) Unwrap() error {
	return ErrLineTooShort
}
