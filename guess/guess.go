// Package guess provides a validated bounded value for number guessing games.
//
// A Guess wraps an integer that is guaranteed to stay within the 0-100
// range for its entire lifetime. Construction and parsing are the only ways
// to obtain one, and both validate their input, so downstream code never has
// to re-check the bound. Guesses are immutable and safe to read from
// concurrent goroutines.
package guess

import (
	"strconv"
	"strings"

	apperrors "github.com/emiliagray/guessing/internal/platform/errors"
)

const (
	// MinValue is the smallest value a Guess can hold.
	MinValue = 0
	// MaxValue is the largest value a Guess can hold.
	MaxValue = 100
)

var (
	// ErrOutOfRange indicates an integer outside the 0-100 range.
	ErrOutOfRange = apperrors.New(apperrors.CodeGuessOutOfRange, "guess value was out of 0-100 range")
	// ErrNotANumber indicates text that does not parse as a base-10 integer.
	ErrNotANumber = apperrors.New(apperrors.CodeGuessNotANumber, "guess text is not an integer")
)

// Guess holds a single guessed number within the 0-100 range.
// The zero value is a valid Guess holding 0.
type Guess struct {
	value int
}

// New creates a Guess from the provided value.
// Values outside the 0-100 range return ErrOutOfRange.
func New(value int) (Guess, error) {
	if value < MinValue || value > MaxValue {
		return Guess{}, ErrOutOfRange
	}
	return Guess{value: value}, nil
}

// Parse creates a Guess from text, trimming surrounding whitespace first.
//
// Two failure kinds are possible and callers can tell them apart with
// errors.Is:
//
//   - ErrNotANumber when the trimmed text is not a base-10 integer
//     (empty input, stray characters, fractions, or overflow);
//   - ErrOutOfRange when the text is a valid integer outside 0-100.
func Parse(text string) (Guess, error) {
	trimmed := strings.TrimSpace(text)
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return Guess{}, apperrors.WrapWithMetadata(
			apperrors.CodeGuessNotANumber,
			"guess text is not an integer",
			map[string]string{"Text": trimmed},
			err,
		)
	}
	return New(value)
}

// Value returns the number stored in the guess.
func (g Guess) Value() int {
	return g.value
}

// Equal reports whether both guesses hold the same value.
func (g Guess) Equal(other Guess) bool {
	return g.value == other.value
}

// Compare orders two guesses by their values.
// It returns -1 when g is smaller, 0 when equal, and +1 when greater.
func (g Guess) Compare(other Guess) int {
	switch {
	case g.value < other.value:
		return -1
	case g.value > other.value:
		return 1
	default:
		return 0
	}
}

// String renders the guessed number in decimal.
func (g Guess) String() string {
	return strconv.Itoa(g.value)
}
