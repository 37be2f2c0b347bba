// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Guess errors
	CodeGuessOutOfRange Code = "GUESS_OUT_OF_RANGE"
	CodeGuessNotANumber Code = "GUESS_NOT_A_NUMBER"

	// Game session errors
	CodeGameInvalidAttemptLimit Code = "GAME_INVALID_ATTEMPT_LIMIT"
	CodeGameSessionFinished     Code = "GAME_SESSION_FINISHED"
)
