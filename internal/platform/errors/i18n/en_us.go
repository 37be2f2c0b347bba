package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown                 = "UNKNOWN"
	CodeGuessOutOfRange         = "GUESS_OUT_OF_RANGE"
	CodeGuessNotANumber         = "GUESS_NOT_A_NUMBER"
	CodeGameInvalidAttemptLimit = "GAME_INVALID_ATTEMPT_LIMIT"
	CodeGameSessionFinished     = "GAME_SESSION_FINISHED"
)

var enUSCatalog = &Catalog{
	locale: BaseLocale,
	messages: map[Code]string{
		CodeUnknown: "Something went wrong",

		// Guess errors
		CodeGuessOutOfRange: "The guess value was out of 0-100 range",
		CodeGuessNotANumber: "{{.Text}} is not a whole number",

		// Game session errors
		CodeGameInvalidAttemptLimit: "Attempt limit must be greater than zero",
		CodeGameSessionFinished:     "The game is already over",
	},
}

func init() {
	RegisterCatalog(BaseLocale, enUSCatalog)
}
