// Package game implements a hi-lo number guessing session on top of guess
// values. A session holds a secret guess, accepts attempts until the secret
// is found or the attempt limit runs out, and answers each attempt with a
// hint pointing at the secret.
package game

import (
	"github.com/emiliagray/guessing/guess"
	apperrors "github.com/emiliagray/guessing/internal/platform/errors"
)

// DefaultMaxAttempts is the attempt limit for a standard 0-100 session.
// Seven binary-search probes always suffice for 101 values, so the game
// stays winnable without being forgiving.
const DefaultMaxAttempts = 7

var (
	// ErrInvalidAttemptLimit indicates a non-positive attempt limit.
	ErrInvalidAttemptLimit = apperrors.New(apperrors.CodeGameInvalidAttemptLimit, "attempt limit must be greater than zero")
	// ErrSessionFinished indicates an attempt against a finished session.
	ErrSessionFinished = apperrors.New(apperrors.CodeGameSessionFinished, "session is already finished")
)

// Hint is the session's answer to a single attempt.
type Hint int

const (
	HintUnspecified Hint = iota
	HintTooLow
	HintTooHigh
	HintCorrect
)

func (h Hint) String() string {
	switch h {
	case HintUnspecified:
		return "Unspecified"
	case HintTooLow:
		return "Too low"
	case HintTooHigh:
		return "Too high"
	case HintCorrect:
		return "Correct"
	default:
		return "Unknown"
	}
}

// State is the coarse lifecycle state of a session.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Session holds the state of a single guessing game.
type Session struct {
	secret      guess.Guess
	maxAttempts int
	attempts    []guess.Guess
	finished    bool
	won         bool
}

// New creates a session around the provided secret.
// maxAttempts must be greater than zero.
func New(secret guess.Guess, maxAttempts int) (*Session, error) {
	if maxAttempts <= 0 {
		return nil, ErrInvalidAttemptLimit
	}
	return &Session{
		secret:      secret,
		maxAttempts: maxAttempts,
	}, nil
}

// NewRandom creates a session with a randomly drawn secret.
func NewRandom(maxAttempts int) (*Session, error) {
	return New(guess.GenRandom(), maxAttempts)
}

// Submit records an attempt and answers with a hint.
// Returns the hint, the session state after the attempt, and an error when
// the session is already finished.
//
// State transitions:
//   - A correct attempt finishes the session as won.
//   - Reaching the attempt limit without a correct attempt finishes it as lost.
func (s *Session) Submit(g guess.Guess) (Hint, State, error) {
	if s.finished {
		return HintUnspecified, s.State(), ErrSessionFinished
	}

	s.attempts = append(s.attempts, g)

	var hint Hint
	switch g.Compare(s.secret) {
	case -1:
		hint = HintTooLow
	case 1:
		hint = HintTooHigh
	default:
		hint = HintCorrect
		s.finished, s.won = true, true
	}

	if !s.won && len(s.attempts) >= s.maxAttempts {
		s.finished = true
	}
	return hint, s.State(), nil
}

// SubmitText parses text into a guess and submits it.
// Parse failures pass through unchanged, so callers can distinguish
// malformed input from out-of-range input with errors.Is; a failed parse
// does not consume an attempt.
func (s *Session) SubmitText(text string) (Hint, State, error) {
	g, err := guess.Parse(text)
	if err != nil {
		return HintUnspecified, s.State(), err
	}
	return s.Submit(g)
}

// State reports the current session state.
func (s *Session) State() State {
	if s.finished {
		if s.won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Attempts returns a copy of the attempts made so far, in order.
func (s *Session) Attempts() []guess.Guess {
	out := make([]guess.Guess, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// AttemptsLeft reports how many attempts remain.
func (s *Session) AttemptsLeft() int {
	if s.finished {
		return 0
	}
	return s.maxAttempts - len(s.attempts)
}

// Secret reveals the secret once the session is finished.
// The boolean is false while the session is still in play.
func (s *Session) Secret() (guess.Guess, bool) {
	if !s.finished {
		return guess.Guess{}, false
	}
	return s.secret, true
}
