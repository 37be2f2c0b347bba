package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestIsMatchesByCode(t *testing.T) {
	err := New(CodeGuessOutOfRange, "guess value was out of 0-100 range")
	sentinel := New(CodeGuessOutOfRange, "different message, same code")

	if !stderrors.Is(err, sentinel) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeGuessNotANumber, "guess value was out of 0-100 range")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("invalid syntax")
	err := Wrap(CodeGuessNotANumber, "guess text is not an integer", cause)

	if err.Error() != "guess text is not an integer" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestWrapMatchesThroughChain(t *testing.T) {
	inner := New(CodeGuessOutOfRange, "guess value was out of 0-100 range")
	outer := fmt.Errorf("submit guess: %w", inner)

	if !stderrors.Is(outer, New(CodeGuessOutOfRange, "")) {
		t.Fatal("expected code match through a fmt.Errorf chain")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "range error",
			err:  New(CodeGuessOutOfRange, "guess value was out of 0-100 range"),
			want: "The guess value was out of 0-100 range",
		},
		{
			name: "metadata templating",
			err:  WithMetadata(CodeGuessNotANumber, "guess text is not an integer", map[string]string{"Text": "val"}),
			want: "val is not a whole number",
		},
		{
			name: "non-domain error",
			err:  stderrors.New("disk on fire"),
			want: "Something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err, "en-US"); got != tt.want {
				t.Fatalf("UserMessage = %q, want %q", got, tt.want)
			}
		})
	}
}
