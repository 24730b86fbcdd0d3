package models

import (
	"errors"
	"strings"

	"bedrock-bridge/internal/codec"
)

var errInvalidPrompt = errors.New("prompt must be a string or an array of strings")

// CompletionPrompt holds one or more prompt strings of a text completion request.
type CompletionPrompt []string

// Text joins the prompt strings with newlines.
func (p CompletionPrompt) Text() string {
	return strings.Join(p, "\n")
}

// MarshalJSON emits a single prompt as a string and multiple prompts as an array.
func (p CompletionPrompt) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return codec.Marshal(p[0])
	}
	return codec.Marshal([]string(p))
}

// UnmarshalJSON accepts a string or an array of strings.
func (p *CompletionPrompt) UnmarshalJSON(data []byte) error {
	var single string
	if err := codec.Unmarshal(data, &single); err == nil {
		*p = CompletionPrompt{single}
		return nil
	}

	var multi []string
	if err := codec.Unmarshal(data, &multi); err == nil {
		*p = CompletionPrompt(multi)
		return nil
	}
	return errInvalidPrompt
}
