package models

import (
	"bytes"
	"errors"
	"slices"

	"bedrock-bridge/internal/codec"
)

// Object tags used by embeddings responses.
const (
	ObjectList      = "list"
	ObjectEmbedding = "embedding"
)

var errInvalidEmbeddingsInput = errors.New("input must be a string or an array of strings")

// EmbeddingsRequest asks for one embedding per input text.
type EmbeddingsRequest struct {
	Model          string          `json:"model"`
	Input          EmbeddingsInput `json:"input"`
	EncodingFormat *string         `json:"encoding_format,omitempty"`
	User           *string         `json:"user,omitempty"`
}

// EmbeddingsInput is either a single text or a list of texts.
type EmbeddingsInput struct {
	single   string
	multiple []string
	isMulti  bool
}

// SingleInput builds single-text input.
func SingleInput(text string) EmbeddingsInput {
	return EmbeddingsInput{single: text}
}

// MultipleInput builds list-form input.
func MultipleInput(texts ...string) EmbeddingsInput {
	return EmbeddingsInput{multiple: slices.Clone(texts), isMulti: true}
}

// IsMultiple reports whether the input was supplied as a list.
func (in EmbeddingsInput) IsMultiple() bool {
	return in.isMulti
}

// Texts returns the input as a list, wrapping a single text in a one-element slice.
func (in EmbeddingsInput) Texts() []string {
	if in.isMulti {
		return slices.Clone(in.multiple)
	}
	return []string{in.single}
}

// MarshalJSON emits a string or an array depending on the input form.
func (in EmbeddingsInput) MarshalJSON() ([]byte, error) {
	if in.isMulti {
		texts := in.multiple
		if texts == nil {
			texts = []string{}
		}
		return codec.Marshal(texts)
	}
	return codec.Marshal(in.single)
}

// UnmarshalJSON accepts a string or an array of strings. null is rejected.
func (in *EmbeddingsInput) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return errInvalidEmbeddingsInput
	}

	var single string
	if err := codec.Unmarshal(data, &single); err == nil {
		*in = SingleInput(single)
		return nil
	}

	var multi []string
	if err := codec.Unmarshal(data, &multi); err == nil {
		*in = EmbeddingsInput{multiple: multi, isMulti: true}
		return nil
	}
	return errInvalidEmbeddingsInput
}

// EmbeddingsResponse carries one embedding record per input.
type EmbeddingsResponse struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// Embedding is a single embedding vector at its input position.
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}
