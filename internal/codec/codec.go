// Package codec is the JSON boundary shared by the CLI and the HTTP server.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// ErrEmptyDocument indicates the input held no JSON document at all.
var ErrEmptyDocument = errors.New("empty JSON document")

// api mirrors encoding/json semantics (HTML escaping, sorted map keys, omitempty).
var api = sonic.ConfigStd

// Marshal encodes v as compact JSON.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent encodes v as indented JSON.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes a single JSON document into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// NewEncoder returns a streaming encoder writing to w.
func NewEncoder(w io.Writer) sonic.Encoder {
	return api.NewEncoder(w)
}

// DecodeSingle reads r to EOF and decodes exactly one JSON document into v.
// Trailing non-whitespace data is rejected.
func DecodeSingle(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read JSON document: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyDocument
	}
	if err := api.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode JSON document: %w", err)
	}
	return nil
}
