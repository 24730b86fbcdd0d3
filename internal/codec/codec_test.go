package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name"`
	Score *int     `json:"score,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

func TestDecodeSingle(t *testing.T) {
	var s sample
	require.NoError(t, DecodeSingle(strings.NewReader(` {"name":"a"} `), &s))
	assert.Equal(t, "a", s.Name)

	assert.ErrorIs(t, DecodeSingle(strings.NewReader("   \n"), &s), ErrEmptyDocument)
	assert.Error(t, DecodeSingle(strings.NewReader(`{"name":"a"}{"name":"b"}`), &s))
	assert.Error(t, DecodeSingle(strings.NewReader(`{"name":`), &s))
}

func TestMarshalOmitsAbsentFields(t *testing.T) {
	data, err := Marshal(sample{Name: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"a"}`, string(data))
}

func TestEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(sample{Name: "x"}))
	assert.JSONEq(t, `{"name":"x"}`, buf.String())

	indented, err := MarshalIndent(sample{Name: "x"}, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(indented), "\n  \"name\"")
}
