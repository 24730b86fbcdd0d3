package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedrock-bridge/internal/codec"
)

func TestNewUsage(t *testing.T) {
	u := NewUsage(10, 5)
	assert.Equal(t, uint32(15), u.TotalTokens)
	assert.Equal(t, Usage{}, NewUsage(0, 0))
}

func TestWithUsageLeavesOriginal(t *testing.T) {
	original := ChatCompletion{ID: "c1"}
	updated := original.WithUsage(NewUsage(3, 4))

	assert.Equal(t, Usage{}, original.Usage)
	assert.Equal(t, uint32(7), updated.Usage.TotalTokens)

	completion := Completion{ID: "c2"}.WithUsage(NewUsage(1, 1))
	assert.Equal(t, uint32(2), completion.Usage.TotalTokens)
}

func TestChatCompletion_OmitsAbsentFields(t *testing.T) {
	data, err := codec.Marshal(ChatCompletion{ID: "x", Model: "m", Choices: []ChatCompletionChoice{}})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"x","model":"m","choices":[],"usage":{"prompt_tokens":0,"completion_tokens":0,"total_tokens":0}}`, string(data))
}

func TestCompletionPrompt(t *testing.T) {
	var single CompletionPrompt
	require.NoError(t, codec.Unmarshal([]byte(`"only"`), &single))
	assert.Equal(t, "only", single.Text())

	var multi CompletionPrompt
	require.NoError(t, codec.Unmarshal([]byte(`["a","b"]`), &multi))
	assert.Equal(t, "a\nb", multi.Text())

	var bad CompletionPrompt
	assert.ErrorIs(t, bad.UnmarshalJSON([]byte(`{"a":1}`)), errInvalidPrompt)

	data, err := codec.Marshal(single)
	require.NoError(t, err)
	assert.Equal(t, `"only"`, string(data))
}

func TestEmbeddingsInput(t *testing.T) {
	var single EmbeddingsInput
	require.NoError(t, codec.Unmarshal([]byte(`"text"`), &single))
	assert.False(t, single.IsMultiple())
	assert.Equal(t, []string{"text"}, single.Texts())

	var multi EmbeddingsInput
	require.NoError(t, codec.Unmarshal([]byte(`["a","b"]`), &multi))
	assert.True(t, multi.IsMultiple())
	assert.Equal(t, []string{"a", "b"}, multi.Texts())

	var bad EmbeddingsInput
	assert.ErrorIs(t, bad.UnmarshalJSON([]byte(`7`)), errInvalidEmbeddingsInput)
	assert.ErrorIs(t, bad.UnmarshalJSON([]byte(` null `)), errInvalidEmbeddingsInput)

	var req EmbeddingsRequest
	assert.Error(t, codec.Unmarshal([]byte(`{"model":"m","input":null}`), &req))

	data, err := codec.Marshal(EmbeddingsRequest{Model: "m", Input: MultipleInput("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"model":"m","input":["x"]}`, string(data))
}
