package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedrock-bridge/internal/codec"
)

func TestChatMessageContent_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantArray bool
		wantText  string
		wantParts []ChatMessageContentPart
	}{
		{
			name:     "string",
			body:     `"hello"`,
			wantText: "hello",
		},
		{
			name:      "bare strings",
			body:      `["Hi","there"]`,
			wantArray: true,
			wantParts: []ChatMessageContentPart{TextPart("Hi"), TextPart("there")},
		},
		{
			name:      "typed parts",
			body:      `[{"type":"text","text":"a"},{"type":"image_url","image_url":{"url":"u"}}]`,
			wantArray: true,
			wantParts: []ChatMessageContentPart{
				TextPart("a"),
				{Type: "image_url", ImageURL: &ImageURL{URL: "u"}},
			},
		},
		{
			name:      "empty array",
			body:      `[]`,
			wantArray: true,
			wantParts: []ChatMessageContentPart{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var content ChatMessageContent
			require.NoError(t, codec.Unmarshal([]byte(tt.body), &content))

			assert.Equal(t, tt.wantArray, content.IsArray())
			assert.Equal(t, tt.wantText, content.Text())
			if tt.wantArray {
				assert.Equal(t, tt.wantParts, content.Parts())
			}
		})
	}
}

func TestChatMessageContent_UnmarshalRejectsOtherShapes(t *testing.T) {
	for _, body := range []string{`42`, `{"text":"x"}`, `[1,2]`} {
		var content ChatMessageContent
		err := content.UnmarshalJSON([]byte(body))
		assert.ErrorIs(t, err, errInvalidContent, body)
	}
}

func TestChatCompletionMessage_JSON(t *testing.T) {
	msg := ChatCompletionMessage{Role: "user", Content: PartsContent(TextPart("a"))}
	data, err := codec.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"user","content":[{"type":"text","text":"a"}]}`, string(data))

	data, err = codec.Marshal(ChatCompletionMessage{Role: "assistant"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"assistant"}`, string(data))

	var decoded ChatCompletionMessage
	require.NoError(t, codec.Unmarshal([]byte(`{"role":"tool","content":null}`), &decoded))
	assert.Equal(t, "tool", decoded.Role)
	assert.True(t, decoded.Content == nil || decoded.Content.Text() == "")
}

func TestPartsContent_CopiesInput(t *testing.T) {
	parts := []ChatMessageContentPart{TextPart("a")}
	content := PartsContent(parts...)
	parts[0].Text = "changed"

	assert.Equal(t, "a", content.Parts()[0].Text)
}
