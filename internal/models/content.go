package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bedrock-bridge/internal/codec"
)

// ContentPartTypeText marks a text content part.
const ContentPartTypeText = "text"

var errInvalidContent = errors.New("invalid message content")

// ChatMessageContent is either a plain string or an ordered list of typed parts.
// The zero value is an empty string.
type ChatMessageContent struct {
	text  string
	parts []ChatMessageContentPart
	array bool
}

// ChatMessageContentPart is one element of array-form content.
type ChatMessageContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL references an image part.
type ImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// TextContent builds string-form content.
func TextContent(text string) *ChatMessageContent {
	return &ChatMessageContent{text: text}
}

// PartsContent builds array-form content.
func PartsContent(parts ...ChatMessageContentPart) *ChatMessageContent {
	return &ChatMessageContent{parts: append([]ChatMessageContentPart(nil), parts...), array: true}
}

// TextPart builds a text content part.
func TextPart(text string) ChatMessageContentPart {
	return ChatMessageContentPart{Type: ContentPartTypeText, Text: text}
}

// IsArray reports whether the content was supplied as a list of parts.
func (c ChatMessageContent) IsArray() bool {
	return c.array
}

// Text returns the string-form content. It is empty for array-form content.
func (c ChatMessageContent) Text() string {
	return c.text
}

// Parts returns a copy of the array-form parts.
func (c ChatMessageContent) Parts() []ChatMessageContentPart {
	if !c.array {
		return nil
	}
	return append([]ChatMessageContentPart(nil), c.parts...)
}

// MarshalJSON emits a JSON string or a JSON array depending on the content form.
func (c ChatMessageContent) MarshalJSON() ([]byte, error) {
	if c.array {
		parts := c.parts
		if parts == nil {
			parts = []ChatMessageContentPart{}
		}
		return codec.Marshal(parts)
	}
	return codec.Marshal(c.text)
}

// UnmarshalJSON accepts a string, or an array whose elements are typed parts or bare strings.
func (c *ChatMessageContent) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*c = ChatMessageContent{}
		return nil
	}

	var text string
	if err := codec.Unmarshal(data, &text); err == nil {
		*c = ChatMessageContent{text: text}
		return nil
	}

	var elements []json.RawMessage
	if err := codec.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("%w: expected string or array", errInvalidContent)
	}

	parts := make([]ChatMessageContentPart, 0, len(elements))
	for i, element := range elements {
		part, err := decodePart(element)
		if err != nil {
			return fmt.Errorf("%w: part[%d]: %v", errInvalidContent, i, err)
		}
		parts = append(parts, part)
	}

	*c = ChatMessageContent{parts: parts, array: true}
	return nil
}

func decodePart(r json.RawMessage) (ChatMessageContentPart, error) {
	var text string
	if err := codec.Unmarshal(r, &text); err == nil {
		return TextPart(text), nil
	}

	var part ChatMessageContentPart
	if err := codec.Unmarshal(r, &part); err != nil {
		return ChatMessageContentPart{}, errors.New("expected string or object")
	}
	return part, nil
}
