package models

// ObjectChatCompletionChunk tags streaming chunks.
const ObjectChatCompletionChunk = "chat.completion.chunk"

// ChatCompletionChunk is one incremental piece of a streamed chat completion.
type ChatCompletionChunk struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Created *int64         `json:"created,omitempty"`
	Model   string         `json:"model"`
	Choices []StreamChoice `json:"choices"`
	Usage   *Usage         `json:"usage,omitempty"`
}

// StreamChoice carries the delta for one choice position.
type StreamChoice struct {
	Index        uint32      `json:"index"`
	Delta        ChoiceDelta `json:"delta"`
	FinishReason *string     `json:"finish_reason,omitempty"`
}

// ChoiceDelta is the content increment of a stream choice.
type ChoiceDelta struct {
	Role      *string    `json:"role,omitempty"`
	Content   *string    `json:"content,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}
