package models

// ChatCompletionRequest is the canonical representation of a chat completion request.
type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	Temperature *float32                `json:"temperature,omitempty"`
	TopP        *float32                `json:"top_p,omitempty"`
	N           *int32                  `json:"n,omitempty"`
	Stream      *bool                   `json:"stream,omitempty"`
	Stop        []string                `json:"stop,omitempty"`
	MaxTokens   *uint32                 `json:"max_tokens,omitempty"`
	User        *string                 `json:"user,omitempty"`
}

// ChatCompletionMessage represents a single conversational message in the unified schema.
type ChatCompletionMessage struct {
	Role      string              `json:"role"`
	Content   *ChatMessageContent `json:"content,omitempty"`
	Name      *string             `json:"name,omitempty"`
	ToolCalls []ToolCall          `json:"tool_calls,omitempty"`
}

// ToolCall is a function invocation requested by the assistant.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the function name and its JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ChatCompletion captures a provider response in the unified schema.
type ChatCompletion struct {
	ID                string                 `json:"id"`
	Object            *string                `json:"object,omitempty"`
	Created           *int64                 `json:"created,omitempty"`
	Model             string                 `json:"model"`
	Choices           []ChatCompletionChoice `json:"choices"`
	Usage             Usage                  `json:"usage"`
	SystemFingerprint *string                `json:"system_fingerprint,omitempty"`
}

// ChatCompletionChoice represents a single choice in a chat completion.
type ChatCompletionChoice struct {
	Index        uint32                `json:"index"`
	Message      ChatCompletionMessage `json:"message"`
	FinishReason *string               `json:"finish_reason,omitempty"`
	Logprobs     any                   `json:"logprobs,omitempty"`
}

// WithUsage returns a copy of the completion carrying the given usage.
func (c ChatCompletion) WithUsage(usage Usage) ChatCompletion {
	c.Usage = usage
	return c
}

// CompletionRequest represents a legacy text completion request.
type CompletionRequest struct {
	Model       string           `json:"model"`
	Prompt      CompletionPrompt `json:"prompt"`
	Temperature *float32         `json:"temperature,omitempty"`
	TopP        *float32         `json:"top_p,omitempty"`
	N           *int32           `json:"n,omitempty"`
	Stream      *bool            `json:"stream,omitempty"`
	MaxTokens   *uint32          `json:"max_tokens,omitempty"`
	User        *string          `json:"user,omitempty"`
}

// Completion captures a legacy text completion response.
type Completion struct {
	ID      string             `json:"id"`
	Object  *string            `json:"object,omitempty"`
	Created *int64             `json:"created,omitempty"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   Usage              `json:"usage"`
}

// CompletionChoice represents a single text completion choice.
type CompletionChoice struct {
	Text         string  `json:"text"`
	Index        uint32  `json:"index"`
	FinishReason *string `json:"finish_reason,omitempty"`
	Logprobs     any     `json:"logprobs,omitempty"`
}

// WithUsage returns a copy of the completion carrying the given usage.
func (c Completion) WithUsage(usage Usage) Completion {
	c.Usage = usage
	return c
}
