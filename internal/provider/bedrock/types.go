package bedrock

// ChatRequest is the Bedrock chat completion request payload.
type ChatRequest struct {
	Model      string                `json:"model"`
	Input      string                `json:"input"`
	Parameters *GenerationParameters `json:"parameters,omitempty"`
}

// GenerationParameters are the optional generation controls.
type GenerationParameters struct {
	Temperature *float32 `json:"temperature,omitempty"`
	MaxTokens   *uint32  `json:"max_tokens,omitempty"`
	TopP        *float32 `json:"top_p,omitempty"`
	N           *uint32  `json:"n,omitempty"`
}

// ChatResponse is the Bedrock chat completion response payload.
type ChatResponse struct {
	Results []Result `json:"results"`
}

// Result is one generated text in a response.
type Result struct {
	Text         string  `json:"text"`
	FinishReason *string `json:"finish_reason,omitempty"`
}

// CompletionsRequest shares the chat request wire shape.
type CompletionsRequest struct {
	Model      string                `json:"model"`
	Input      string                `json:"input"`
	Parameters *GenerationParameters `json:"parameters,omitempty"`
}

// CompletionsResponse shares the chat response wire shape.
type CompletionsResponse struct {
	Results []Result `json:"results"`
}

// EmbeddingsRequest is the Bedrock embeddings request payload.
type EmbeddingsRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// EmbeddingsResponse holds one vector per input text, in input order.
type EmbeddingsResponse struct {
	Embeddings []Embedding `json:"embeddings"`
}

// Embedding is a single embedding vector.
type Embedding struct {
	Values []float32 `json:"values"`
}

// StreamChunk is one server-sent piece of a streamed response.
type StreamChunk struct {
	Results []StreamResult `json:"results"`
}

// StreamResult is a text fragment for one result position.
type StreamResult struct {
	Text         string  `json:"text"`
	FinishReason *string `json:"finish_reason,omitempty"`
}

// UsageMetadata is the token accounting block some Bedrock payloads carry.
type UsageMetadata struct {
	PromptTokenCount     int32 `json:"promptTokenCount"`
	CompletionTokenCount int32 `json:"completionTokenCount"`
	TotalTokenCount      int32 `json:"totalTokenCount"`
}
