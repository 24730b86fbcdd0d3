package models

// Usage records token accounting information.
type Usage struct {
	PromptTokens            uint32                   `json:"prompt_tokens"`
	CompletionTokens        uint32                   `json:"completion_tokens"`
	TotalTokens             uint32                   `json:"total_tokens"`
	PromptTokensDetails     *PromptTokensDetails     `json:"prompt_tokens_details,omitempty"`
	CompletionTokensDetails *CompletionTokensDetails `json:"completion_tokens_details,omitempty"`
}

// PromptTokensDetails breaks down prompt token usage.
type PromptTokensDetails struct {
	CachedTokens uint32 `json:"cached_tokens"`
	AudioTokens  uint32 `json:"audio_tokens"`
}

// CompletionTokensDetails breaks down completion token usage.
type CompletionTokensDetails struct {
	ReasoningTokens uint32 `json:"reasoning_tokens"`
	AudioTokens     uint32 `json:"audio_tokens"`
}

// NewUsage builds a usage record whose total is prompt + completion.
func NewUsage(prompt, completion uint32) Usage {
	return Usage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
	}
}
