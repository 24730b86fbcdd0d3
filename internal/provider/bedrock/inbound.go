package bedrock

import (
	"slices"

	"github.com/samber/lo"

	"bedrock-bridge/internal/models"
)

// ChatCompletion maps a Bedrock chat response. Choice i corresponds to result i.
// The completion id is freshly generated on every call; object and created are
// left unset and usage is zero, since Bedrock sends none of them.
func (m *Mapper) ChatCompletion(resp ChatResponse) models.ChatCompletion {
	choices := lo.Map(resp.Results, func(result Result, i int) models.ChatCompletionChoice {
		return models.ChatCompletionChoice{
			Index: uint32(i),
			Message: models.ChatCompletionMessage{
				Role:    m.cfg.AssistantRole,
				Content: models.TextContent(result.Text),
			},
			FinishReason: clonePtr(result.FinishReason),
		}
	})

	return models.ChatCompletion{
		ID:      m.ids.NewID(),
		Model:   m.cfg.ChatModel,
		Choices: choices,
		Usage:   models.Usage{},
	}
}

// Completion maps a Bedrock completions response to a unified text completion.
func (m *Mapper) Completion(resp CompletionsResponse) models.Completion {
	choices := lo.Map(resp.Results, func(result Result, i int) models.CompletionChoice {
		return models.CompletionChoice{
			Text:         result.Text,
			Index:        uint32(i),
			FinishReason: clonePtr(result.FinishReason),
		}
	})

	return models.Completion{
		ID:      m.ids.NewID(),
		Model:   m.cfg.ChatModel,
		Choices: choices,
		Usage:   models.Usage{},
	}
}

// Embeddings maps a Bedrock embeddings response. Bedrock reports no token
// counts, so prompt usage is approximated by the total number of vector
// components; completion usage is always zero.
func (m *Mapper) Embeddings(resp EmbeddingsResponse) models.EmbeddingsResponse {
	components := lo.SumBy(resp.Embeddings, func(e Embedding) uint32 {
		return uint32(len(e.Values))
	})

	data := lo.Map(resp.Embeddings, func(e Embedding, i int) models.Embedding {
		vector := slices.Clone(e.Values)
		if vector == nil {
			vector = []float32{}
		}
		return models.Embedding{
			Object:    models.ObjectEmbedding,
			Embedding: vector,
			Index:     i,
		}
	})

	return models.EmbeddingsResponse{
		Object: models.ObjectList,
		Data:   data,
		Model:  m.cfg.EmbeddingModel,
		Usage:  models.NewUsage(components, 0),
	}
}

// UsageFromMetadata converts Bedrock usage metadata. Negative counts are
// clamped to zero and the total is recomputed as prompt + completion.
func UsageFromMetadata(md UsageMetadata) models.Usage {
	return models.NewUsage(nonNegative(md.PromptTokenCount), nonNegative(md.CompletionTokenCount))
}

func nonNegative(v int32) uint32 {
	return uint32(max(v, 0))
}

// ChatCompletionWithUsage maps resp and attaches usage taken from md.
func (m *Mapper) ChatCompletionWithUsage(resp ChatResponse, md UsageMetadata) models.ChatCompletion {
	return m.ChatCompletion(resp).WithUsage(UsageFromMetadata(md))
}
