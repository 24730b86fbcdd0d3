package bedrock

import (
	"github.com/bytedance/gg/gptr"
	"github.com/samber/lo"

	"bedrock-bridge/internal/models"
)

// StreamMapper maps the chunks of one streamed response. Every chunk it
// produces carries the same completion id.
type StreamMapper struct {
	id    string
	model string
}

// NewStream starts mapping a new stream with a freshly generated id.
func (m *Mapper) NewStream() *StreamMapper {
	return &StreamMapper{
		id:    m.ids.NewID(),
		model: m.cfg.ChatModel,
	}
}

// ID returns the completion id shared by the stream's chunks.
func (s *StreamMapper) ID() string {
	return s.id
}

// Chunk maps one Bedrock stream chunk. Stream choice i corresponds to result i.
func (s *StreamMapper) Chunk(chunk StreamChunk) models.ChatCompletionChunk {
	choices := lo.Map(chunk.Results, func(result StreamResult, i int) models.StreamChoice {
		return models.StreamChoice{
			Index: uint32(i),
			Delta: models.ChoiceDelta{
				Content: gptr.Of(result.Text),
			},
			FinishReason: clonePtr(result.FinishReason),
		}
	})

	return models.ChatCompletionChunk{
		ID:      s.id,
		Object:  models.ObjectChatCompletionChunk,
		Model:   s.model,
		Choices: choices,
	}
}

// Chunks maps a sequence of chunks belonging to the same stream.
func (s *StreamMapper) Chunks(chunks []StreamChunk) []models.ChatCompletionChunk {
	return lo.Map(chunks, func(chunk StreamChunk, _ int) models.ChatCompletionChunk {
		return s.Chunk(chunk)
	})
}
