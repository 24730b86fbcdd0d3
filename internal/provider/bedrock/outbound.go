package bedrock

import (
	"strings"

	"github.com/bytedance/gg/gptr"
	"github.com/samber/lo"

	"bedrock-bridge/internal/models"
)

const (
	messageSeparator = "\n"
	partSeparator    = " "
)

// ChatRequest flattens a unified chat request into Bedrock's single-input form.
// Each message contributes one line, in message order.
func (m *Mapper) ChatRequest(req models.ChatCompletionRequest) ChatRequest {
	return ChatRequest{
		Model:      m.cfg.ChatModel,
		Input:      m.flattenMessages(req.Messages),
		Parameters: m.parameters(req.MaxTokens, req.Temperature, req.TopP, req.N),
	}
}

// CompletionsRequest maps a unified text completion request. Multiple prompts are joined by newlines.
func (m *Mapper) CompletionsRequest(req models.CompletionRequest) CompletionsRequest {
	return CompletionsRequest{
		Model:      m.cfg.ChatModel,
		Input:      req.Prompt.Text(),
		Parameters: m.parameters(req.MaxTokens, req.Temperature, req.TopP, req.N),
	}
}

// EmbeddingsRequest maps a unified embeddings request, wrapping single input in a one-element list.
func (m *Mapper) EmbeddingsRequest(req models.EmbeddingsRequest) EmbeddingsRequest {
	return EmbeddingsRequest{
		Model: m.cfg.EmbeddingModel,
		Input: req.Input.Texts(),
	}
}

func (m *Mapper) flattenMessages(messages []models.ChatCompletionMessage) string {
	lines := lo.Map(messages, func(msg models.ChatCompletionMessage, i int) string {
		return m.messageText(i, msg)
	})
	return strings.Join(lines, messageSeparator)
}

// messageText never fails: parts that carry no text contribute an empty string.
func (m *Mapper) messageText(index int, msg models.ChatCompletionMessage) string {
	if msg.Content == nil {
		return ""
	}
	if !msg.Content.IsArray() {
		return msg.Content.Text()
	}

	texts := lo.Map(msg.Content.Parts(), func(part models.ChatMessageContentPart, i int) string {
		if part.Type != models.ContentPartTypeText && part.Type != "" {
			m.logger.Debug().
				Int("message_index", index).
				Int("part_index", i).
				Str("type", part.Type).
				Msg("unsupported content part flattened to empty text")
			return ""
		}
		return part.Text
	})
	return strings.Join(texts, partSeparator)
}

// parameters returns nil when no control was supplied and no default applies.
// Negative candidate counts are a caller error and wrap on conversion.
func (m *Mapper) parameters(maxTokens *uint32, temperature, topP *float32, n *int32) *GenerationParameters {
	params := GenerationParameters{
		Temperature: clonePtr(temperature),
		MaxTokens:   clonePtr(maxTokens),
		TopP:        clonePtr(topP),
	}
	if params.MaxTokens == nil && m.cfg.DefaultMaxTokens > 0 {
		params.MaxTokens = gptr.Of(m.cfg.DefaultMaxTokens)
	}
	if n != nil {
		params.N = gptr.Of(uint32(*n))
	}

	if params == (GenerationParameters{}) {
		return nil
	}
	return &params
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return gptr.Of(*p)
}
