// Package bedrock translates between the unified schema and Bedrock's native
// request and response payloads.
//
// Mapping is lossy outbound: conversation structure is flattened into a single
// newline-joined input string and cannot be recovered from the provider request.
// Inbound mapping fabricates what the provider does not send (completion ids,
// object tags, the assistant role) from the Mapper's configuration and its
// injected id generator.
//
// A Mapper holds no mutable state and may be shared by any number of goroutines.
package bedrock

import (
	"github.com/rs/zerolog"

	"bedrock-bridge/internal/idgen"
)

// Defaults applied by DefaultConfig.
const (
	DefaultChatModel             = "bedrock-model"
	DefaultEmbeddingModel        = "bedrock-embedding-model"
	DefaultMaxTokens      uint32 = 4096
	DefaultAssistantRole         = "assistant"
)

// Config carries the values the mapper stamps onto mapped payloads.
type Config struct {
	// ChatModel is attached to chat and completions payloads.
	ChatModel string
	// EmbeddingModel is attached to embeddings payloads.
	EmbeddingModel string
	// DefaultMaxTokens is used when a request sets no max token limit. Zero disables the default.
	DefaultMaxTokens uint32
	// AssistantRole is the role given to every inbound choice; Bedrock results carry none.
	AssistantRole string
}

// DefaultConfig returns the configuration used when nothing is supplied.
func DefaultConfig() Config {
	return Config{
		ChatModel:        DefaultChatModel,
		EmbeddingModel:   DefaultEmbeddingModel,
		DefaultMaxTokens: DefaultMaxTokens,
		AssistantRole:    DefaultAssistantRole,
	}
}

// Mapper converts unified requests to Bedrock requests and Bedrock responses to unified responses.
type Mapper struct {
	cfg    Config
	ids    idgen.Generator
	logger zerolog.Logger
}

// Option customises a Mapper.
type Option func(*Mapper)

// WithLogger reports degraded input (such as unsupported content parts) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Mapper) {
		m.logger = l
	}
}

// NewMapper constructs a mapper. A nil generator falls back to UUIDs; an empty
// AssistantRole falls back to DefaultAssistantRole.
func NewMapper(cfg Config, ids idgen.Generator, opts ...Option) *Mapper {
	if ids == nil {
		ids = idgen.UUID{}
	}
	if cfg.AssistantRole == "" {
		cfg.AssistantRole = DefaultAssistantRole
	}

	m := &Mapper{
		cfg:    cfg,
		ids:    ids,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the mapper configuration.
func (m *Mapper) Config() Config {
	return m.cfg
}
