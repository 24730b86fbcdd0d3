package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"bedrock-bridge/internal/idgen"
	"bedrock-bridge/internal/logger"
	"bedrock-bridge/internal/provider/bedrock"
)

const (
	defaultPort             = 8080
	defaultIDFormat         = idgen.FormatUUID
	maxConfiguredMaxTokens  = 1 << 20
	maxAssistantRoleLength  = 64
	maxModelIdentifierBytes = 256
)

// Config represents the application configuration parsed from YAML.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Bedrock BedrockConfig `yaml:"bedrock"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines listener configuration.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// BedrockConfig holds the values stamped onto mapped Bedrock payloads.
type BedrockConfig struct {
	ChatModel        string  `yaml:"chat_model"`
	EmbeddingModel   string  `yaml:"embedding_model"`
	DefaultMaxTokens *uint32 `yaml:"default_max_tokens"`
	AssistantRole    string  `yaml:"assistant_role"`
	IDFormat         string  `yaml:"id_format"`
}

// LoggingConfig controls log output. An empty level defers to LOG_LEVEL, then info.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: defaultPort},
		Bedrock: BedrockConfig{
			ChatModel:      bedrock.DefaultChatModel,
			EmbeddingModel: bedrock.DefaultEmbeddingModel,
			AssistantRole:  bedrock.DefaultAssistantRole,
			IDFormat:       defaultIDFormat,
		},
	}
}

// Load reads YAML configuration from disk, fills unset values from Default and
// validates the result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %q: %w", absPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", absPath, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration, fills unset values from Default and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}

	if err := mergo.Merge(&cfg, Default()); err != nil {
		return Config{}, fmt.Errorf("apply defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs strict sanity checks on the configuration.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid TCP port, got %d", c.Server.Port)
	}

	if err := validateModel("bedrock.chat_model", c.Bedrock.ChatModel); err != nil {
		return err
	}
	if err := validateModel("bedrock.embedding_model", c.Bedrock.EmbeddingModel); err != nil {
		return err
	}

	if limit := c.Bedrock.DefaultMaxTokens; limit != nil && *limit > maxConfiguredMaxTokens {
		return fmt.Errorf("bedrock.default_max_tokens must not exceed %d, got %d", maxConfiguredMaxTokens, *limit)
	}

	role := strings.TrimSpace(c.Bedrock.AssistantRole)
	if role == "" || len(role) > maxAssistantRoleLength {
		return fmt.Errorf("bedrock.assistant_role must be 1-%d characters, got %q", maxAssistantRoleLength, c.Bedrock.AssistantRole)
	}

	if _, err := idgen.New(c.Bedrock.IDFormat); err != nil {
		return fmt.Errorf("bedrock.id_format: %w", err)
	}

	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}

	return nil
}

func validateModel(field, model string) error {
	trimmed := strings.TrimSpace(model)
	if trimmed == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if len(trimmed) > maxModelIdentifierBytes {
		return fmt.Errorf("%s must not exceed %d bytes", field, maxModelIdentifierBytes)
	}
	for _, r := range trimmed {
		if r < 0x21 || r == 0x7f {
			return fmt.Errorf("%s %q must not contain whitespace or control characters", field, model)
		}
	}
	return nil
}

// MapperConfig converts the bedrock section into mapper configuration.
// An unset default_max_tokens resolves to bedrock.DefaultMaxTokens; an explicit 0 disables it.
func (c BedrockConfig) MapperConfig() bedrock.Config {
	maxTokens := bedrock.DefaultMaxTokens
	if c.DefaultMaxTokens != nil {
		maxTokens = *c.DefaultMaxTokens
	}
	return bedrock.Config{
		ChatModel:        strings.TrimSpace(c.ChatModel),
		EmbeddingModel:   strings.TrimSpace(c.EmbeddingModel),
		DefaultMaxTokens: maxTokens,
		AssistantRole:    strings.TrimSpace(c.AssistantRole),
	}
}
