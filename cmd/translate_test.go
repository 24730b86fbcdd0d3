package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bedrock-bridge/internal/codec"
	"bedrock-bridge/internal/models"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTranslate_ChatRequestFromStdin(t *testing.T) {
	out, err := run(t,
		`{"model":"gpt","messages":[{"role":"user","content":"Hello"},{"role":"user","content":["Hi","there"]}]}`,
		"translate", "chat-request")
	require.NoError(t, err)

	assert.JSONEq(t, `{"model":"bedrock-model","input":"Hello\nHi there","parameters":{"max_tokens":4096}}`, out)
}

func TestTranslate_UsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("bedrock:\n  chat_model: titan-text\n  assistant_role: model\n"), 0o600))
	inPath := filepath.Join(dir, "response.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`{"results":[{"text":"Paris","finish_reason":"stop"}]}`), 0o600))

	out, err := run(t, "", "translate", "chat-response", "--config", cfgPath, "--in", inPath)
	require.NoError(t, err)

	var completion models.ChatCompletion
	require.NoError(t, codec.Unmarshal([]byte(out), &completion))
	assert.NotEmpty(t, completion.ID)
	assert.Equal(t, "titan-text", completion.Model)
	require.Len(t, completion.Choices, 1)
	assert.Equal(t, "model", completion.Choices[0].Message.Role)
	assert.Equal(t, "Paris", completion.Choices[0].Message.Content.Text())
}

func TestTranslate_ZeroDefaultMaxTokensOmitsParameters(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("bedrock:\n  default_max_tokens: 0\n"), 0o600))

	out, err := run(t, `{"model":"gpt","messages":[{"role":"user","content":"Hello"}]}`,
		"translate", "chat-request", "--config", cfgPath)
	require.NoError(t, err)

	assert.JSONEq(t, `{"model":"bedrock-model","input":"Hello"}`, out)
}

func TestTranslate_Stream(t *testing.T) {
	out, err := run(t, `[{"results":[{"text":"a"}]},{"results":[{"text":"b"}]}]`, "translate", "stream")
	require.NoError(t, err)

	var chunks []models.ChatCompletionChunk
	require.NoError(t, codec.Unmarshal([]byte(out), &chunks))
	require.Len(t, chunks, 2)
	assert.Equal(t, chunks[0].ID, chunks[1].ID)
	assert.Equal(t, models.ObjectChatCompletionChunk, chunks[1].Object)
}

func TestTranslate_EmbeddingsResponse(t *testing.T) {
	out, err := run(t, `{"embeddings":[{"values":[0.5,0.25]}]}`, "translate", "embeddings-response")
	require.NoError(t, err)

	var resp models.EmbeddingsResponse
	require.NoError(t, codec.Unmarshal([]byte(out), &resp))
	assert.Equal(t, models.NewUsage(2, 0), resp.Usage)
	assert.Equal(t, []float32{0.5, 0.25}, resp.Data[0].Embedding)
}

func TestTranslate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "unknown kind", args: []string{"translate", "nope"}},
		{name: "missing kind", args: []string{"translate"}},
		{name: "empty input", stdin: "  ", args: []string{"translate", "chat-request"}},
		{name: "malformed input", stdin: `{"messages":`, args: []string{"translate", "chat-request"}},
		{name: "missing file", args: []string{"translate", "chat-request", "--in", filepath.Join(t.TempDir(), "absent.json")}},
		{name: "missing config", stdin: `{}`, args: []string{"translate", "chat-request", "--config", filepath.Join(t.TempDir(), "absent.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.stdin, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestServe_RejectsInvalidPortOverride(t *testing.T) {
	_, err := run(t, "", "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port override")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "bedrock-bridge dev\n", out)
}
