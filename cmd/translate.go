package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"bedrock-bridge/internal/codec"
	"bedrock-bridge/internal/logger"
	"bedrock-bridge/internal/provider/bedrock"
)

// translateFunc decodes one document and returns the mapped document.
type translateFunc func(m *bedrock.Mapper, r io.Reader) (any, error)

var translators = map[string]translateFunc{
	"chat-request":         mapWith((*bedrock.Mapper).ChatRequest),
	"chat-response":        mapWith((*bedrock.Mapper).ChatCompletion),
	"completions-request":  mapWith((*bedrock.Mapper).CompletionsRequest),
	"completions-response": mapWith((*bedrock.Mapper).Completion),
	"embeddings-request":   mapWith((*bedrock.Mapper).EmbeddingsRequest),
	"embeddings-response":  mapWith((*bedrock.Mapper).Embeddings),
	"stream": mapWith(func(m *bedrock.Mapper, chunks []bedrock.StreamChunk) any {
		return m.NewStream().Chunks(chunks)
	}),
}

func mapWith[In, Out any](fn func(*bedrock.Mapper, In) Out) translateFunc {
	return func(m *bedrock.Mapper, r io.Reader) (any, error) {
		var in In
		if err := codec.DecodeSingle(r, &in); err != nil {
			return nil, err
		}
		return fn(m, in), nil
	}
}

func translateKinds() []string {
	kinds := make([]string, 0, len(translators))
	for kind := range translators {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func newTranslateCommand() *cobra.Command {
	var (
		cfgPath string
		inPath  string
	)

	cmd := &cobra.Command{
		Use:   "translate <kind>",
		Short: "Translate a single JSON document",
		Long: heredoc.Docf(`
			Read one JSON document, map it and print the result as indented JSON.

			Kinds: %s
		`, strings.Join(translateKinds(), ", ")),
		Example: heredoc.Doc(`
			echo '{"model":"x","messages":[{"role":"user","content":"hi"}]}' | bedrock-bridge translate chat-request
			bedrock-bridge translate chat-response --in response.json --config config.yaml
		`),
		Args:      cobra.ExactArgs(1),
		ValidArgs: translateKinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := translators[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q, expected one of %s", args[0], strings.Join(translateKinds(), ", "))
			}

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			log := logger.New(logger.Options{
				Level:  cfg.Logging.Level,
				Pretty: cfg.Logging.Pretty,
				Output: cmd.ErrOrStderr(),
			})
			mapper, err := newMapper(cfg, log)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(cmd, inPath)
			if err != nil {
				return err
			}
			defer closeIn()

			out, err := fn(mapper, in)
			if err != nil {
				return fmt.Errorf("translate %s: %w", args[0], err)
			}

			data, err := codec.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML configuration file")
	cmd.Flags().StringVar(&inPath, "in", "-", `input file, "-" reads stdin`)
	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
