package cmd

import (
	"context"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X bedrock-bridge/cmd.Version=...".
var Version = "dev"

// Execute runs the CLI with the provided arguments.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree bound to the given streams.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "bedrock-bridge",
		Short: "Translate between the unified chat schema and Amazon Bedrock payloads",
		Long: heredoc.Doc(`
			bedrock-bridge converts unified (OpenAI-style) chat, completion and
			embedding requests into Bedrock's native payloads, and Bedrock responses
			back into the unified schema.

			It never calls Bedrock. Use "serve" to expose the mappers over HTTP or
			"translate" to convert a single JSON document from a file or stdin.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(
		newServeCommand(),
		newTranslateCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), "bedrock-bridge "+Version+"\n")
			return err
		},
	}
}
