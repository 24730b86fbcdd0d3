package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"bedrock-bridge/internal/config"
	"bedrock-bridge/internal/idgen"
	"bedrock-bridge/internal/logger"
	"bedrock-bridge/internal/provider/bedrock"
	"bedrock-bridge/internal/server"
)

func newServeCommand() *cobra.Command {
	var (
		cfgPath      string
		overridePort int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP translation server",
		Long: heredoc.Doc(`
			Start an HTTP server exposing the Bedrock mappers.

			Without --config the built-in defaults are used: port 8080, model
			"bedrock-model", embedding model "bedrock-embedding-model" and a default
			max_tokens of 4096.
		`),
		Example: heredoc.Doc(`
			bedrock-bridge serve --config config.yaml
			bedrock-bridge serve --config config.yaml --port 9090
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("port") {
				if overridePort <= 0 || overridePort > 65535 {
					return fmt.Errorf("port override %d must be a valid TCP port", overridePort)
				}
				cfg.Server.Port = overridePort
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

			srv, err := server.New(cfg, mapper, log)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML configuration file")
	cmd.Flags().IntVar(&overridePort, "port", 0, "override server port from configuration")
	return cmd
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newMapper(cfg config.Config, log zerolog.Logger) (*bedrock.Mapper, error) {
	ids, err := idgen.New(cfg.Bedrock.IDFormat)
	if err != nil {
		return nil, fmt.Errorf("id generator: %w", err)
	}
	return bedrock.NewMapper(cfg.Bedrock.MapperConfig(), ids, bedrock.WithLogger(log)), nil
}
