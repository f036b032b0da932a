package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pageza/dapur-ai/backend/config"
	"github.com/pageza/dapur-ai/backend/internal/logger"
	"github.com/pageza/dapur-ai/backend/internal/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server",
		Description: `Starts the JSON API and the web page. Configuration is read from the
environment (and .env outside production); see SERVER_PORT, GEMINI_API_KEY
and GEMINI_MODEL.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return server.Run(ctx, cfg, logger.New(cfg))
		},
	}
}
