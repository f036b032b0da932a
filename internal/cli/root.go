// Package cli implements the dapur command line: a terminal presenter for
// recipe generation and a command that runs the HTTP server.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/pageza/dapur-ai/backend/config"
	"github.com/pageza/dapur-ai/backend/internal/logger"
)

const name = "dapur"

// overridden during build with ldflags
var version = "dev"

var logLevelFlag = &cli.StringFlag{
	Name:  "log-level",
	Value: "warn",
	Usage: "log level (debug, info, warn, error)",
}

// NewCommand builds the root command. Rendered results go to out and logs
// go to errOut.
func NewCommand(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     "Recipe ideas from the ingredients you have",
		Version:   version,
		Writer:    out,
		ErrWriter: errOut,
		Flags:     []cli.Flag{logLevelFlag},
		Commands: []*cli.Command{
			generateCmd(out, errOut),
			serveCmd(),
		},
	}
}

// Execute runs the root command with os.Args and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewCommand(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func cliLogger(cmd *cli.Command, out io.Writer) *logrus.Logger {
	return logger.NewWithOutput(&config.Config{LogLevel: cmd.String(logLevelFlag.Name)}, out)
}
