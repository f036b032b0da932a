package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/pageza/dapur-ai/backend/internal/client"
	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/presenter"
)

// ErrGenerateFailed is returned after an error card has been printed.
var ErrGenerateFailed = errors.New("recipe generation failed")

const defaultServerURL = "http://127.0.0.1:8080"

func generateCmd(out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "Suggest dishes for a list of ingredients",
		ArgsUsage: "<ingredients...>",
		Description: `Sends the ingredients to a running Dapur AI server and prints the suggested
dishes. Arguments are joined with spaces, so both of these work:

  dapur generate nasi, telur, kecap
  dapur generate "nasi, telur, kecap"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Value:   defaultServerURL,
				Usage:   "base URL of the Dapur AI server",
				Sources: cli.EnvVars("DAPUR_SERVER_URL"),
			},
			&cli.StringFlag{
				Name:    "locale",
				Aliases: []string{"l"},
				Value:   string(locale.Default),
				Usage:   fmt.Sprintf("language of the answer (supported values: %s)", locale.Supported()),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 2 * time.Minute,
				Usage: "request timeout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			loc, err := locale.Parse(cmd.String("locale"))
			if err != nil {
				return fmt.Errorf("invalid locale: %w", err)
			}
			msgs := locale.For(loc)

			gen := client.New(cmd.String("server"), loc, client.WithTimeout(cmd.Duration("timeout")))
			vm := presenter.NewViewModel(msgs)
			// Output is printed once the request is over, so the status
			// cleanup is due by then.
			p := presenter.New(gen, vm, msgs, cliLogger(cmd, errOut),
				presenter.WithScheduler(func(_ time.Duration, f func()) { f() }),
			)

			p.Submit(ctx, strings.Join(cmd.Args().Slice(), " "))

			snapshot := vm.Snapshot()
			if err := presenter.RenderText(out, snapshot); err != nil {
				return fmt.Errorf("failed to render result: %w", err)
			}
			if snapshot.Error != "" {
				return ErrGenerateFailed
			}
			return nil
		},
	}
}
