package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

type rootOptions struct {
	configPath string

	conf   *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the tictactoe command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Perfect tic-tac-toe play by exhaustive minimax search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			opts.conf = conf
			opts.logger = initLogger(conf, cmd.ErrOrStderr())

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "./config.yml", "path to the config file")

	cmd.AddCommand(
		newServeCommand(opts),
		newBestMoveCommand(opts),
		newSelfPlayCommand(opts),
	)

	return cmd
}

// Execute runs the root command with the process arguments. SIGINT and
// SIGTERM cancel the command context.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}

	return nil
}

// initialize logger.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
