package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/selfplay"
)

type selfPlayOutput struct {
	Games int            `json:"games" yaml:"games"`
	Tally selfplay.Tally `json:"tally" yaml:"tally"`
}

func newSelfPlayCommand(opts *rootOptions) *cobra.Command {
	var (
		games   int
		workers int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play against itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine := minimax.New(minimax.WithOpeningShortcut(!opts.conf.Engine.FullOpeningSearch))

			opts.logger.Info("self-play started", "games", games, "workers", workers)

			tally, err := selfplay.Run(cmd.Context(), engine, games, workers)
			if err != nil {
				return err
			}

			opts.logger.Info("self-play finished", "draws", tally.Draws)

			return writeOutput(cmd.OutOrStdout(), output, selfPlayOutput{Games: tally.Games(), Tally: tally})
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 10, "number of games to play")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "games played concurrently")
	cmd.Flags().StringVarP(&output, "output", "o", formatJSON, "output format: json or yaml")

	return cmd
}
