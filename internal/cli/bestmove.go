package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type bestMoveOutput struct {
	Board  string           `json:"board" yaml:"board"`
	Mover  string           `json:"mover" yaml:"mover"`
	Action tictactoe.Action `json:"action" yaml:"action"`
	Value  int              `json:"value" yaml:"value"`
}

func newBestMoveCommand(opts *rootOptions) *cobra.Command {
	var (
		board  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "bestmove",
		Short: "Print the optimal move for a board",
		Example: `  tictactoe bestmove --board "X.O/.X./..."
  tictactoe bestmove --board XX..O.... --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := tictactoe.ParseBoard(board)
			if err != nil {
				return err
			}

			mover, err := parsed.CurrentMover()
			if err != nil {
				return err
			}

			engine := minimax.New(minimax.WithOpeningShortcut(!opts.conf.Engine.FullOpeningSearch))

			action, err := engine.BestMove(parsed)
			if err != nil {
				return fmt.Errorf("failed to find best move: %w", err)
			}

			value, err := engine.Value(parsed)
			if err != nil {
				return fmt.Errorf("failed to evaluate board: %w", err)
			}

			opts.logger.Debug("best move found", "board", parsed.String(), "action", action.String())

			return writeOutput(cmd.OutOrStdout(), output, bestMoveOutput{
				Board:  parsed.String(),
				Mover:  mover.String(),
				Action: action,
				Value:  value,
			})
		},
	}

	cmd.Flags().StringVarP(&board, "board", "b", "", "board as nine cells row-major, X, O or '.'")
	cmd.Flags().StringVarP(&output, "output", "o", formatJSON, "output format: json or yaml")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}
