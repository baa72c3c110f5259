package selfplay

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrNoGames = errors.New("number of games must be positive")

type moveSearcher interface {
	BestMove(board tictactoe.Board) (tictactoe.Action, error)
}

// Tally counts finished games by outcome.
type Tally struct {
	XWins int `json:"x_wins" yaml:"x_wins"`
	OWins int `json:"o_wins" yaml:"o_wins"`
	Draws int `json:"draws" yaml:"draws"`
}

func (that *Tally) Add(board tictactoe.Board) {
	switch board.Winner() {
	case tictactoe.PlayerX:
		that.XWins++
	case tictactoe.PlayerO:
		that.OWins++
	default:
		that.Draws++
	}
}

func (that Tally) Games() int {
	return that.XWins + that.OWins + that.Draws
}

// Play lets the searcher move for both sides until the game ends.
func Play(searcher moveSearcher, start tictactoe.Board) (tictactoe.Board, []tictactoe.Action, error) {
	board := start
	moves := make([]tictactoe.Action, 0, len(start.LegalActions()))

	for !board.IsTerminal() {
		action, err := searcher.BestMove(board)
		if err != nil {
			return board, nil, fmt.Errorf("failed to find best move: %w", err)
		}

		board, err = board.Apply(action)
		if err != nil {
			return board, nil, fmt.Errorf("failed to apply %s: %w", action, err)
		}

		moves = append(moves, action)
	}

	return board, moves, nil
}

// Run plays games from the initial board on at most workers goroutines.
func Run(ctx context.Context, searcher moveSearcher, games, workers int) (Tally, error) {
	if games <= 0 {
		return Tally{}, ErrNoGames
	}

	if workers <= 0 {
		workers = 1
	}

	var (
		mu    sync.Mutex
		tally Tally
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < games; i++ {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			final, _, err := Play(searcher, tictactoe.InitialState())
			if err != nil {
				return err
			}

			mu.Lock()
			tally.Add(final)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Tally{}, fmt.Errorf("self-play failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Tally{}, fmt.Errorf("self-play interrupted: %w", err)
	}

	return tally, nil
}
