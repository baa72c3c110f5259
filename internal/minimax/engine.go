package minimax

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

// Engine picks optimal moves by searching the whole game tree. It keeps no
// state between calls and may be shared between goroutines.
type Engine struct {
	openingShortcut bool
	intn            func(n int) int
}

type Option func(*Engine)

// WithOpeningShortcut controls whether the empty board gets a random move
// instead of a full search. Enabled by default.
func WithOpeningShortcut(enabled bool) Option {
	return func(e *Engine) {
		e.openingShortcut = enabled
	}
}

// WithRandom replaces the source used to pick the opening move. intn must
// return a value in [0, n) and be safe for concurrent use.
func WithRandom(intn func(n int) int) Option {
	return func(e *Engine) {
		e.intn = intn
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		openingShortcut: true,
		intn:            frand.Intn,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// BestMove returns the action that is optimal for the side to move, assuming
// the opponent also plays optimally. Ties keep the first action in row-major
// order.
func (that *Engine) BestMove(board tictactoe.Board) (tictactoe.Action, error) {
	if board.IsTerminal() {
		return tictactoe.Action{}, apperror.ErrGameOver
	}

	mover, err := board.CurrentMover()
	if err != nil {
		return tictactoe.Action{}, fmt.Errorf("failed to get current mover: %w", err)
	}

	actions := board.LegalActions()

	if that.openingShortcut && board == tictactoe.InitialState() {
		return actions[that.intn(len(actions))], nil
	}

	var (
		best      tictactoe.Action
		bestValue int
	)

	for i, action := range actions {
		next, err := board.Apply(action)
		if err != nil {
			return tictactoe.Action{}, fmt.Errorf("failed to apply %s: %w", action, err)
		}

		var value int
		if mover == tictactoe.PlayerX {
			value, err = minValue(next)
		} else {
			value, err = maxValue(next)
		}
		if err != nil {
			return tictactoe.Action{}, err
		}

		if i == 0 || improves(mover, value, bestValue) {
			best, bestValue = action, value
		}
	}

	return best, nil
}

// Value returns the minimax value of the board from X's point of view.
func (that *Engine) Value(board tictactoe.Board) (int, error) {
	mover, err := board.CurrentMover()
	if err != nil {
		return 0, fmt.Errorf("failed to get current mover: %w", err)
	}

	if mover == tictactoe.PlayerO {
		return minValue(board)
	}

	return maxValue(board)
}

func improves(mover tictactoe.Player, value, best int) bool {
	if mover == tictactoe.PlayerX {
		return value > best
	}

	return value < best
}

func maxValue(board tictactoe.Board) (int, error) {
	if board.IsTerminal() {
		return board.Utility(), nil
	}

	best := -2
	for _, action := range board.LegalActions() {
		next, err := board.Apply(action)
		if err != nil {
			return 0, fmt.Errorf("failed to apply %s: %w", action, err)
		}

		value, err := minValue(next)
		if err != nil {
			return 0, err
		}

		best = max(best, value)
	}

	return best, nil
}

func minValue(board tictactoe.Board) (int, error) {
	if board.IsTerminal() {
		return board.Utility(), nil
	}

	best := 2
	for _, action := range board.LegalActions() {
		next, err := board.Apply(action)
		if err != nil {
			return 0, fmt.Errorf("failed to apply %s: %w", action, err)
		}

		value, err := maxValue(next)
		if err != nil {
			return 0, err
		}

		best = min(best, value)
	}

	return best, nil
}
