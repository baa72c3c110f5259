package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

// WinLines lists every three-in-a-row: rows, then columns, then diagonals.
var WinLines = [8][3]Action{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// CurrentMover returns the side whose turn it is, or PlayerNone when X is due
// but the game is already over.
func (that Board) CurrentMover() (Player, error) {
	xCount, oCount := that.countMarks()

	switch xCount - oCount {
	case 0:
		if that.IsTerminal() {
			return PlayerNone, nil
		}
		return PlayerX, nil
	case 1:
		return PlayerO, nil
	default:
		return PlayerNone, fmt.Errorf("%w: %d X marks and %d O marks", apperror.ErrInvalidState, xCount, oCount)
	}
}

// LegalActions returns every empty cell in row-major order.
func (that Board) LegalActions() []Action {
	actions := make([]Action, 0, Size*Size)

	for row := range that {
		for col, cell := range that[row] {
			if cell == Empty {
				actions = append(actions, Action{Row: row, Col: col})
			}
		}
	}

	return actions
}

// Apply returns the board that results from the current mover marking action.
// The receiver is left untouched.
func (that Board) Apply(action Action) (Board, error) {
	if that.IsTerminal() {
		return that, apperror.ErrGameOver
	}

	if !action.inBounds() {
		return that, fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidAction, action)
	}

	if that[action.Row][action.Col] != Empty {
		return that, fmt.Errorf("%w: cell %s is occupied", apperror.ErrInvalidAction, action)
	}

	mover, err := that.CurrentMover()
	if err != nil {
		return that, err
	}

	next := that
	next[action.Row][action.Col] = mover.Mark()

	return next, nil
}

// Winner reports the side holding a complete line. X is checked before O, so
// a board with lines for both sides (unreachable in play) reports X.
func (that Board) Winner() Player {
	for _, mark := range [2]Cell{X, O} {
		if that.hasLine(mark) {
			return playerOf(mark)
		}
	}

	return PlayerNone
}

func (that Board) hasLine(mark Cell) bool {
	for _, line := range WinLines {
		a, b, c := line[0], line[1], line[2]
		if that[a.Row][a.Col] == mark && that[b.Row][b.Col] == mark && that[c.Row][c.Col] == mark {
			return true
		}
	}

	return false
}

// IsTerminal is true once someone has won or no empty cell remains.
func (that Board) IsTerminal() bool {
	if that.Winner() != PlayerNone {
		return true
	}

	return that.isFull()
}

// Utility scores a finished board from X's point of view: 1, -1 or 0.
func (that Board) Utility() int {
	switch that.Winner() {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}

func (that Board) isFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

func (that Board) countMarks() (int, int) {
	var xCount, oCount int

	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case X:
				xCount++
			case O:
				oCount++
			}
		}
	}

	return xCount, oCount
}
