package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 3

var ErrMalformedBoard = errors.New("malformed board")

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (that Cell) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Player is the side to move or the side that won. PlayerNone means nobody.
type Player uint8

const (
	PlayerNone Player = iota
	PlayerX
	PlayerO
)

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Mark returns the cell value placed by the player.
func (that Player) Mark() Cell {
	switch that {
	case PlayerX:
		return X
	case PlayerO:
		return O
	default:
		return Empty
	}
}

// Opponent returns the other side. PlayerNone has no opponent.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return PlayerNone
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player

	return nil
}

// ParsePlayer accepts "X", "O" (any case) or an empty string for PlayerNone.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	case "":
		return PlayerNone, nil
	default:
		return PlayerNone, fmt.Errorf("unknown player %q", s)
	}
}

func playerOf(cell Cell) Player {
	switch cell {
	case X:
		return PlayerX
	case O:
		return PlayerO
	default:
		return PlayerNone
	}
}

// Action is a (row, column) coordinate of the cell to mark.
type Action struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (that Action) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Action) inBounds() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// Board is a 3x3 grid stored by value, so every transition yields a copy.
type Board [Size][Size]Cell

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

// String renders the board row-major as nine characters, e.g. "X.O......".
func (that Board) String() string {
	var sb strings.Builder

	for _, row := range that {
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}

// Pretty renders the board as three lines separated by newlines.
func (that Board) Pretty() string {
	s := that.String()

	return s[0:3] + "\n" + s[3:6] + "\n" + s[6:9]
}

func (that Board) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Board) UnmarshalText(text []byte) error {
	board, err := ParseBoard(string(text))
	if err != nil {
		return err
	}

	*that = board

	return nil
}

// ParseBoard reads the text form produced by String. X and O may be given in
// any case, '.', '-' and '_' mark empty cells, '/' and whitespace are ignored.
// Mark counts are not validated here; CurrentMover reports those.
func ParseBoard(s string) (Board, error) {
	var board Board

	n := 0
	for _, r := range s {
		var cell Cell

		switch r {
		case 'x', 'X':
			cell = X
		case 'o', 'O':
			cell = O
		case '.', '-', '_':
			cell = Empty
		case '/', ' ', '\t', '\n', '\r':
			continue
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", ErrMalformedBoard, r)
		}

		if n >= Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrMalformedBoard, Size*Size)
		}

		board[n/Size][n%Size] = cell
		n++
	}

	if n != Size*Size {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedBoard, n, Size*Size)
	}

	return board, nil
}
