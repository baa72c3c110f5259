package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a session between a human and the engine.
type Game struct {
	ID        string             `json:"id"`
	Board     tictactoe.Board    `json:"board"`
	Human     tictactoe.Player   `json:"human"`
	Turn      tictactoe.Player   `json:"turn"`
	Winner    string             `json:"winner"`
	Status    string             `json:"status"`
	Moves     []tictactoe.Action `json:"moves"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func NewGame(id string, human tictactoe.Player) *Game {
	now := time.Now().UTC()

	return &Game{
		ID:        id,
		Board:     tictactoe.InitialState(),
		Human:     human,
		Turn:      tictactoe.PlayerX,
		Status:    StatusOngoing,
		Moves:     []tictactoe.Action{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Engine returns the side played by the engine.
func (that *Game) Engine() tictactoe.Player {
	return that.Human.Opponent()
}

// Play applies the move of whoever is on turn.
func (that *Game) Play(action tictactoe.Action) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	next, err := that.Board.Apply(action)
	if err != nil {
		return fmt.Errorf("failed to apply %s: %w", action, err)
	}

	that.Board = next
	that.Moves = append(that.Moves, action)
	that.UpdatedAt = time.Now().UTC()

	return that.UpdateGameState()
}

// UpdateGameState derives status, winner and turn from the board.
func (that *Game) UpdateGameState() error {
	if !that.Board.IsTerminal() {
		mover, err := that.Board.CurrentMover()
		if err != nil {
			return fmt.Errorf("failed to get current mover: %w", err)
		}

		that.Status = StatusOngoing
		that.Turn = mover

		return nil
	}

	that.Status = StatusFinished
	that.Turn = tictactoe.PlayerNone

	// one player wins or the board is full
	if winner := that.Board.Winner(); winner != tictactoe.PlayerNone {
		that.Winner = winner.String()
	} else {
		that.Winner = PlayerTie
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsHumanTurn() bool {
	return that.IsOngoing() && that.Turn == that.Human
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameOver
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
