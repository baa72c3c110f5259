package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

func mustParse(t *testing.T, s string) tictactoe.Board {
	t.Helper()

	board, err := tictactoe.ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestNewGame(t *testing.T) {
	// When: create a new game where the human plays O
	game := NewGame("123", tictactoe.PlayerO)

	// Then: the game starts empty with X on turn
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, tictactoe.InitialState(), game.Board)
	assert.Equal(t, tictactoe.PlayerX, game.Turn)
	assert.Equal(t, tictactoe.PlayerX, game.Engine())
	assert.Equal(t, StatusOngoing, game.Status)
	assert.Empty(t, game.Winner)
	assert.Empty(t, game.Moves)
	assert.False(t, game.IsHumanTurn())
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it is finished and not ongoing
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// Then: it is ongoing and not finished
		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameOver when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameOver)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrUnknownGameStatus
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("X wins", func(t *testing.T) {
		// Given: a game where X has a winning combination
		game := &Game{Board: mustParse(t, "XXX/OO./..."), Status: StatusOngoing, Turn: tictactoe.PlayerO}

		// When: updating the game state
		require.NoError(t, game.UpdateGameState())

		// Then: the game should be finished with X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, tictactoe.PlayerNone, game.Turn)
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a full board without a line
		game := &Game{Board: mustParse(t, "XOX/XOO/OXX"), Status: StatusOngoing}

		// When: updating the game state
		require.NoError(t, game.UpdateGameState())

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
	})

	t.Run("Game continues", func(t *testing.T) {
		game := &Game{Board: mustParse(t, "X...O..X."), Status: StatusOngoing}

		require.NoError(t, game.UpdateGameState())

		assert.Equal(t, StatusOngoing, game.Status)
		assert.Empty(t, game.Winner)
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
	})

	t.Run("Malformed board", func(t *testing.T) {
		game := &Game{Board: mustParse(t, "XX......."), Status: StatusOngoing}

		require.ErrorIs(t, game.UpdateGameState(), apperror.ErrInvalidState)
	})
}

func TestGame_Play(t *testing.T) {
	t.Run("Successful move", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", tictactoe.PlayerX)

		// When: X takes the centre
		err := game.Play(tictactoe.Action{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the board, history and turn are updated
		assert.Equal(t, mustParse(t, "....X...."), game.Board)
		assert.Equal(t, []tictactoe.Action{{Row: 1, Col: 1}}, game.Moves)
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X has taken the centre
		game := NewGame("123", tictactoe.PlayerX)
		require.NoError(t, game.Play(tictactoe.Action{Row: 1, Col: 1}))

		// When: O tries the same cell
		err := game.Play(tictactoe.Action{Row: 1, Col: 1})

		// Then: ErrInvalidAction is returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidAction)
		assert.Len(t, game.Moves, 1)
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a finished game
		game := &Game{Board: mustParse(t, "XXX/OO./..."), Status: StatusFinished}

		// When: someone tries to move
		err := game.Play(tictactoe.Action{Row: 2, Col: 2})

		// Then: ErrGameOver is returned
		assert.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move from the top row
		game := &Game{Board: mustParse(t, "XX./OO./..."), Status: StatusOngoing, Turn: tictactoe.PlayerX}

		// When: X completes it
		require.NoError(t, game.Play(tictactoe.Action{Row: 0, Col: 2}))

		// Then: the game is over and a result can be archived
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)

		result := NewResult(game)
		assert.Equal(t, "X", result.Winner)
		assert.Equal(t, 1, result.Moves)
	})
}
