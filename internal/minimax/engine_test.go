package minimax

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

func playOut(t *testing.T, engine *Engine, board tictactoe.Board) tictactoe.Board {
	t.Helper()

	for !board.IsTerminal() {
		action, err := engine.BestMove(board)
		require.NoError(t, err)

		board, err = board.Apply(action)
		require.NoError(t, err)
	}

	return board
}

func TestEngine_BestMove_Opening(t *testing.T) {
	t.Run("Random opening move", func(t *testing.T) {
		// Given: an engine with a fixed random source
		var calledWith int
		engine := New(WithRandom(func(n int) int {
			calledWith = n
			return 4
		}))

		// When: asking for a move on the empty board
		action, err := engine.BestMove(tictactoe.InitialState())

		// Then: the source picks among all nine cells
		require.NoError(t, err)
		assert.Equal(t, 9, calledWith)
		assert.Equal(t, tictactoe.Action{Row: 1, Col: 1}, action)
	})

	t.Run("Default source stays on the board", func(t *testing.T) {
		engine := New()

		for i := 0; i < 20; i++ {
			action, err := engine.BestMove(tictactoe.InitialState())
			require.NoError(t, err)

			_, err = tictactoe.InitialState().Apply(action)
			require.NoError(t, err)
		}
	})

	t.Run("Full search without the shortcut", func(t *testing.T) {
		// Given: an engine that searches the opening too
		engine := New(WithOpeningShortcut(false), WithRandom(func(int) int {
			t.Fatal("random source must not be used")
			return 0
		}))

		// When: asking for a move on the empty board
		action, err := engine.BestMove(tictactoe.InitialState())

		// Then: every opening draws, so the first cell is kept
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Action{Row: 0, Col: 0}, action)
	})
}

func TestEngine_BestMove(t *testing.T) {
	engine := New()

	t.Run("Takes the win", func(t *testing.T) {
		// Given: X can complete the top row
		board := mustParse(t, "XX./OO./X.O")

		// When: searching
		action, err := engine.BestMove(board)

		// Then: X completes the row
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Action{Row: 0, Col: 2}, action)
	})

	t.Run("Blocks the threat", func(t *testing.T) {
		// Given: X threatens the top row and O is to move
		board := mustParse(t, "XX./.O./...")

		// When: searching
		action, err := engine.BestMove(board)

		// Then: O blocks at (0, 2)
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Action{Row: 0, Col: 2}, action)
	})

	t.Run("Finished board", func(t *testing.T) {
		// Given: a board X has already won
		board := mustParse(t, "XXX/OO./...")

		// When: searching
		_, err := engine.BestMove(board)

		// Then: ErrGameOver is returned
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Drawn full board", func(t *testing.T) {
		_, err := engine.BestMove(mustParse(t, "XOX/XOO/OXX"))
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Malformed board", func(t *testing.T) {
		// Given: O has moved without X
		board := mustParse(t, "O........")

		// When: searching
		_, err := engine.BestMove(board)

		// Then: ErrInvalidState is returned
		require.ErrorIs(t, err, apperror.ErrInvalidState)
	})

	t.Run("Deterministic away from the empty board", func(t *testing.T) {
		for _, s := range []string{"X........", "....X....", "X...O....", "XO.......", "XX./.O./..."} {
			board := mustParse(t, s)

			first, err := engine.BestMove(board)
			require.NoError(t, err)

			second, err := engine.BestMove(board)
			require.NoError(t, err)

			assert.Equal(t, first, second, s)
		}
	})

	t.Run("Keeps the value of the position", func(t *testing.T) {
		for _, s := range []string{"X........", "X...O....", "XO.......", "XX./.O./...", "X.O/.X./..."} {
			board := mustParse(t, s)

			value, err := engine.Value(board)
			require.NoError(t, err)

			action, err := engine.BestMove(board)
			require.NoError(t, err)

			next, err := board.Apply(action)
			require.NoError(t, err)

			nextValue, err := engine.Value(next)
			require.NoError(t, err)

			assert.Equal(t, value, nextValue, s)
		}
	})
}

func TestEngine_Value(t *testing.T) {
	engine := New()

	testCases := []struct {
		name  string
		board string
		value int
	}{
		{name: "initial board draws", board: ".........", value: 0},
		{name: "X won", board: "XXX/OO./...", value: 1},
		{name: "O won", board: "XX./OOO/X.X", value: -1},
		{name: "drawn full board", board: "XOX/XOO/OXX", value: 0},
		{name: "X wins in one", board: "XX./OO./X.O", value: 1},
		{name: "O loses after an edge reply to a corner", board: "XO./.../...", value: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := engine.Value(mustParse(t, tc.board))

			require.NoError(t, err)
			assert.Equal(t, tc.value, value)
		})
	}
}

func TestEngine_SelfPlayDraws(t *testing.T) {
	engine := New()

	// Given: every possible opening move
	for _, opening := range tictactoe.InitialState().LegalActions() {
		board, err := tictactoe.InitialState().Apply(opening)
		require.NoError(t, err)

		// When: both sides follow the engine
		final := playOut(t, engine, board)

		// Then: the game is a draw
		assert.Equal(t, 0, final.Utility(), "opening %s ended as\n%s", opening, final.Pretty())
	}
}
