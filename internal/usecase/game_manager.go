package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrInvalidPlayer = errors.New("human must play X or O")

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	Stats(ctx context.Context) (*entity.Stats, error)
}

type moveSearcher interface {
	BestMove(board tictactoe.Board) (tictactoe.Action, error)
}

// GameManager runs games between a human and the engine.
type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	resultRepo resultRepo
	engine     moveSearcher
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, resultRepo resultRepo, engine moveSearcher) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		resultRepo: resultRepo,
		engine:     engine,
	}
}

// CreateGame starts a game where the human plays the given side. When the
// human plays O the engine opens right away.
func (that *GameManager) CreateGame(ctx context.Context, human tictactoe.Player) (*entity.Game, error) {
	if human == tictactoe.PlayerNone {
		return nil, ErrInvalidPlayer
	}

	game := entity.NewGame(uuid.NewString(), human)

	if !game.IsHumanTurn() {
		if err := that.engineTurn(game); err != nil {
			return nil, err
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "game_id", game.ID, "human", game.Human.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the human's move and, if the game goes on, the engine's reply.
func (that *GameManager) MakeTurn(ctx context.Context, id string, action tictactoe.Action) (*entity.Game, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if !game.IsHumanTurn() {
		return nil, apperror.ErrNotYourTurn
	}

	if err = game.Play(action); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		if err = that.engineTurn(game); err != nil {
			return nil, err
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.archive(ctx, game)
	}

	return game, nil
}

// Hint returns the engine's choice for the side on turn.
func (that *GameManager) Hint(ctx context.Context, id string) (tictactoe.Action, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return tictactoe.Action{}, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return tictactoe.Action{}, err
	}

	action, err := that.engine.BestMove(game.Board)
	if err != nil {
		return tictactoe.Action{}, fmt.Errorf("failed to find best move: %w", err)
	}

	return action, nil
}

func (that *GameManager) Stats(ctx context.Context) (*entity.Stats, error) {
	stats, err := that.resultRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (that *GameManager) engineTurn(game *entity.Game) error {
	action, err := that.engine.BestMove(game.Board)
	if err != nil {
		return fmt.Errorf("failed to find engine move: %w", err)
	}

	if err = game.Play(action); err != nil {
		return fmt.Errorf("failed to make engine turn: %w", err)
	}

	return nil
}

// archive records a finished game. A failure is logged and does not undo the game.
func (that *GameManager) archive(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "archive", "game_id", game.ID)

	if err := that.resultRepo.Save(ctx, entity.NewResult(game)); err != nil {
		log.Error("failed to save result", "error", err)
		return
	}

	log.Info("game finished", "winner", game.Winner, "moves", len(game.Moves))
}
