package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
)

var errBadRequest = errors.New("bad request")

type gameUseCase interface {
	CreateGame(ctx context.Context, human tictactoe.Player) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, action tictactoe.Action) (*entity.Game, error)
	Hint(ctx context.Context, id string) (tictactoe.Action, error)
	Stats(ctx context.Context) (*entity.Stats, error)
}

type moveSearcher interface {
	BestMove(board tictactoe.Board) (tictactoe.Action, error)
}

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
	engine moveSearcher
}

func newHandlers(logger *slog.Logger, games gameUseCase, engine moveSearcher) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		games:  games,
		engine: engine,
	}
}

type bestMoveRequest struct {
	Board tictactoe.Board `json:"board"`
}

type bestMoveResponse struct {
	Board  tictactoe.Board  `json:"board"`
	Mover  tictactoe.Player `json:"mover"`
	Action tictactoe.Action `json:"action"`
}

type createGameRequest struct {
	Mark tictactoe.Player `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *handlers) bestMove(w http.ResponseWriter, r *http.Request) {
	var req bestMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	mover, err := req.Board.CurrentMover()
	if err != nil {
		that.writeError(w, err)
		return
	}

	action, err := that.engine.BestMove(req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, bestMoveResponse{Board: req.Board, Mover: mover, Action: action})
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	if req.Mark == tictactoe.PlayerNone {
		req.Mark = tictactoe.PlayerX
	}

	game, err := that.games.CreateGame(r.Context(), req.Mark)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var action tictactoe.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), action)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *handlers) hint(w http.ResponseWriter, r *http.Request) {
	action, err := that.games.Hint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, action)
}

func (that *handlers) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.games.Stats(r.Context())
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrInvalidAction),
		errors.Is(err, apperror.ErrInvalidState),
		errors.Is(err, usecase.ErrInvalidPlayer):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameOver),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
