package apperror

import "errors"

var (
	ErrGameOver      = errors.New("game is already over")
	ErrInvalidAction = errors.New("invalid action")
	ErrInvalidState  = errors.New("invalid board state")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrGameNotFound  = errors.New("game not found")
)
