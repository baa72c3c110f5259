package entity

import "time"

// Result is the archived outcome of a finished game.
type Result struct {
	GameID     string    `json:"game_id"`
	Human      string    `json:"human"`
	Winner     string    `json:"winner"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewResult(game *Game) *Result {
	return &Result{
		GameID:     game.ID,
		Human:      game.Human.String(),
		Winner:     game.Winner,
		Moves:      len(game.Moves),
		FinishedAt: game.UpdatedAt,
	}
}

// Stats aggregates results from the human's point of view.
type Stats struct {
	Games      int `json:"games" yaml:"games"`
	HumanWins  int `json:"human_wins" yaml:"human_wins"`
	EngineWins int `json:"engine_wins" yaml:"engine_wins"`
	Draws      int `json:"draws" yaml:"draws"`
}
