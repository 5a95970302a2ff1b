package entity

import "time"

const StatusFinished = "finished"

// Match is a finished game between two strategies.
type Match struct {
	ID        string     `json:"id"`
	PlayerX   string     `json:"player_x"`
	PlayerO   string     `json:"player_o"`
	Moves     []Cell     `json:"moves"`
	Board     [][]string `json:"board"`
	Winner    string     `json:"winner"`
	Utility   float64    `json:"utility"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// Score counts results per mark; Draws holds PlayerTie results.
type Score struct {
	X     int64 `json:"x"`
	O     int64 `json:"o"`
	Draws int64 `json:"draws"`
}

// Total - the number of recorded results.
func (that Score) Total() int64 {
	return that.X + that.O + that.Draws
}

// TournamentResult aggregates a batch of matches between the same two strategies.
type TournamentResult struct {
	PlayerX string   `json:"player_x"`
	PlayerO string   `json:"player_o"`
	Matches []string `json:"matches"`
	Score   Score    `json:"score"`
}
