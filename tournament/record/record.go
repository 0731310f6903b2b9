// Package record persists per-match replay logs and the tournament summary.
package record

import (
	"time"

	"gomoku/game"
)

// Record is the flat per-match log. It carries everything a replay viewer
// needs to reconstruct the game: board size, the ordered move list, the
// winning color and the display names behind each color.
type Record struct {
	Game      int       `json:"game"`
	Timestamp time.Time `json:"timestamp"`
	BoardSize int       `json:"board_size"`

	// Display names per color; empty when the match never started (a load
	// fault forfeits before colors are assigned).
	Black string `json:"black"`
	White string `json:"white"`

	// Winner is "black", "white" or "none" for a draw.
	Winner string `json:"winner"`
	// WinnerName is the display name of the winning player, empty on a draw.
	WinnerName string `json:"winner_name,omitempty"`

	// Fault describes the contract violation that decided the match, if any.
	Fault string `json:"fault,omitempty"`

	Duration time.Duration `json:"duration_ns"`
	Moves    []game.Move   `json:"moves"`
}
