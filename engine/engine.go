package engine

import (
	"time"

	"gomoku/game"
	"gomoku/player"
)

// Engine runs a single match to a terminal result.
type Engine interface {
	// Run plays until a win, a draw, a strategy fault, or the move cap.
	Run() Result
}

// Result is the terminal outcome of one match.
type Result struct {
	Status game.Status // Won or Drawn, never Ongoing
	Winner game.Color  // meaningful only when Status == Won

	// Fault is non-nil when the win was awarded because the loser violated
	// the strategy contract; the offender is always Winner.Other().
	Fault *player.Fault

	// Exhausted marks a draw forced by the engine's move cap while the
	// match still reported Ongoing. It signals an engine defect, not a
	// legitimate full board.
	Exhausted bool

	Moves []game.Move
	Size  int

	Start time.Time
	End   time.Time
}

// Duration is the wall-clock length of the match.
func (r Result) Duration() time.Duration {
	return r.End.Sub(r.Start)
}
