package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"gomoku/game"
	"gomoku/player"
)

// Local drives one match between two boundary-wrapped strategies, black
// moving first. Everything is synchronous: one invocation at a time, each
// strategy seeing only a snapshot of the board.
type Local struct {
	match      *game.Match
	boundaries map[game.Color]*player.Boundary
}

func NewLocal(size int, black, white *player.Boundary) *Local {
	return &Local{
		match: game.NewMatch(size),
		boundaries: map[game.Color]*player.Boundary{
			game.Black: black,
			game.White: white,
		},
	}
}

func (e *Local) Run() Result {
	start := time.Now()
	size := e.match.Size()

	// The match itself cannot stay Ongoing past size*size accepted moves,
	// but the loop is capped anyway so a defect can never spin forever.
	maxMoves := size * size
	for i := 0; i < maxMoves && e.match.Status() == game.Ongoing; i++ {
		color := e.match.Turn()
		boundary := e.boundaries[color]

		x, y, fault := boundary.Request(e.match.Snapshot(), color)
		if fault == nil && !e.match.AttemptMove(x, y) {
			fault = player.LegalityFault(x, y)
		}
		if fault != nil {
			log.Debug().
				Str("strategy", boundary.Name()).
				Stringer("color", color).
				Msgf("match ended on %s", fault)
			return e.result(game.Won, color.Other(), fault, false, start)
		}
	}

	switch e.match.Status() {
	case game.Won:
		winner, _ := e.match.Winner()
		return e.result(game.Won, winner, nil, false, start)
	case game.Drawn:
		return e.result(game.Drawn, game.Black, nil, false, start)
	default:
		// Move cap elapsed with the match still ongoing. Record a draw by
		// exhaustion rather than crash the tournament.
		log.Error().
			Int("moves", e.match.MoveCount()).
			Int("size", size).
			Msg("move cap exhausted without a terminal state")
		return e.result(game.Drawn, game.Black, nil, true, start)
	}
}

func (e *Local) result(status game.Status, winner game.Color, fault *player.Fault, exhausted bool, start time.Time) Result {
	return Result{
		Status:    status,
		Winner:    winner,
		Fault:     fault,
		Exhausted: exhausted,
		Moves:     e.match.History(),
		Size:      e.match.Size(),
		Start:     start,
		End:       time.Now(),
	}
}
