// Package tournament runs a series of matches between two named strategies,
// aggregates the outcomes and persists per-match replay logs.
package tournament

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gomoku/engine"
	"gomoku/game"
	"gomoku/player"
	"gomoku/tournament/record"
)

const (
	sidePlayer1 = "player1"
	sidePlayer2 = "player2"
	sideDraw    = "draw"
)

// Config selects the matchup and how it is run.
type Config struct {
	Player1   string // registry name of the first strategy
	Player2   string // registry name of the second strategy
	Rounds    int    // defaults to 10
	BoardSize int    // defaults to game.DefaultSize

	// MoveTimeout bounds each strategy invocation; zero disables it.
	MoveTimeout time.Duration

	// LogDir, when set, receives one JSON log per match and a summary.csv.
	LogDir string

	// Seed fixes color assignment; zero draws from the wall clock.
	Seed uint64

	// Out receives the per-round lines and the final summary block.
	// Defaults to stdout.
	Out io.Writer
}

// Scores are the aggregate results of a finished tournament.
type Scores struct {
	Player1 int
	Player2 int
	Draws   int
}

// Tournament owns the strategy registry, the RNG and the accumulating
// scores for one invocation. Matches run strictly one after another.
type Tournament struct {
	cfg      Config
	registry *player.Registry
	rng      *rand.Rand
	out      io.Writer
}

func New(cfg Config, registry *player.Registry) *Tournament {
	if cfg.Rounds <= 0 {
		cfg.Rounds = 10
	}
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = game.DefaultSize
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	return &Tournament{
		cfg:      cfg,
		registry: registry,
		rng:      rand.New(rand.NewSource(seed)),
		out:      out,
	}
}

// Run plays all scheduled rounds. A single match's fault never aborts the
// run; only an unwritable log directory does.
func (t *Tournament) Run() (Scores, error) {
	var scores Scores

	var writer *record.Writer
	if t.cfg.LogDir != "" {
		var err error
		writer, err = record.NewWriter(t.cfg.LogDir)
		if err != nil {
			return scores, err
		}
	}

	fmt.Fprintf(t.out, "Running %d games between:\n", t.cfg.Rounds)
	fmt.Fprintf(t.out, "  Player 1: %s\n", t.cfg.Player1)
	fmt.Fprintf(t.out, "  Player 2: %s\n\n", t.cfg.Player2)

	// Both strategies resolve once, before any match; a failed lookup
	// forfeits the entire tournament to the other side.
	fn1, err := t.registry.Lookup(t.cfg.Player1)
	if err != nil {
		return t.forfeitAll(writer, sidePlayer1, err), nil
	}
	fn2, err := t.registry.Lookup(t.cfg.Player2)
	if err != nil {
		return t.forfeitAll(writer, sidePlayer2, err), nil
	}

	records := make([]record.Record, 0, t.cfg.Rounds)
	for i := 1; i <= t.cfg.Rounds; i++ {
		log.Info().Msgf("starting round %d of %d...", i, t.cfg.Rounds)

		rec, winner := t.playRound(i, fn1, fn2)

		switch winner {
		case sidePlayer1:
			scores.Player1++
		case sidePlayer2:
			scores.Player2++
		default:
			scores.Draws++
		}

		if rec.Fault != "" {
			fmt.Fprintf(t.out, "Game %d: %s wins (error: %s)\n", i, winner, rec.Fault)
		} else if winner == sideDraw {
			fmt.Fprintf(t.out, "Game %d: draw\n", i)
		} else {
			fmt.Fprintf(t.out, "Game %d: %s wins\n", i, winner)
		}

		if writer != nil {
			if _, err := writer.WriteMatch(rec); err != nil {
				log.Error().Err(err).Int("game", i).Msg("failed to persist match log")
			}
		}
		records = append(records, rec)

		log.Info().Msgf("completed round %d of %d with result: %s", i, t.cfg.Rounds, winner)
	}

	if writer != nil {
		if err := writer.WriteSummary(records); err != nil {
			log.Error().Err(err).Msg("failed to persist tournament summary")
		}
	}

	t.printSummary(scores)
	return scores, nil
}

// playRound runs one match with a fresh color draw and returns its record
// together with the winning side.
func (t *Tournament) playRound(round int, fn1, fn2 player.MoveFunc) (record.Record, string) {
	blackFn, whiteFn := fn1, fn2
	blackName, whiteName := t.displayName(sidePlayer1), t.displayName(sidePlayer2)
	blackSide, whiteSide := sidePlayer1, sidePlayer2
	if t.rng.Float64() < 0.5 {
		blackFn, whiteFn = fn2, fn1
		blackName, whiteName = whiteName, blackName
		blackSide, whiteSide = whiteSide, blackSide
	}

	e := engine.NewLocal(
		t.cfg.BoardSize,
		player.NewBoundary(blackName, blackFn, t.cfg.MoveTimeout),
		player.NewBoundary(whiteName, whiteFn, t.cfg.MoveTimeout),
	)
	result := e.Run()

	rec := record.Record{
		Game:      round,
		Timestamp: result.Start,
		BoardSize: result.Size,
		Black:     blackName,
		White:     whiteName,
		Winner:    "none",
		Duration:  result.Duration(),
		Moves:     result.Moves,
	}
	if result.Fault != nil {
		rec.Fault = result.Fault.String()
	} else if result.Exhausted {
		rec.Fault = "engine invariant violation: move cap exhausted without terminal state"
	}

	winner := sideDraw
	if result.Status == game.Won {
		rec.Winner = result.Winner.String()
		if result.Winner == game.Black {
			rec.WinnerName = blackName
			winner = blackSide
		} else {
			rec.WinnerName = whiteName
			winner = whiteSide
		}
	}
	return rec, winner
}

// forfeitAll settles every scheduled round against the side whose strategy
// failed to load.
func (t *Tournament) forfeitAll(writer *record.Writer, loser string, cause error) Scores {
	var scores Scores
	winner := sidePlayer2
	loserName := t.cfg.Player1
	if loser == sidePlayer2 {
		winner = sidePlayer1
		loserName = t.cfg.Player2
	}
	fault := player.LoadFault(loserName, cause)

	log.Warn().Msgf("%s forfeits all %d rounds: %s", loser, t.cfg.Rounds, fault)

	records := make([]record.Record, 0, t.cfg.Rounds)
	for i := 1; i <= t.cfg.Rounds; i++ {
		if winner == sidePlayer1 {
			scores.Player1++
		} else {
			scores.Player2++
		}
		fmt.Fprintf(t.out, "Game %d: %s wins (error: %s)\n", i, winner, fault)

		// Colors were never assigned, so the record carries the fault and
		// the winner's name only.
		rec := record.Record{
			Game:       i,
			Timestamp:  time.Now(),
			BoardSize:  t.cfg.BoardSize,
			Winner:     "none",
			WinnerName: t.displayName(winner),
			Fault:      fault.String(),
		}
		if writer != nil {
			if _, err := writer.WriteMatch(rec); err != nil {
				log.Error().Err(err).Int("game", i).Msg("failed to persist match log")
			}
		}
		records = append(records, rec)
	}

	if writer != nil {
		if err := writer.WriteSummary(records); err != nil {
			log.Error().Err(err).Msg("failed to persist tournament summary")
		}
	}

	t.printSummary(scores)
	return scores
}

func (t *Tournament) displayName(side string) string {
	if side == sidePlayer1 {
		return fmt.Sprintf("player1 (%s)", t.cfg.Player1)
	}
	return fmt.Sprintf("player2 (%s)", t.cfg.Player2)
}

func (t *Tournament) printSummary(scores Scores) {
	fmt.Fprintf(t.out, "\nFINAL_RESULTS\n")
	fmt.Fprintf(t.out, "%s: %d rounds won\n", t.displayName(sidePlayer1), scores.Player1)
	fmt.Fprintf(t.out, "%s: %d rounds won\n", t.displayName(sidePlayer2), scores.Player2)
	fmt.Fprintf(t.out, "Draws: %d\n", scores.Draws)
}
