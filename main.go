package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gomoku/bot"
	"gomoku/config"
	"gomoku/game"
	"gomoku/player"
	"gomoku/tournament"
)

func main() {
	rounds := flag.Int("rounds", 10, "number of rounds to play")
	size := flag.Int("size", game.DefaultSize, "board side length")
	logDir := flag.String("logdir", "", "output directory for match logs (disabled when empty)")
	confPath := flag.String("config", "", "optional yaml config file for engine tuning")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gomoku [flags] <player1> <player2>\n\nflags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := config.Load(*confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gomoku: %v\n", err)
		os.Exit(1)
	}
	initLogger(conf.LogLevel)

	seed := conf.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	t := tournament.New(tournament.Config{
		Player1:     flag.Arg(0),
		Player2:     flag.Arg(1),
		Rounds:      *rounds,
		BoardSize:   *size,
		MoveTimeout: conf.MoveTimeout,
		LogDir:      *logDir,
		Seed:        seed,
	}, buildRegistry(conf, seed))

	if _, err := t.Run(); err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
}

func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// buildRegistry wires up the built-in strategies. Each gets its own RNG
// stream derived from the run seed, so a fixed seed reproduces the whole
// tournament including tie-breaks.
func buildRegistry(conf *config.Config, seed uint64) *player.Registry {
	registry := player.NewRegistry()

	heuristic := bot.NewHeuristic(
		bot.WithRadius(conf.HeuristicRadius),
		bot.WithRand(rand.New(rand.NewSource(seed+1))),
	)
	registry.Register("heuristic", heuristic.Move)

	// Variant with the tight neighborhood used by the older reference bot.
	near := bot.NewHeuristic(
		bot.WithRadius(1),
		bot.WithRand(rand.New(rand.NewSource(seed+2))),
	)
	registry.Register("heuristic-near", near.Move)

	registry.Register("random", bot.NewRandom(rand.New(rand.NewSource(seed+3))).Move)

	return registry
}
