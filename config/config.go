package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the engine tuning knobs. The match parameters themselves
// (strategies, rounds, board size, log directory) come from the command
// line; this covers everything else, from a yaml file or the environment.
type Config struct {
	LogLevel string `yaml:"log-level" env:"GOMOKU_LOG_LEVEL" env-default:"info"`

	// MoveTimeout bounds a single strategy invocation; exceeding it is an
	// invocation fault. Zero disables the clock.
	MoveTimeout time.Duration `yaml:"move-timeout" env:"GOMOKU_MOVE_TIMEOUT" env-default:"5s"`

	// HeuristicRadius is the neighborhood radius of the built-in
	// heuristic strategy (reference variants use 1 or 2).
	HeuristicRadius int `yaml:"heuristic-radius" env:"GOMOKU_HEURISTIC_RADIUS" env-default:"2"`

	// Seed fixes the RNG for color assignment and heuristic tie-breaks.
	// Zero seeds from the wall clock.
	Seed uint64 `yaml:"seed" env:"GOMOKU_SEED" env-default:"0"`
}

// Load reads the config file at path, or just the environment when path is
// empty.
func Load(path string) (*Config, error) {
	conf := &Config{}
	if path == "" {
		if err := cleanenv.ReadEnv(conf); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
		return conf, nil
	}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}
	return conf, nil
}
