package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the stress run settings. Environment variables provide the
// defaults and flags override them.
type Config struct {
	Duration   time.Duration `env:"BLOCKFALL_STRESS_DURATION"    envDefault:"10s"`
	Seed       uint64        `env:"BLOCKFALL_STRESS_SEED"        envDefault:"1"`
	Frame      time.Duration `env:"BLOCKFALL_STRESS_FRAME"       envDefault:"33ms"`
	ActionRate float64       `env:"BLOCKFALL_STRESS_ACTION_RATE" envDefault:"0.3"`
	Width      int           `env:"BLOCKFALL_STRESS_WIDTH"       envDefault:"10"`
	Height     int           `env:"BLOCKFALL_STRESS_HEIGHT"      envDefault:"24"`
	MaxGames   int           `env:"BLOCKFALL_STRESS_MAX_GAMES"   envDefault:"0"`
}

// ParseConfig loads env defaults, then parses args with fs.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "The total wall-clock duration the test should run for.")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for piece order and simulated input.")
	fs.DurationVar(&cfg.Frame, "frame", cfg.Frame, "Simulated time passed to each frame.")
	fs.Float64Var(&cfg.ActionRate, "action-rate", cfg.ActionRate, "Probability of a player action in a frame.")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Board width.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Board height.")
	fs.IntVar(&cfg.MaxGames, "max-games", cfg.MaxGames, "Stop after this many finished games (0 for no limit).")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting. Board size is checked by the game.
func (c Config) Validate() error {
	var errs []error
	if c.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %s", c.Duration))
	}
	if c.Frame <= 0 {
		errs = append(errs, fmt.Errorf("frame must be positive, got %s", c.Frame))
	}
	if c.ActionRate < 0 || c.ActionRate > 1 {
		errs = append(errs, fmt.Errorf("action rate must be within [0, 1], got %g", c.ActionRate))
	}
	if c.MaxGames < 0 {
		errs = append(errs, fmt.Errorf("max games must not be negative, got %d", c.MaxGames))
	}
	return errors.Join(errs...)
}
