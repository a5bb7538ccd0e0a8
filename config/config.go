package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"grid-snake/game"
)

// Environment variables read by Load.
const (
	EnvGridSize         = "SNAKE_GRID_SIZE"
	EnvInitialSpeed     = "SNAKE_INITIAL_SPEED"
	EnvSpeedDecay       = "SNAKE_SPEED_DECAY"
	EnvTargetBonus      = "SNAKE_TARGET_BONUS"
	EnvMinSpeed         = "SNAKE_MIN_SPEED"
	EnvTargetAvoidsBody = "SNAKE_TARGET_AVOIDS_BODY"
	EnvSeed             = "SNAKE_SEED"
	EnvFPS              = "SNAKE_FPS"
	EnvWidth            = "SNAKE_WIDTH"
	EnvHeight           = "SNAKE_HEIGHT"
)

// Config holds the settings shared by both hosts.
type Config struct {
	Rules  game.Rules
	Seed   uint64 // 0 seeds from the clock
	FPS    int
	Width  int // window width in pixels (desktop host)
	Height int // window height in pixels (desktop host)
}

func Default() Config {
	return Config{
		Rules:  game.DefaultRules(),
		FPS:    60,
		Width:  800,
		Height: 600,
	}
}

// Load starts from Default, loads the given env files (or ".env" when none
// is given and it exists) and applies any SNAKE_* variables. Variables that
// are already set in the process environment win over file values.
func Load(files ...string) (Config, error) {
	cfg := Default()

	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return cfg, fmt.Errorf("loading env files: %w", err)
	}

	var err error
	if cfg.Rules.GridSize, err = envInt(EnvGridSize, cfg.Rules.GridSize); err != nil {
		return cfg, err
	}
	if cfg.Rules.InitialSpeed, err = envFloat(EnvInitialSpeed, cfg.Rules.InitialSpeed); err != nil {
		return cfg, err
	}
	if cfg.Rules.SpeedDecay, err = envFloat(EnvSpeedDecay, cfg.Rules.SpeedDecay); err != nil {
		return cfg, err
	}
	if cfg.Rules.TargetBonus, err = envInt(EnvTargetBonus, cfg.Rules.TargetBonus); err != nil {
		return cfg, err
	}
	if cfg.Rules.MinSpeed, err = envFloat(EnvMinSpeed, cfg.Rules.MinSpeed); err != nil {
		return cfg, err
	}
	if cfg.Rules.TargetAvoidsBody, err = envBool(EnvTargetAvoidsBody, cfg.Rules.TargetAvoidsBody); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = envUint(EnvSeed, cfg.Seed); err != nil {
		return cfg, err
	}
	if cfg.FPS, err = envInt(EnvFPS, cfg.FPS); err != nil {
		return cfg, err
	}
	if cfg.Width, err = envInt(EnvWidth, cfg.Width); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt(EnvHeight, cfg.Height); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// RegisterFlags exposes the rule knobs on flags, defaulting to the values
// already in c.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Rules.GridSize, "grid", c.Rules.GridSize, "Grid size in cells")
	flags.Float64Var(&c.Rules.InitialSpeed, "speed", c.Rules.InitialSpeed, "Initial seconds between moves (lower = faster)")
	flags.Float64Var(&c.Rules.SpeedDecay, "decay", c.Rules.SpeedDecay, "Speed multiplier applied per target")
	flags.IntVar(&c.Rules.TargetBonus, "bonus", c.Rules.TargetBonus, "Points per target")
	flags.Float64Var(&c.Rules.MinSpeed, "min-speed", c.Rules.MinSpeed, "Floor for seconds between moves (0 = none)")
	flags.BoolVar(&c.Rules.TargetAvoidsBody, "avoid-body", c.Rules.TargetAvoidsBody, "Never spawn targets under the snake")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed (0 = time based)")
	flags.IntVar(&c.FPS, "fps", c.FPS, "Frames per second")
}

func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps %d must be positive", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	return nil
}

func envInt(key string, def int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func envUint(key string, def uint64) (uint64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return def, fmt.Errorf("environment variable %s must be an unsigned integer: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def, fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return b, nil
}
