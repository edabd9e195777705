package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/diegok/duelpong/internal/game"
)

// Default values for configuration
const (
	DefaultWidth  = game.DefaultFieldWidth
	DefaultHeight = game.DefaultFieldHeight
	DefaultFPS    = 60
	MaxFPS        = 240
)

// Environment variables consulted for defaults, after loading an optional .env file
const (
	EnvWidth  = "DUELPONG_WIDTH"
	EnvHeight = "DUELPONG_HEIGHT"
	EnvFPS    = "DUELPONG_FPS"
	EnvSeed   = "DUELPONG_SEED"
	EnvDebug  = "DUELPONG_DEBUG"
)

// Config holds the application configuration
type Config struct {
	FieldWidth  int
	FieldHeight int
	FPS         int
	Seed        int64 // 0 picks a time-based seed
	Debug       bool
}

// ParseArgs parses command line arguments and returns a Config.
// Flags override environment variables, which override the defaults.
func ParseArgs(args []string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	env := &envDefaults{}
	fs := flag.NewFlagSet("duelpong", flag.ContinueOnError)

	width := fs.Int("width", env.getInt(EnvWidth, DefaultWidth), "field width in game units")
	height := fs.Int("height", env.getInt(EnvHeight, DefaultHeight), "field height in game units")
	fps := fs.Int("fps", env.getInt(EnvFPS, DefaultFPS), fmt.Sprintf("frames per second (1-%d)", MaxFPS))
	seed := fs.Int64("seed", env.getInt64(EnvSeed, 0), "random seed, 0 for time-based")
	debug := fs.Bool("debug", env.getBool(EnvDebug, false), "write a debug log")

	if env.err != nil {
		return nil, env.err
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate frame rate
	if *fps < 1 || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, *fps)
	}

	cfg := &Config{
		FieldWidth:  *width,
		FieldHeight: *height,
		FPS:         *fps,
		Seed:        *seed,
		Debug:       *debug,
	}

	// Validate field geometry
	if err := cfg.Settings().Validate(); err != nil {
		return nil, fmt.Errorf("invalid field: %w", err)
	}

	return cfg, nil
}

// Settings returns the game settings for the configured field
func (c *Config) Settings() game.Settings {
	return game.NewSettings(float64(c.FieldWidth), float64(c.FieldHeight))
}

// envDefaults reads flag defaults from the environment.
// The first malformed value is kept in err and later lookups fall back to their defaults.
type envDefaults struct {
	err error
}

func (e *envDefaults) getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		intVal, err := strconv.Atoi(value)
		if err == nil {
			return intVal
		}
		e.reject(key, value, err)
	}
	return defaultValue
}

func (e *envDefaults) getInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intVal
		}
		e.reject(key, value, err)
	}
	return defaultValue
}

func (e *envDefaults) getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		boolVal, err := strconv.ParseBool(value)
		if err == nil {
			return boolVal
		}
		e.reject(key, value, err)
	}
	return defaultValue
}

func (e *envDefaults) reject(key, value string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
}
