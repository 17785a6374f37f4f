package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR, default=:8080"`
	LogLevelName   string        `env:"LOG_LEVEL, default=info"`
	CatalogSource  string        `env:"CATALOG_SOURCE, default=embedded"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT, default=10s"`
	DrawPresets    []int         `env:"DRAW_PRESETS"` // empty: app.DefaultPresets
	DrawSeed       uint64        `env:"DRAW_SEED, default=0"`
	StaticDir      string        `env:"STATIC_DIR"`

	LogLevel slog.Level
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context, dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith resolves the configuration from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	var c Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &c, Lookuper: l}); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	level, err := parseLogLevel(c.LogLevelName)
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.CatalogTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid CATALOG_TIMEOUT %s: must be positive", c.CatalogTimeout)
	}

	if err := validatePresets(c.DrawPresets); err != nil {
		return Config{}, err
	}

	return c, nil
}

func validatePresets(presets []int) error {
	seen := make(map[int]bool, len(presets))
	for _, p := range presets {
		if p <= 0 {
			return fmt.Errorf("invalid DRAW_PRESETS: %d is not a positive count", p)
		}
		if seen[p] {
			return fmt.Errorf("invalid DRAW_PRESETS: %d listed twice", p)
		}
		seen[p] = true
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
