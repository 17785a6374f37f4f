package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/cardflip/internal/config"
)

func TestLoadWith_Defaults(t *testing.T) {
	c, err := config.LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	want := config.Config{
		HTTPAddr:       ":8080",
		LogLevelName:   "info",
		CatalogSource:  "embedded",
		CatalogTimeout: 10 * time.Second,
		LogLevel:       slog.LevelInfo,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	c, err := config.LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"HTTP_ADDR":       "127.0.0.1:9000",
		"LOG_LEVEL":       "DEBUG",
		"CATALOG_SOURCE":  "https://cdn.example.com/cards.json",
		"CATALOG_TIMEOUT": "3s",
		"DRAW_PRESETS":    "1,3,11",
		"DRAW_SEED":       "42",
		"STATIC_DIR":      "./web",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", c.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Equal(t, "https://cdn.example.com/cards.json", c.CatalogSource)
	assert.Equal(t, 3*time.Second, c.CatalogTimeout)
	assert.Equal(t, []int{1, 3, 11}, c.DrawPresets)
	assert.Equal(t, uint64(42), c.DrawSeed)
	assert.Equal(t, "./web", c.StaticDir)
}

func TestLoadWith_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"log level":        {"LOG_LEVEL": "loud"},
		"timeout format":   {"CATALOG_TIMEOUT": "soon"},
		"timeout negative": {"CATALOG_TIMEOUT": "-1s"},
		"preset zero":      {"DRAW_PRESETS": "0,5"},
		"preset duplicate": {"DRAW_PRESETS": "5,5"},
		"preset not int":   {"DRAW_PRESETS": "one"},
		"seed not int":     {"DRAW_SEED": "abc"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadWith(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STATIC_DIR=/srv/cards\n"), 0o600))
	t.Setenv("STATIC_DIR", "")
	os.Unsetenv("STATIC_DIR")

	c, err := config.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/cards", c.StaticDir)
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	_, err := config.Load(context.Background(), filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
