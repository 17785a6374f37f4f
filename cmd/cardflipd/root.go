package main

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/randomtoy/cardflip/internal/adapters/catalogs"
	"github.com/randomtoy/cardflip/internal/app"
	"github.com/randomtoy/cardflip/internal/config"
	"github.com/randomtoy/cardflip/internal/domain"
)

// pcgRNG delegates to math/rand/v2. A zero seed means an auto-seeded source.
type pcgRNG struct{ r *rand.Rand }

func newRNG(seed uint64) domain.RNG {
	if seed == 0 {
		return stdRNG{}
	}
	return pcgRNG{r: rand.New(rand.NewPCG(seed, seed))}
}

func (p pcgRNG) Float64() float64 { return p.r.Float64() }
func (p pcgRNG) IntN(n int) int   { return p.r.IntN(n) }

// stdRNG delegates to the auto-seeded top-level math/rand/v2 functions.
type stdRNG struct{}

func (stdRNG) Float64() float64 { return rand.Float64() }
func (stdRNG) IntN(n int) int   { return rand.IntN(n) }

func newRootCmd() *cobra.Command {
	var dotenv string

	root := &cobra.Command{
		Use:           "cardflipd",
		Short:         "Weighted card pulls without replacement",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dotenv, "env-file", ".env", "optional dotenv file read before the environment")

	root.AddCommand(newServeCmd(&dotenv), newDrawCmd(&dotenv))
	return root
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadCatalog fetches the catalog once, bounded by the configured timeout.
func loadCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) domain.Catalog {
	ctx, cancel := context.WithTimeout(ctx, cfg.CatalogTimeout)
	defer cancel()

	src := catalogs.New(cfg.CatalogSource, &http.Client{Timeout: cfg.CatalogTimeout}, logger)
	return app.LoadCatalog(ctx, src, logger)
}
