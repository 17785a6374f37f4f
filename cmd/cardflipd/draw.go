package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randomtoy/cardflip/internal/app"
	"github.com/randomtoy/cardflip/internal/config"
	"github.com/randomtoy/cardflip/internal/domain"
)

type drawOptions struct {
	count   int
	catalog string
	seed    uint64
}

func newDrawCmd(dotenv *string) *cobra.Command {
	var opts drawOptions

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw cards once and print them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.count < 0 {
				return fmt.Errorf("--count must not be negative")
			}

			cfg, err := config.Load(cmd.Context(), *dotenv)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("catalog") {
				cfg.CatalogSource = opts.catalog
			}
			if cmd.Flags().Changed("seed") {
				cfg.DrawSeed = opts.seed
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			catalog := loadCatalog(cmd.Context(), cfg, logger)
			svc := app.NewDrawService(catalog, newRNG(cfg.DrawSeed), cfg.DrawPresets, nil)

			resp, err := svc.DrawAny(cmd.Context(), opts.count)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Requested int                `json:"requested"`
				Cards     []domain.DrawnCard `json:"cards"`
			}{resp.Requested, resp.Cards})
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of cards to draw")
	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "catalog location: embedded, a file path or an http(s) URL")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed; 0 picks a random one")
	return cmd
}
