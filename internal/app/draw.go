package app

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/randomtoy/cardflip/internal/domain"
	"github.com/randomtoy/cardflip/internal/ports"
)

// DefaultPresets are the draw sizes offered when none are configured.
var DefaultPresets = []int{1, 5, 10}

// DrawRequest is the application-level input (no HTTP types).
type DrawRequest struct {
	Count int
}

// DrawResponse is the application-level output.
type DrawResponse struct {
	Requested int
	Cards     []domain.DrawnCard
}

// CatalogEntry describes one catalog item together with its odds of being
// the first card of a draw.
type CatalogEntry struct {
	Item         domain.Item
	Presentation domain.Presentation
	Odds         float64
}

// DrawService holds everything a draw needs: the catalog loaded at startup,
// the random source and the allowed draw sizes. Apart from the random
// source it is read-only after construction; rngMu serialises its use.
type DrawService struct {
	catalog  domain.Catalog
	rngMu    sync.Mutex
	rng      domain.RNG
	presets  []int
	recorder ports.DrawRecorder
}

func NewDrawService(catalog domain.Catalog, rng domain.RNG, presets []int, rec ports.DrawRecorder) *DrawService {
	if len(presets) == 0 {
		presets = DefaultPresets
	}
	if rec == nil {
		rec = ports.NopRecorder{}
	}
	return &DrawService{
		catalog:  catalog,
		rng:      rng,
		presets:  slices.Clone(presets),
		recorder: rec,
	}
}

// Enabled reports whether a catalog was loaded. A catalog whose weights are
// all zero stays enabled and simply yields empty draws.
func (s *DrawService) Enabled() bool {
	return s.catalog.Len() > 0
}

// Presets returns the allowed draw sizes.
func (s *DrawService) Presets() []int {
	return slices.Clone(s.presets)
}

// Draw runs one draw of req.Count cards, which must be a configured preset.
func (s *DrawService) Draw(ctx context.Context, req DrawRequest) (DrawResponse, error) {
	if !s.Enabled() {
		return DrawResponse{}, domain.ErrDrawDisabled
	}
	if !slices.Contains(s.presets, req.Count) {
		return DrawResponse{}, domain.ErrInvalidPreset
	}
	return s.draw(ctx, req.Count), nil
}

// DrawAny draws count cards without the preset restriction. Used by the
// command-line tool.
func (s *DrawService) DrawAny(ctx context.Context, count int) (DrawResponse, error) {
	if !s.Enabled() {
		return DrawResponse{}, domain.ErrDrawDisabled
	}
	return s.draw(ctx, count), nil
}

func (s *DrawService) draw(ctx context.Context, count int) DrawResponse {
	// Hold the lock across both steps so a seeded source yields the same
	// sequence of draws regardless of request interleaving.
	s.rngMu.Lock()
	items := domain.Draw(s.catalog, count, s.rng)
	cards := domain.PrepareCards(items, s.rng)
	s.rngMu.Unlock()

	s.recorder.RecordDraw(ctx, count, cards)
	return DrawResponse{Requested: count, Cards: cards}
}

// Catalog lists the catalog in order with first-pull odds.
func (s *DrawService) Catalog() []CatalogEntry {
	total := s.catalog.TotalWeight()
	items := s.catalog.Items()
	out := make([]CatalogEntry, len(items))
	for i, it := range items {
		var odds float64
		if total > 0 {
			odds = it.EffectiveWeight() / total
		}
		out[i] = CatalogEntry{
			Item:         it,
			Presentation: domain.Classify(it.Rarity),
			Odds:         odds,
		}
	}
	return out
}

// LoadCatalog awaits src once. A failed load is logged and yields an empty
// catalog, which leaves draws disabled instead of stopping the process.
func LoadCatalog(ctx context.Context, src ports.CatalogSource, logger *slog.Logger) domain.Catalog {
	catalog, err := src.Load(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "catalog unavailable, draws disabled", "error", err)
		return domain.Catalog{}
	}
	if catalog.Empty() {
		logger.WarnContext(ctx, "catalog has no drawable items, draws disabled", "items", catalog.Len())
		return catalog
	}
	logger.InfoContext(ctx, "catalog loaded", "items", catalog.Len(), "total_weight", catalog.TotalWeight())
	return catalog
}
