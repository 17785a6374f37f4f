package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/randomtoy/cardflip/internal/domain"
)

const instrumentationName = "github.com/randomtoy/cardflip"

// Recorder implements ports.DrawRecorder with OpenTelemetry counters.
type Recorder struct {
	draws metric.Int64Counter
	cards metric.Int64Counter
	short metric.Int64Counter
}

// NewRecorder creates the instruments on meter. A nil meter uses the global
// meter provider.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	draws, err := meter.Int64Counter("cardflip.draws",
		metric.WithDescription("Completed draw requests"),
		metric.WithUnit("{draw}"))
	if err != nil {
		return nil, fmt.Errorf("create draws counter: %w", err)
	}
	cards, err := meter.Int64Counter("cardflip.cards_drawn",
		metric.WithDescription("Cards handed to the renderer, by rarity tier"),
		metric.WithUnit("{card}"))
	if err != nil {
		return nil, fmt.Errorf("create cards counter: %w", err)
	}
	short, err := meter.Int64Counter("cardflip.draws_short",
		metric.WithDescription("Draws that returned fewer cards than requested"),
		metric.WithUnit("{draw}"))
	if err != nil {
		return nil, fmt.Errorf("create short draws counter: %w", err)
	}

	return &Recorder{draws: draws, cards: cards, short: short}, nil
}

func (r *Recorder) RecordDraw(ctx context.Context, requested int, cards []domain.DrawnCard) {
	r.draws.Add(ctx, 1, metric.WithAttributes(attribute.Int("requested", requested)))
	if len(cards) < requested {
		r.short.Add(ctx, 1, metric.WithAttributes(attribute.Int("requested", requested)))
	}

	byTier := make(map[string]int64, 4)
	for _, c := range cards {
		byTier[c.Presentation.Base]++
	}
	for tier, n := range byTier {
		r.cards.Add(ctx, n, metric.WithAttributes(attribute.String("rarity", tier)))
	}
}
