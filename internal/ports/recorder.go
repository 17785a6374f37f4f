package ports

import (
	"context"

	"github.com/randomtoy/cardflip/internal/domain"
)

// DrawRecorder observes completed draws.
type DrawRecorder interface {
	RecordDraw(ctx context.Context, requested int, cards []domain.DrawnCard)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) RecordDraw(context.Context, int, []domain.DrawnCard) {}
