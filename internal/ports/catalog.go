package ports

import (
	"context"

	"github.com/randomtoy/cardflip/internal/domain"
)

// CatalogSource loads the card catalog. It is called once at startup.
type CatalogSource interface {
	Load(ctx context.Context) (domain.Catalog, error)
}
