package app

import (
	"context"
	"errors"

	"github.com/kitchencraft/storefront/internal/catalog/domain"
)

// ErrNoState is returned by Load when nothing usable is persisted: either
// no blob was ever written or the stored blob does not parse. Both read as
// "no stored state" and trigger the seed fallback.
var ErrNoState = errors.New("no stored catalog state")

// CatalogRepo persists the catalog as one whole collection. Save always
// rewrites the full blob; there is no partial write.
type CatalogRepo interface {
	Load(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, products []domain.Product) error
}
