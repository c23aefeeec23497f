package app

import (
	"context"

	"github.com/kitchencraft/storefront/internal/order/domain"
)

// OrderLog persists the per-identity order sequence. Append rewrites the
// whole sequence for that identity; entries are never updated or deleted.
type OrderLog interface {
	Append(ctx context.Context, identityID string, order domain.Order) error
	List(ctx context.Context, identityID string) ([]domain.Order, error)
}
