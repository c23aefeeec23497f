// Package blobrepo stores the catalog as a single JSON array under the
// kitchenProducts key, matching the original local-storage layout.
package blobrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kitchencraft/storefront/internal/catalog/app"
	"github.com/kitchencraft/storefront/internal/catalog/domain"
	"github.com/kitchencraft/storefront/pkg/blob"
)

const catalogKey = "kitchenProducts"

type CatalogRepo struct {
	store blob.Store
}

func NewCatalogRepo(store blob.Store) *CatalogRepo {
	return &CatalogRepo{store: store}
}

func (r *CatalogRepo) Load(ctx context.Context) ([]domain.Product, error) {
	data, err := r.store.Load(ctx, catalogKey)
	if errors.Is(err, blob.ErrNoBlob) {
		return nil, app.ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog blob: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		// A corrupt blob reads as no stored state, never as a failure.
		return nil, app.ErrNoState
	}
	return products, nil
}

func (r *CatalogRepo) Save(ctx context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := r.store.Save(ctx, catalogKey, data); err != nil {
		return fmt.Errorf("save catalog blob: %w", err)
	}
	return nil
}
