// Package blobrepo stores each identity's orders as one JSON array under
// orders_<identityId>, matching the original local-storage layout.
package blobrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kitchencraft/storefront/internal/order/domain"
	"github.com/kitchencraft/storefront/pkg/blob"
)

const keyPrefix = "orders_"

type OrderLog struct {
	store blob.Store
}

func NewOrderLog(store blob.Store) *OrderLog {
	return &OrderLog{store: store}
}

func (l *OrderLog) Append(ctx context.Context, identityID string, order domain.Order) error {
	orders, err := l.List(ctx, identityID)
	if err != nil {
		return err
	}
	orders = append(orders, order)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := l.store.Save(ctx, keyPrefix+identityID, data); err != nil {
		return fmt.Errorf("save orders blob: %w", err)
	}
	return nil
}

func (l *OrderLog) List(ctx context.Context, identityID string) ([]domain.Order, error) {
	data, err := l.store.Load(ctx, keyPrefix+identityID)
	if errors.Is(err, blob.ErrNoBlob) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load orders blob: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		// Corrupt history reads as empty rather than failing checkout.
		return nil, nil
	}
	return orders, nil
}
