package adapter

import (
	"context"

	checkoutapp "github.com/kitchencraft/storefront/internal/checkout/app"
	orderapp "github.com/kitchencraft/storefront/internal/order/app"
	orderdomain "github.com/kitchencraft/storefront/internal/order/domain"
	"github.com/kitchencraft/storefront/pkg/money"
)

// OrderServiceAdapter exposes the order log through checkout's
// OrderRecorder port.
type OrderServiceAdapter struct {
	svc *orderapp.Service
}

func NewOrderServiceAdapter(svc *orderapp.Service) *OrderServiceAdapter {
	return &OrderServiceAdapter{svc: svc}
}

func (a *OrderServiceAdapter) Record(ctx context.Context, identityID string, items []checkoutapp.OrderItem, total money.Cents) (string, error) {
	converted := make([]orderdomain.Item, 0, len(items))
	for _, it := range items {
		converted = append(converted, orderdomain.Item{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	order, err := a.svc.Record(ctx, identityID, converted, total)
	if err != nil {
		return "", err
	}
	return order.ID, nil
}
