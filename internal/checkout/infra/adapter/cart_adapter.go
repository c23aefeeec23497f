package adapter

import (
	cartapp "github.com/kitchencraft/storefront/internal/cart/app"
	checkoutapp "github.com/kitchencraft/storefront/internal/checkout/app"
	"github.com/kitchencraft/storefront/pkg/money"
)

// CartServiceAdapter exposes the cart store through checkout's Cart port.
type CartServiceAdapter struct {
	svc *cartapp.Service
}

func NewCartServiceAdapter(svc *cartapp.Service) *CartServiceAdapter {
	return &CartServiceAdapter{svc: svc}
}

func (a *CartServiceAdapter) Lines() []checkoutapp.Line {
	lines := a.svc.Lines()
	out := make([]checkoutapp.Line, 0, len(lines))
	for _, l := range lines {
		out = append(out, checkoutapp.Line{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return out
}

func (a *CartServiceAdapter) Total() money.Cents {
	return a.svc.Total()
}

func (a *CartServiceAdapter) Clear() {
	a.svc.Clear()
}
