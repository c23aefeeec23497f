package app

import (
	"context"

	"github.com/kitchencraft/storefront/internal/checkout/domain"
	"github.com/kitchencraft/storefront/pkg/money"
)

// Line is checkout's view of a cart line.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice money.Cents
	Quantity  int
}

// Cart is the slice of the cart store checkout needs: read the lines and
// totals, and clear everything once the order is recorded.
type Cart interface {
	Lines() []Line
	Total() money.Cents
	Clear()
}

// Identity is checkout's view of the signed-in actor.
type Identity struct {
	ID    string
	Email string
}

// IdentityReader reports who is signed in, or nil.
type IdentityReader interface {
	Current() *Identity
}

// OrderItem is one snapshot line handed to the order log.
type OrderItem struct {
	Name      string
	Quantity  int
	UnitPrice money.Cents
}

// OrderRecorder appends the completed order and returns its identifier.
type OrderRecorder interface {
	Record(ctx context.Context, identityID string, items []OrderItem, total money.Cents) (string, error)
}

// Processor simulates the payment step. A returned error means the charge
// failed and nothing may be mutated.
type Processor interface {
	Charge(ctx context.Context, card domain.CardInfo) error
}
