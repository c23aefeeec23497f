package domain

import "github.com/kitchencraft/storefront/pkg/money"

// ProductRef is the slice of a catalog product the cart cares about. Name
// and price are captured here; later catalog edits never reach back into an
// existing line.
type ProductRef struct {
	ID        int64
	Name      string
	UnitPrice money.Cents
}

// Line is one product in the cart. Quantity is always >= 1; a line that
// would drop below 1 is removed instead.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice money.Cents
	Quantity  int
}

// Subtotal is the line's captured price times quantity.
func (l Line) Subtotal() money.Cents {
	return l.UnitPrice * money.Cents(l.Quantity)
}
