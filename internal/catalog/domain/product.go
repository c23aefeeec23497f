package domain

import "github.com/kitchencraft/storefront/pkg/money"

// Product is a purchasable catalog entry. IDs come from a monotonic
// millisecond clock and never change once assigned.
type Product struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
}

// Draft is the admin form input for a new product. Price arrives as the raw
// form string and is parsed at add time.
type Draft struct {
	Name        string
	Description string
	Price       string
	Image       string
	Category    string
}

// Patch carries the fields of an update; nil fields are left untouched.
type Patch struct {
	Name        *string
	Description *string
	Price       *string
	Image       *string
	Category    *string
}
