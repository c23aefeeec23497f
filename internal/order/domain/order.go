package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kitchencraft/storefront/pkg/money"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

// Item is a snapshot of a purchased line. It deliberately carries the name
// and price as charged rather than a product reference, so later catalog
// edits or deletions never rewrite history.
type Item struct {
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Cents `json:"price"`
}

// Order is an immutable record of a completed purchase.
type Order struct {
	ID     string      `json:"id"`
	Date   time.Time   `json:"date"`
	Status Status      `json:"status"`
	Items  []Item      `json:"items"`
	Total  money.Cents `json:"total"`
}

// NewID returns an order identifier like ORD-3F2A9B1C.
func NewID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:8])
}
