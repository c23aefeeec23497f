package domain

import "github.com/kitchencraft/storefront/pkg/money"

// Stage is where a checkout session currently sits. The flow is linear:
// Shipping -> Payment -> Complete.
type Stage int

const (
	StageShipping Stage = iota
	StagePayment
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageShipping:
		return "shipping"
	case StagePayment:
		return "payment"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ShippingInfo is the recipient form. Every field is required; nothing
// beyond presence is validated.
type ShippingInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// Missing reports whether any required shipping field is empty.
func (s ShippingInfo) Missing() bool {
	for _, f := range []string{
		s.FirstName, s.LastName, s.Email, s.Phone,
		s.Address, s.City, s.State, s.ZipCode, s.Country,
	} {
		if f == "" {
			return true
		}
	}
	return false
}

// CardInfo is the payment form. No card validation happens and no real
// charge is ever made.
type CardInfo struct {
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
}

func (c CardInfo) Missing() bool {
	return c.CardNumber == "" || c.ExpiryDate == "" || c.CVV == "" || c.CardholderName == ""
}

// ShippingFlatRate is charged on every order regardless of contents.
const ShippingFlatRate money.Cents = 999

// taxRateBasisPoints is 8% sales tax.
const taxRateBasisPoints = 800

// Totals is the checkout cost breakdown.
type Totals struct {
	Subtotal money.Cents
	Shipping money.Cents
	Tax      money.Cents
	Total    money.Cents
}

// ComputeTotals derives the breakdown from the cart subtotal. Tax is
// rounded half-up to whole cents.
func ComputeTotals(subtotal money.Cents) Totals {
	tax := money.Cents((int64(subtotal)*taxRateBasisPoints + 5000) / 10000)
	return Totals{
		Subtotal: subtotal,
		Shipping: ShippingFlatRate,
		Tax:      tax,
		Total:    subtotal + ShippingFlatRate + tax,
	}
}
