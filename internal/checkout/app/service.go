package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kitchencraft/storefront/internal/checkout/domain"
	"github.com/kitchencraft/storefront/internal/notify"
)

var (
	ErrNotSignedIn     = errors.New("checkout requires a signed-in identity")
	ErrWrongStage      = errors.New("operation not valid in current stage")
	ErrMissingField    = errors.New("required field missing")
	ErrPaymentFailed   = errors.New("payment failed")
	ErrPaymentInFlight = errors.New("payment in progress")
)

type Service struct {
	cart       Cart
	identities IdentityReader
	orders     OrderRecorder
	processor  Processor
	notifier   notify.Notifier
}

func NewService(cart Cart, identities IdentityReader, orders OrderRecorder, processor Processor, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Service{
		cart:       cart,
		identities: identities,
		orders:     orders,
		processor:  processor,
		notifier:   notifier,
	}
}

// Begin opens a checkout session for the signed-in identity. With nobody
// signed in the precondition fails and no session state is created.
func (s *Service) Begin(ctx context.Context) (*Session, error) {
	identity := s.identities.Current()
	if identity == nil {
		return nil, ErrNotSignedIn
	}

	return &Session{
		svc:      s,
		identity: *identity,
		stage:    domain.StageShipping,
		// Prefill from the identity; the visitor can still edit it.
		shipping: domain.ShippingInfo{Email: identity.Email, Country: "US"},
	}, nil
}

// Session is one linear pass through shipping and payment. Its operations
// are serialized; while a charge is in flight the session refuses to be
// abandoned rather than leaving the outcome ambiguous.
type Session struct {
	svc      *Service
	identity Identity

	mu       sync.Mutex
	stage    domain.Stage
	shipping domain.ShippingInfo
	charging bool
}

// Stage reports where the session currently sits.
func (s *Session) Stage() domain.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Shipping returns the shipping form as last entered, surviving Back
// navigation.
func (s *Session) Shipping() domain.ShippingInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping
}

// SubmitShipping stores the form and advances to Payment. All fields are
// required; presence is the only check.
func (s *Session) SubmitShipping(info domain.ShippingInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != domain.StageShipping {
		return ErrWrongStage
	}
	if info.Missing() {
		return ErrMissingField
	}
	s.shipping = info
	s.stage = domain.StagePayment
	return nil
}

// Back returns from Payment to Shipping without discarding the entered
// shipping data.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.charging {
		return ErrPaymentInFlight
	}
	if s.stage != domain.StagePayment {
		return ErrWrongStage
	}
	s.stage = domain.StageShipping
	return nil
}

// Abandon leaves the flow. The cart is untouched; a session whose charge is
// in flight cannot be abandoned.
func (s *Session) Abandon() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.charging {
		return ErrPaymentInFlight
	}
	return nil
}

// Confirmation is the terminal result of a successful checkout.
type Confirmation struct {
	OrderID string
	Totals  domain.Totals
}

// SubmitPayment runs the simulated charge, records the order snapshot,
// clears the cart and completes the session. On a failed charge the session
// stays in Payment with cart and order log untouched; the visitor may retry
// any number of times.
func (s *Session) SubmitPayment(ctx context.Context, card domain.CardInfo) (Confirmation, error) {
	s.mu.Lock()
	if s.stage != domain.StagePayment {
		s.mu.Unlock()
		return Confirmation{}, ErrWrongStage
	}
	if s.charging {
		s.mu.Unlock()
		return Confirmation{}, ErrPaymentInFlight
	}
	if card.Missing() {
		s.mu.Unlock()
		return Confirmation{}, ErrMissingField
	}
	s.charging = true
	s.mu.Unlock()

	err := s.svc.processor.Charge(ctx, card)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.charging = false

	if err != nil {
		s.svc.notifier.Error("Payment failed. Please try again.")
		return Confirmation{}, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	totals := domain.ComputeTotals(s.svc.cart.Total())

	lines := s.svc.cart.Lines()
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	orderID, err := s.svc.orders.Record(ctx, s.identity.ID, items, totals.Total)
	if err != nil {
		s.svc.notifier.Error("Payment failed. Please try again.")
		return Confirmation{}, fmt.Errorf("record order: %w", err)
	}

	s.svc.cart.Clear()
	s.stage = domain.StageComplete
	s.svc.notifier.Success("Order placed successfully!")

	return Confirmation{OrderID: orderID, Totals: totals}, nil
}
