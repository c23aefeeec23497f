package adapter_test

import (
	"context"
	"errors"
	"testing"

	cartapp "github.com/kitchencraft/storefront/internal/cart/app"
	cartdomain "github.com/kitchencraft/storefront/internal/cart/domain"
	checkoutapp "github.com/kitchencraft/storefront/internal/checkout/app"
	checkoutdomain "github.com/kitchencraft/storefront/internal/checkout/domain"
	"github.com/kitchencraft/storefront/internal/checkout/infra/adapter"
	"github.com/kitchencraft/storefront/internal/checkout/infra/payment"
	identityapp "github.com/kitchencraft/storefront/internal/identity/app"
	identityblob "github.com/kitchencraft/storefront/internal/identity/infra/blobrepo"
	orderapp "github.com/kitchencraft/storefront/internal/order/app"
	orderblob "github.com/kitchencraft/storefront/internal/order/infra/blobrepo"
	"github.com/kitchencraft/storefront/pkg/blob"
)

type storefront struct {
	cart     *cartapp.Service
	orders   *orderapp.Service
	provider *identityapp.Provider
	checkout *checkoutapp.Service
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()
	store := blob.NewMemoryStore()

	provider := identityapp.NewProvider(identityblob.NewAccountRepo(store), "test-secret")
	if err := provider.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	cartSvc := cartapp.NewService()
	orderSvc := orderapp.NewService(orderblob.NewOrderLog(store))

	checkoutSvc := checkoutapp.NewService(
		adapter.NewCartServiceAdapter(cartSvc),
		adapter.NewIdentityProviderAdapter(provider),
		adapter.NewOrderServiceAdapter(orderSvc),
		payment.NewSimulator(0),
		nil,
	)

	return &storefront{cart: cartSvc, orders: orderSvc, provider: provider, checkout: checkoutSvc}
}

func TestCheckoutEndToEnd(t *testing.T) {
	ctx := context.Background()
	sf := newStorefront(t)

	identity, err := sf.provider.Signup(ctx, "ana@example.com", "hunter2", "Ana")
	if err != nil {
		t.Fatal(err)
	}

	// $10 x2 and $5 x1.
	sf.cart.Add(cartdomain.ProductRef{ID: 1, Name: "Chef Knife", UnitPrice: 1000})
	sf.cart.Add(cartdomain.ProductRef{ID: 1, Name: "Chef Knife", UnitPrice: 1000})
	sf.cart.Add(cartdomain.ProductRef{ID: 9, Name: "Zester", UnitPrice: 500})

	sess, err := sf.checkout.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	err = sess.SubmitShipping(checkoutdomain.ShippingInfo{
		FirstName: "Ana", LastName: "Reyes", Email: "ana@example.com",
		Phone: "555-0100", Address: "1 Main St", City: "Springfield",
		State: "IL", ZipCode: "62701", Country: "US",
	})
	if err != nil {
		t.Fatalf("SubmitShipping failed: %v", err)
	}
	conf, err := sess.SubmitPayment(ctx, checkoutdomain.CardInfo{
		CardNumber: "4242", ExpiryDate: "12/30", CVV: "123", CardholderName: "Ana Reyes",
	})
	if err != nil {
		t.Fatalf("SubmitPayment failed: %v", err)
	}

	if conf.Totals.Total != 3699 {
		t.Fatalf("expected total 3699, got %d", conf.Totals.Total)
	}
	if got := sf.cart.Count(); got != 0 {
		t.Fatalf("cart not cleared: count %d", got)
	}

	orders, err := sf.orders.List(ctx, identity.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].Total != 3699 {
		t.Fatalf("logged total = %d, want 3699", orders[0].Total)
	}
	if len(orders[0].Items) != 2 {
		t.Fatalf("expected 2 snapshot items, got %d", len(orders[0].Items))
	}
}

func TestCheckoutBlockedWhenSignedOut(t *testing.T) {
	sf := newStorefront(t)
	sf.cart.Add(cartdomain.ProductRef{ID: 1, Name: "Chef Knife", UnitPrice: 1000})

	if _, err := sf.checkout.Begin(context.Background()); !errors.Is(err, checkoutapp.ErrNotSignedIn) {
		t.Fatalf("expected ErrNotSignedIn, got %v", err)
	}
	if got := sf.cart.Count(); got != 1 {
		t.Fatalf("cart changed: count %d", got)
	}
}

func TestOrderSnapshotSurvivesCatalogPriceChange(t *testing.T) {
	ctx := context.Background()
	sf := newStorefront(t)

	identity, err := sf.provider.Signup(ctx, "ana@example.com", "hunter2", "Ana")
	if err != nil {
		t.Fatal(err)
	}

	sf.cart.Add(cartdomain.ProductRef{ID: 1, Name: "Chef Knife", UnitPrice: 1000})

	sess, err := sf.checkout.Begin(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.SubmitShipping(checkoutdomain.ShippingInfo{
		FirstName: "Ana", LastName: "Reyes", Email: "a@b.c", Phone: "1",
		Address: "x", City: "y", State: "z", ZipCode: "0", Country: "US",
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.SubmitPayment(ctx, checkoutdomain.CardInfo{
		CardNumber: "4242", ExpiryDate: "12/30", CVV: "123", CardholderName: "Ana",
	}); err != nil {
		t.Fatal(err)
	}

	orders, err := sf.orders.List(ctx, identity.ID)
	if err != nil {
		t.Fatal(err)
	}
	if orders[0].Items[0].UnitPrice != 1000 {
		t.Fatalf("snapshot price = %d, want 1000", orders[0].Items[0].UnitPrice)
	}
}
