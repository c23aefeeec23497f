package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	cartapp "github.com/kitchencraft/storefront/internal/cart/app"
	cartdomain "github.com/kitchencraft/storefront/internal/cart/domain"
	catalogapp "github.com/kitchencraft/storefront/internal/catalog/app"
	catalogblob "github.com/kitchencraft/storefront/internal/catalog/infra/blobrepo"
	checkoutapp "github.com/kitchencraft/storefront/internal/checkout/app"
	checkoutdomain "github.com/kitchencraft/storefront/internal/checkout/domain"
	"github.com/kitchencraft/storefront/internal/checkout/infra/adapter"
	"github.com/kitchencraft/storefront/internal/checkout/infra/payment"
	identityapp "github.com/kitchencraft/storefront/internal/identity/app"
	identitydomain "github.com/kitchencraft/storefront/internal/identity/domain"
	identityblob "github.com/kitchencraft/storefront/internal/identity/infra/blobrepo"
	"github.com/kitchencraft/storefront/internal/notify"
	orderapp "github.com/kitchencraft/storefront/internal/order/app"
	orderblob "github.com/kitchencraft/storefront/internal/order/infra/blobrepo"
	"github.com/kitchencraft/storefront/pkg/blob"
	"github.com/kitchencraft/storefront/pkg/config"
	"github.com/kitchencraft/storefront/pkg/logger"
	"github.com/kitchencraft/storefront/pkg/money"
	"github.com/kitchencraft/storefront/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := openStore(cfg.Storage)
	if err != nil {
		log.Error("storage open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer store.Close()

	// Catalog
	catalogSvc := catalogapp.NewService(catalogblob.NewCatalogRepo(store))
	if err := catalogSvc.Load(ctx); err != nil {
		log.Error("catalog load failed", slog.Any("err", err))
		os.Exit(1)
	}

	// Identity
	provider := identityapp.NewProvider(identityblob.NewAccountRepo(store), cfg.Identity.JWTSecret)
	if err := provider.Load(ctx); err != nil {
		log.Error("identity load failed", slog.Any("err", err))
		os.Exit(1)
	}
	provider.Watch(func(id *identitydomain.Identity) {
		if id == nil {
			log.Debug("identity changed", slog.String("state", "signed out"))
			return
		}
		log.Debug("identity changed", slog.String("identity", id.ID))
	})

	// Cart + Order
	cartSvc := cartapp.NewService()
	orderSvc := orderapp.NewService(orderblob.NewOrderLog(store))

	// Checkout
	notifier := notify.NewLogNotifier(log)
	checkoutSvc := checkoutapp.NewService(
		adapter.NewCartServiceAdapter(cartSvc),
		adapter.NewIdentityProviderAdapter(provider),
		adapter.NewOrderServiceAdapter(orderSvc),
		payment.NewSimulator(cfg.Payment.Delay),
		notifier,
	)

	log.Info("storefront ready",
		slog.String("backend", cfg.Storage.Backend),
		slog.Int("catalog_size", len(catalogSvc.List())),
	)

	if os.Getenv("STOREFRONT_DEMO") == "1" {
		if err := runDemo(ctx, log, catalogSvc, cartSvc, orderSvc, checkoutSvc, provider); err != nil {
			log.Error("demo run failed", slog.Any("err", err))
			os.Exit(1)
		}
	}

	<-ctx.Done()
	log.Info("shutdown requested")
	log.Info("bye")
}

func openStore(cfg config.Storage) (blob.Store, error) {
	switch cfg.Backend {
	case "memory":
		return blob.NewMemoryStore(), nil
	case "file":
		return blob.NewFileStore(cfg.DataDir)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return blob.NewRedisStore(client, "storefront:"), nil
	case "sqlite":
		return blob.NewSQLiteStore(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// runDemo drives one complete purchase through the real wiring: sign up,
// fill the cart from the catalog, walk the checkout and print the order
// history.
func runDemo(
	ctx context.Context,
	log *slog.Logger,
	catalogSvc *catalogapp.Service,
	cartSvc *cartapp.Service,
	orderSvc *orderapp.Service,
	checkoutSvc *checkoutapp.Service,
	provider *identityapp.Provider,
) error {
	identity, err := provider.Signup(ctx, "demo@kitchencraft.dev", "demo-password", "Demo Shopper")
	if err != nil {
		identity, err = provider.Login(ctx, "demo@kitchencraft.dev", "demo-password")
		if err != nil {
			return fmt.Errorf("demo sign-in: %w", err)
		}
	}
	log.Info("signed in", slog.String("identity", identity.ID))

	products := catalogSvc.List()
	if len(products) < 2 {
		return fmt.Errorf("catalog too small for demo: %d products", len(products))
	}
	for _, p := range []int{0, 0, 1} {
		cartSvc.Add(cartdomain.ProductRef{
			ID:        products[p].ID,
			Name:      products[p].Name,
			UnitPrice: products[p].Price,
		})
	}
	log.Info("cart filled",
		slog.Int("count", cartSvc.Count()),
		slog.String("subtotal", money.Format(cartSvc.Total())),
	)

	sess, err := checkoutSvc.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin checkout: %w", err)
	}
	err = sess.SubmitShipping(checkoutdomain.ShippingInfo{
		FirstName: "Demo", LastName: "Shopper", Email: identity.Email,
		Phone: "555-0100", Address: "1 Main St", City: "Springfield",
		State: "IL", ZipCode: "62701", Country: "US",
	})
	if err != nil {
		return fmt.Errorf("submit shipping: %w", err)
	}
	conf, err := sess.SubmitPayment(ctx, checkoutdomain.CardInfo{
		CardNumber: "4242424242424242", ExpiryDate: "12/30", CVV: "123",
		CardholderName: "Demo Shopper",
	})
	if err != nil {
		return fmt.Errorf("submit payment: %w", err)
	}
	log.Info("order placed",
		slog.String("order_id", conf.OrderID),
		slog.String("total", money.Format(conf.Totals.Total)),
	)

	orders, err := orderSvc.List(ctx, identity.ID)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	log.Info("order history", slog.Int("orders", len(orders)))
	return nil
}
