package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kitchencraft/storefront/internal/checkout/domain"
)

func TestChargeSucceedsAfterDelay(t *testing.T) {
	sim := NewSimulator(10 * time.Millisecond)

	start := time.Now()
	if err := sim.Charge(context.Background(), domain.CardInfo{}); err != nil {
		t.Fatalf("Charge failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("charge returned before the delay: %v", elapsed)
	}
}

func TestChargeInjectedFailure(t *testing.T) {
	sim := NewSimulator(0)
	declined := errors.New("card declined")
	sim.FailWith(declined)

	if err := sim.Charge(context.Background(), domain.CardInfo{}); !errors.Is(err, declined) {
		t.Fatalf("expected injected failure, got %v", err)
	}

	sim.FailWith(nil)
	if err := sim.Charge(context.Background(), domain.CardInfo{}); err != nil {
		t.Fatalf("expected success after reset, got %v", err)
	}
}

func TestChargeHonorsContext(t *testing.T) {
	sim := NewSimulator(time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := sim.Charge(ctx, domain.CardInfo{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}
