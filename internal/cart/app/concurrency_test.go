package app_test

import (
	"testing"

	"github.com/kitchencraft/storefront/internal/cart/app"
	"github.com/kitchencraft/storefront/internal/cart/domain"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentAddsMergeIntoOneLine(t *testing.T) {
	svc := app.NewService()
	ref := domain.ProductRef{ID: 7, Name: "Baking Mats", UnitPrice: 2999}

	const n = 100
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			svc.Add(ref)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Add failed: %v", err)
	}

	lines := svc.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != n {
		t.Fatalf("expected quantity %d, got %d", n, lines[0].Quantity)
	}
	if got := svc.Count(); got != n {
		t.Fatalf("expected count %d, got %d", n, got)
	}
}

func TestConcurrentReadersSeeConsistentCart(t *testing.T) {
	svc := app.NewService()
	svc.Add(domain.ProductRef{ID: 1, Name: "Knife", UnitPrice: 1000})

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			svc.Add(domain.ProductRef{ID: 1, Name: "Knife", UnitPrice: 1000})
			return nil
		})
		g.Go(func() error {
			total := svc.Total()
			if total%1000 != 0 {
				t.Errorf("observed torn total %d", total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent access failed: %v", err)
	}
}
