package blobrepo

import (
	"context"
	"testing"
	"time"

	"github.com/kitchencraft/storefront/internal/order/domain"
	"github.com/kitchencraft/storefront/pkg/blob"
)

func sampleOrder(id string) domain.Order {
	return domain.Order{
		ID:     id,
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status: domain.StatusDelivered,
		Items:  []domain.Item{{Name: "Chef Knife", Quantity: 1, UnitPrice: 8999}},
		Total:  8999,
	}
}

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	log := NewOrderLog(blob.NewMemoryStore())

	if err := log.Append(ctx, "user-1", sampleOrder("ORD-001")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := log.Append(ctx, "user-1", sampleOrder("ORD-002")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := log.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}
	if got[0].ID != "ORD-001" || got[1].ID != "ORD-002" {
		t.Fatalf("append order not preserved: %+v", got)
	}
}

func TestListUnknownIdentityIsEmpty(t *testing.T) {
	log := NewOrderLog(blob.NewMemoryStore())

	got, err := log.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestIdentitiesArePartitioned(t *testing.T) {
	ctx := context.Background()
	log := NewOrderLog(blob.NewMemoryStore())

	if err := log.Append(ctx, "alice", sampleOrder("ORD-A")); err != nil {
		t.Fatal(err)
	}

	got, err := log.List(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("bob sees alice's orders: %+v", got)
	}
}

func TestCorruptBlobReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := blob.NewMemoryStore()
	if err := store.Save(ctx, "orders_user-1", []byte("not json at all")); err != nil {
		t.Fatal(err)
	}
	log := NewOrderLog(store)

	got, err := log.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty after corrupt blob, got %+v", got)
	}

	// Appending over a corrupt blob starts a fresh sequence.
	if err := log.Append(ctx, "user-1", sampleOrder("ORD-003")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	got, err = log.List(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "ORD-003" {
		t.Fatalf("unexpected sequence: %+v", got)
	}
}
