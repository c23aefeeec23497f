package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kitchencraft/storefront/internal/order/domain"
	"github.com/kitchencraft/storefront/pkg/money"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	log OrderLog
}

func NewService(log OrderLog) *Service {
	return &Service{log: log}
}

// Record builds the order snapshot for a completed checkout and appends it
// to the identity's log.
func (s *Service) Record(ctx context.Context, identityID string, items []domain.Item, total money.Cents) (domain.Order, error) {
	if identityID == "" {
		return domain.Order{}, ErrInvalidInput
	}
	if len(items) == 0 {
		return domain.Order{}, ErrInvalidInput
	}
	for i, item := range items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be positive, got %d: %w", i, item.Quantity, ErrInvalidInput)
		}
		if item.UnitPrice < 0 {
			return domain.Order{}, fmt.Errorf("item %d: price cannot be negative, got %d: %w", i, item.UnitPrice, ErrInvalidInput)
		}
	}

	order := domain.Order{
		ID:     domain.NewID(),
		Date:   time.Now().UTC(),
		Status: domain.StatusProcessing,
		Items:  items,
		Total:  total,
	}

	if err := s.log.Append(ctx, identityID, order); err != nil {
		return domain.Order{}, fmt.Errorf("append order: %w", err)
	}
	return order, nil
}

// List returns the identity's orders in append order, empty if none.
func (s *Service) List(ctx context.Context, identityID string) ([]domain.Order, error) {
	if identityID == "" {
		return nil, ErrInvalidInput
	}
	return s.log.List(ctx, identityID)
}
