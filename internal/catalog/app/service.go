package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kitchencraft/storefront/internal/catalog/domain"
	"github.com/kitchencraft/storefront/pkg/money"
)

var ErrInvalidInput = errors.New("invalid input")

// Service owns the catalog collection. It is the only component that
// mutates it; every mutation rewrites the persisted blob.
type Service struct {
	repo CatalogRepo

	mu       sync.Mutex
	products []domain.Product
	lastID   int64
}

func NewService(repo CatalogRepo) *Service {
	return &Service{repo: repo}
}

// Load hydrates the catalog from storage. Missing or unreadable state falls
// back to the default seed, which is persisted immediately so the next load
// finds it.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.repo.Load(ctx)
	if errors.Is(err, ErrNoState) {
		products = domain.Seed()
		if err := s.repo.Save(ctx, products); err != nil {
			return fmt.Errorf("persist seed catalog: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	s.products = products
	for _, p := range products {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	return nil
}

// List returns the catalog in insertion order.
func (s *Service) List() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Service) Get(id int64) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Add validates the draft, assigns a fresh id and appends the product.
func (s *Service) Add(ctx context.Context, draft domain.Draft) (domain.Product, error) {
	name := strings.TrimSpace(draft.Name)
	image := strings.TrimSpace(draft.Image)
	category := strings.TrimSpace(draft.Category)

	if name == "" || image == "" || category == "" {
		return domain.Product{}, ErrInvalidInput
	}
	price, err := money.Parse(draft.Price)
	if err != nil {
		return domain.Product{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Product{
		ID:          s.nextID(),
		Name:        name,
		Description: draft.Description,
		Price:       price,
		Image:       image,
		Category:    category,
	}
	s.products = append(s.products, p)

	if err := s.repo.Save(ctx, s.products); err != nil {
		return domain.Product{}, fmt.Errorf("persist catalog: %w", err)
	}
	return p, nil
}

// Update merges the patch into the matching product. An unknown id is a
// silent no-op; the collection is persisted either way.
func (s *Service) Update(ctx context.Context, id int64, patch domain.Patch) error {
	var price *money.Cents
	if patch.Price != nil {
		parsed, err := money.Parse(*patch.Price)
		if err != nil {
			return ErrInvalidInput
		}
		price = &parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.products[i].Name = *patch.Name
		}
		if patch.Description != nil {
			s.products[i].Description = *patch.Description
		}
		if price != nil {
			s.products[i].Price = *price
		}
		if patch.Image != nil {
			s.products[i].Image = *patch.Image
		}
		if patch.Category != nil {
			s.products[i].Category = *patch.Category
		}
		break
	}

	if err := s.repo.Save(ctx, s.products); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}

// Remove deletes the matching product and persists the collection.
func (s *Service) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept

	if err := s.repo.Save(ctx, s.products); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}

// nextID mirrors the original millisecond-timestamp id scheme, bumped past
// the last assigned id so back-to-back adds never collide.
func (s *Service) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
