package app

import (
	"context"
	"errors"

	"github.com/kitchencraft/storefront/internal/identity/domain"
)

// ErrNoState means no account blob was ever written or the stored blob does
// not parse; either way the provider starts with no accounts.
var ErrNoState = errors.New("no stored account state")

// AccountRepo persists the full account collection as one blob.
type AccountRepo interface {
	Load(ctx context.Context) ([]domain.Account, error)
	Save(ctx context.Context, accounts []domain.Account) error
}
