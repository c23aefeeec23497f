// Package blobrepo stores the account collection as one JSON array under
// the identities key.
package blobrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kitchencraft/storefront/internal/identity/app"
	"github.com/kitchencraft/storefront/internal/identity/domain"
	"github.com/kitchencraft/storefront/pkg/blob"
)

const accountsKey = "identities"

type AccountRepo struct {
	store blob.Store
}

func NewAccountRepo(store blob.Store) *AccountRepo {
	return &AccountRepo{store: store}
}

func (r *AccountRepo) Load(ctx context.Context) ([]domain.Account, error) {
	data, err := r.store.Load(ctx, accountsKey)
	if errors.Is(err, blob.ErrNoBlob) {
		return nil, app.ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("load accounts blob: %w", err)
	}

	var accounts []domain.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, app.ErrNoState
	}
	return accounts, nil
}

func (r *AccountRepo) Save(ctx context.Context, accounts []domain.Account) error {
	if accounts == nil {
		accounts = []domain.Account{}
	}
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := r.store.Save(ctx, accountsKey, data); err != nil {
		return fmt.Errorf("save accounts blob: %w", err)
	}
	return nil
}
