package adapter

import (
	checkoutapp "github.com/kitchencraft/storefront/internal/checkout/app"
	identityapp "github.com/kitchencraft/storefront/internal/identity/app"
)

// IdentityProviderAdapter exposes the identity provider through checkout's
// IdentityReader port.
type IdentityProviderAdapter struct {
	provider *identityapp.Provider
}

func NewIdentityProviderAdapter(provider *identityapp.Provider) *IdentityProviderAdapter {
	return &IdentityProviderAdapter{provider: provider}
}

func (a *IdentityProviderAdapter) Current() *checkoutapp.Identity {
	id := a.provider.Current()
	if id == nil {
		return nil
	}
	return &checkoutapp.Identity{ID: id.ID, Email: id.Email}
}
