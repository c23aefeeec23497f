package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kitchencraft/storefront/internal/identity/domain"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Provider is the in-process stand-in for the external identity service.
// It owns the account collection and the current-session state, and fans
// identity changes out to subscribed watchers.
type Provider struct {
	repo   AccountRepo
	hasher passwordHasher
	tokens tokenManager

	mu       sync.Mutex
	accounts []domain.Account
	current  *domain.Identity
	watchers []func(*domain.Identity)
}

func NewProvider(repo AccountRepo, jwtSecret string) *Provider {
	return &Provider{
		repo:   repo,
		hasher: newPasswordHasher(),
		tokens: newTokenManager(jwtSecret),
	}
}

// Load hydrates the account collection. Missing or unreadable state starts
// the provider empty.
func (p *Provider) Load(ctx context.Context) error {
	accounts, err := p.repo.Load(ctx)
	if errors.Is(err, ErrNoState) {
		accounts = nil
	} else if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	p.mu.Lock()
	p.accounts = accounts
	p.mu.Unlock()
	return nil
}

// Signup registers a new account and signs it in.
func (p *Provider) Signup(ctx context.Context, email, password, displayName string) (*domain.Identity, error) {
	email = normalizeEmail(email)
	displayName = strings.TrimSpace(displayName)
	if email == "" || password == "" || displayName == "" {
		return nil, ErrInvalidInput
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, acc := range p.accounts {
		if acc.Identity.Email == email {
			return nil, ErrEmailTaken
		}
	}

	account := domain.Account{
		Identity: domain.Identity{
			ID:          uuid.NewString(),
			Email:       email,
			DisplayName: displayName,
			CreatedAt:   time.Now().UTC(),
		},
		PasswordHash: hash,
	}
	p.accounts = append(p.accounts, account)

	if err := p.repo.Save(ctx, p.accounts); err != nil {
		p.accounts = p.accounts[:len(p.accounts)-1]
		return nil, fmt.Errorf("persist accounts: %w", err)
	}

	id := account.Identity
	p.setCurrentLocked(&id)
	return &id, nil
}

// Login signs an existing account in.
func (p *Provider) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, acc := range p.accounts {
		if acc.Identity.Email != email {
			continue
		}
		if !p.hasher.Verify(password, acc.PasswordHash) {
			return nil, ErrInvalidCredentials
		}
		id := acc.Identity
		p.setCurrentLocked(&id)
		return &id, nil
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the current session. Safe to call when nobody is signed in.
func (p *Provider) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setCurrentLocked(nil)
}

// Current returns the signed-in identity, or nil.
func (p *Provider) Current() *domain.Identity {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return nil
	}
	id := *p.current
	return &id
}

// Watch subscribes to identity changes. The callback fires immediately with
// the current state and again on every login, signup and logout.
func (p *Provider) Watch(fn func(*domain.Identity)) {
	p.mu.Lock()
	p.watchers = append(p.watchers, fn)
	current := p.current
	p.mu.Unlock()

	fn(current)
}

// SessionToken issues a token for the current identity so a later process
// can restore the session.
func (p *Provider) SessionToken() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return "", ErrInvalidCredentials
	}
	return p.tokens.Issue(p.current.ID, p.current.Email)
}

// Restore signs in from a previously issued session token.
func (p *Provider) Restore(ctx context.Context, token string) (*domain.Identity, error) {
	identityID, err := p.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, acc := range p.accounts {
		if acc.Identity.ID == identityID {
			id := acc.Identity
			p.setCurrentLocked(&id)
			return &id, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (p *Provider) setCurrentLocked(id *domain.Identity) {
	p.current = id
	for _, fn := range p.watchers {
		fn(id)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
