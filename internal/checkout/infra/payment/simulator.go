// Package payment holds the simulated processor. There is no gateway
// behind it; it waits out a configured delay and reports the injected
// outcome.
package payment

import (
	"context"
	"sync"
	"time"

	"github.com/kitchencraft/storefront/internal/checkout/domain"
)

type Simulator struct {
	delay time.Duration

	mu  sync.Mutex
	err error
}

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// FailWith makes subsequent charges fail with err; nil restores success.
func (s *Simulator) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Simulator) Charge(ctx context.Context, _ domain.CardInfo) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
