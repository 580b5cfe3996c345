package service

import (
	"context"
	"log"
	"time"

	"github.com/adverra/backend/internal/repository"
)

// ExpirySweeper periodically transitions registered domains past their
// expiry date to expired.
type ExpirySweeper struct {
	domains  *repository.DomainRepository
	interval time.Duration
}

// NewExpirySweeper creates a sweeper with a 1-hour interval.
func NewExpirySweeper(domains *repository.DomainRepository) *ExpirySweeper {
	return &ExpirySweeper{
		domains:  domains,
		interval: time.Hour,
	}
}

// Start begins the sweep loop in a background goroutine.
func (s *ExpirySweeper) Start(ctx context.Context) {
	// Sweep immediately, then on the ticker
	go func() {
		s.sweep(context.Background())
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(context.Background())
			}
		}
	}()
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	n, err := s.domains.ExpireOverdue(ctx)
	if err != nil {
		log.Printf("[Expiry] Sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[Expiry] Marked %d domain(s) expired", n)
	}
}
