package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shivamgupta-zluri/onboarding-project/internal/apperrors"
	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	portsrepo "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/repositories"
	portssvc "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/services"
)

// RateCacheService owns the current rate snapshot. It refreshes lazily: the
// first caller past the refresh interval fetches a new snapshot
// synchronously and replaces the cached one wholesale. Readers never see a
// partially-updated snapshot.
type RateCacheService struct {
	provider        portsrepo.RateProvider
	refreshInterval time.Duration
	now             func() time.Time

	mu       sync.RWMutex
	snapshot *domain.RateSnapshot
}

// NewRateCacheService creates a new RateCacheService.
func NewRateCacheService(provider portsrepo.RateProvider, refreshInterval time.Duration) *RateCacheService {
	return NewRateCacheServiceWithClock(provider, refreshInterval, time.Now)
}

// NewRateCacheServiceWithClock creates a RateCacheService with an injected
// clock for deterministic testing.
func NewRateCacheServiceWithClock(provider portsrepo.RateProvider, refreshInterval time.Duration, now func() time.Time) *RateCacheService {
	return &RateCacheService{
		provider:        provider,
		refreshInterval: refreshInterval,
		now:             now,
	}
}

// GetRates returns the cached snapshot, fetching a new one first if none
// exists or the cached one has expired. A fetch failure propagates to the
// caller; there is no stale-snapshot fallback.
func (s *RateCacheService) GetRates(ctx context.Context) (*domain.RateSnapshot, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot != nil && snapshot.Age(s.now()) <= s.refreshInterval {
		return snapshot, nil
	}

	// Fetch outside the lock. Concurrent expired callers may both fetch;
	// the last write wins and both results are equally current.
	rates, err := s.provider.FetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRateFetch, err)
	}

	fresh := &domain.RateSnapshot{
		Rates:     rates,
		FetchedAt: s.now(),
	}

	s.mu.Lock()
	s.snapshot = fresh
	s.mu.Unlock()

	return fresh, nil
}

// Ensure implementation matches interface
var _ portssvc.RateSvcFacade = (*RateCacheService)(nil)
