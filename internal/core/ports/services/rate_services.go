package services

import (
	"context"

	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
)

// RateSvcFacade exposes the cached exchange-rate snapshot. Implementations
// refresh lazily: a call past the refresh interval fetches synchronously
// before returning.
type RateSvcFacade interface {
	GetRates(ctx context.Context) (*domain.RateSnapshot, error)
}

// ImportSvcFacade runs the CSV batch import pipeline.
type ImportSvcFacade interface {
	// ImportBatch normalizes every row against one rate snapshot and
	// persists the batch only if every row is valid.
	ImportBatch(ctx context.Context, rows []domain.RawRow) (*domain.BatchResult, error)
}
