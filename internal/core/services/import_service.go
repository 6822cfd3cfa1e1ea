package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	portsrepo "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/repositories"
	portssvc "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/services"
)

// ImportService runs the CSV batch import pipeline: one rate snapshot per
// batch, per-row normalization with accumulated errors, and all-or-nothing
// validation. Valid batches are persisted inside a single database
// transaction, so a mid-batch failure leaves nothing behind.
type ImportService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	rates   portssvc.RateSvcFacade
	now     func() time.Time
}

// NewImportService creates a new ImportService.
func NewImportService(txnRepo portsrepo.TransactionRepositoryFacade, rates portssvc.RateSvcFacade) *ImportService {
	return NewImportServiceWithClock(txnRepo, rates, time.Now)
}

// NewImportServiceWithClock creates an ImportService with an injected clock
// for deterministic testing.
func NewImportServiceWithClock(txnRepo portsrepo.TransactionRepositoryFacade, rates portssvc.RateSvcFacade, now func() time.Time) *ImportService {
	return &ImportService{
		txnRepo: txnRepo,
		rates:   rates,
		now:     now,
	}
}

// ImportBatch normalizes every row against a single snapshot fetched at
// batch start. Any row error rejects the whole batch without persisting
// anything; only fully valid batches are committed.
func (s *ImportService) ImportBatch(ctx context.Context, rows []domain.RawRow) (*domain.BatchResult, error) {
	if len(rows) == 0 {
		return &domain.BatchResult{}, nil
	}

	snapshot, err := s.rates.GetRates(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	normalized := make([]domain.Transaction, 0, len(rows))
	var rowErrs []domain.RowError

	for _, raw := range rows {
		txn, rowErr := domain.NormalizeRow(raw, snapshot.Rates, today)
		if rowErr != nil {
			rowErrs = append(rowErrs, *rowErr)
			continue
		}
		normalized = append(normalized, *txn)
	}

	if len(rowErrs) > 0 {
		return &domain.BatchResult{Errors: rowErrs}, nil
	}

	imported, err := s.txnRepo.SaveTransactionsBatch(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to persist import batch of %d rows: %w", len(normalized), err)
	}

	return &domain.BatchResult{Imported: imported}, nil
}

// Ensure implementation matches interface
var _ portssvc.ImportSvcFacade = (*ImportService)(nil)
