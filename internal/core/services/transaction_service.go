package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shivamgupta-zluri/onboarding-project/internal/apperrors"
	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	portsrepo "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/repositories"
	portssvc "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/services"
	"github.com/shivamgupta-zluri/onboarding-project/internal/dto"
	"github.com/shivamgupta-zluri/onboarding-project/internal/utils/pagination"
)

// TransactionService provides business logic for single-transaction CRUD.
// Create and update normalize the submitted fields against the current rate
// snapshot; the INR amount is never recomputed afterwards.
type TransactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
	rates   portssvc.RateSvcFacade
	now     func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, rates portssvc.RateSvcFacade) *TransactionService {
	return NewTransactionServiceWithClock(txnRepo, rates, time.Now)
}

// NewTransactionServiceWithClock creates a TransactionService with an
// injected clock for deterministic testing.
func NewTransactionServiceWithClock(txnRepo portsrepo.TransactionRepositoryFacade, rates portssvc.RateSvcFacade, now func() time.Time) *TransactionService {
	return &TransactionService{
		txnRepo: txnRepo,
		rates:   rates,
		now:     now,
	}
}

// CreateTransaction normalizes a form submission and persists it.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.normalize(ctx, req.TransactionDate, req.Description, req.OriginalAmount.String(), req.Currency)
	if err != nil {
		return nil, err
	}

	saved, err := s.txnRepo.SaveTransaction(ctx, *txn)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}
	return saved, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *TransactionService) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by id in service: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves transactions, most recent first. With a
// positive limit the response carries a cursor token for the next page.
func (s *TransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	var beforeID int64
	if params.NextToken != "" {
		id, err := pagination.DecodeIDToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		beforeID = id
	}

	txns, err := s.txnRepo.ListTransactions(ctx, params.Limit, beforeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
	}
	if params.Limit > 0 && len(txns) == params.Limit {
		token := pagination.EncodeIDToken(txns[len(txns)-1].ID)
		resp.NextToken = &token
	}
	return resp, nil
}

// UpdateTransaction re-normalizes the submitted fields and replaces the
// stored record. The INR amount is recomputed from the current snapshot
// because the client resubmits amount and currency.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.normalize(ctx, req.TransactionDate, req.Description, req.OriginalAmount.String(), req.Currency)
	if err != nil {
		return nil, err
	}

	updated, err := s.txnRepo.UpdateTransaction(ctx, id, *txn)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction in service: %w", err)
	}
	return updated, nil
}

// DeleteTransaction removes a transaction. Deleting an absent id succeeds.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.txnRepo.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction in service: %w", err)
	}
	return nil
}

func (s *TransactionService) normalize(ctx context.Context, date, description, amount, currency string) (*domain.Transaction, error) {
	snapshot, err := s.rates.GetRates(ctx)
	if err != nil {
		return nil, err
	}

	raw := domain.RawRow{
		Date:        date,
		Description: description,
		Amount:      amount,
		Currency:    currency,
		Source:      domain.SourceForm,
	}

	txn, rowErr := domain.NormalizeRow(raw, snapshot.Rates, s.now())
	if rowErr != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, rowErr.Message)
	}
	return txn, nil
}

// Ensure implementation matches interface
var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
