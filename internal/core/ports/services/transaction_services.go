package services

import (
	"context"

	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	"github.com/shivamgupta-zluri/onboarding-project/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its id.
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions retrieves transactions, most recent first, with
	// optional cursor pagination.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction normalizes and persists a single form submission.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction re-normalizes the submitted fields and replaces the
	// stored record.
	UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction; absent ids succeed.
	DeleteTransaction(ctx context.Context, id int64) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
