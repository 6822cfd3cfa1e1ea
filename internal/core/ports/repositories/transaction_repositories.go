package repositories

import (
	"context"

	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its id.
	FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// ListTransactions retrieves transactions ordered by descending id.
	// limit <= 0 means no limit; beforeID > 0 restricts to ids below it.
	ListTransactions(ctx context.Context, limit int, beforeID int64) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and returns it with the
	// store-assigned id.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// UpdateTransaction replaces the mutable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, id int64, txn domain.Transaction) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction. Deleting an absent id is not
	// an error.
	DeleteTransaction(ctx context.Context, id int64) error

	// SaveTransactionsBatch persists all transactions inside a single
	// database transaction and returns the number inserted. Either every
	// row is committed or none are.
	SaveTransactionsBatch(ctx context.Context, txns []domain.Transaction) (int, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
