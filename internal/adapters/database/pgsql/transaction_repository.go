package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shivamgupta-zluri/onboarding-project/internal/apperrors"
	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	portsrepo "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/repositories"
	"github.com/shivamgupta-zluri/onboarding-project/internal/models"
	"github.com/shivamgupta-zluri/onboarding-project/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction and returns it with the assigned id.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_date, description, original_amount, amount_in_inr, currency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelTxn.TransactionDate,
		modelTxn.Description,
		modelTxn.OriginalAmount,
		modelTxn.AmountInINR,
		modelTxn.Currency,
	).Scan(&modelTxn.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// FindTransactionByID retrieves a transaction by its id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
		SELECT id, transaction_date, description, original_amount, amount_in_inr, currency
		FROM transactions
		WHERE id = $1;
	`
	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&modelTxn.ID,
		&modelTxn.TransactionDate,
		&modelTxn.Description,
		&modelTxn.OriginalAmount,
		&modelTxn.AmountInINR,
		&modelTxn.Currency,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by id %d: %w", id, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves transactions ordered by descending id.
// limit <= 0 disables the limit; beforeID > 0 restricts to ids below it.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, beforeID int64) ([]domain.Transaction, error) {
	query := `
		SELECT id, transaction_date, description, original_amount, amount_in_inr, currency
		FROM transactions
		WHERE ($1 = 0 OR id < $1)
		ORDER BY id DESC;
	`
	args := []any{beforeID}
	if limit > 0 {
		query = `
		SELECT id, transaction_date, description, original_amount, amount_in_inr, currency
		FROM transactions
		WHERE ($1 = 0 OR id < $1)
		ORDER BY id DESC
		LIMIT $2;
	`
		args = append(args, limit)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var txn models.Transaction
		err := row.Scan(
			&txn.ID,
			&txn.TransactionDate,
			&txn.Description,
			&txn.OriginalAmount,
			&txn.AmountInINR,
			&txn.Currency,
		)
		return txn, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, id int64, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET transaction_date = $1, description = $2, original_amount = $3, amount_in_inr = $4, currency = $5
		WHERE id = $6
		RETURNING id, transaction_date, description, original_amount, amount_in_inr, currency;
	`

	var updated models.Transaction
	err := r.Pool.QueryRow(ctx, query,
		modelTxn.TransactionDate,
		modelTxn.Description,
		modelTxn.OriginalAmount,
		modelTxn.AmountInINR,
		modelTxn.Currency,
		id,
	).Scan(
		&updated.ID,
		&updated.TransactionDate,
		&updated.Description,
		&updated.OriginalAmount,
		&updated.AmountInINR,
		&updated.Currency,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update transaction %d: %w", id, err)
	}

	domainTxn := mapping.ToDomainTransaction(updated)
	return &domainTxn, nil
}

// SaveTransactionsBatch inserts all transactions within one database
// transaction. A failure on any row rolls back the whole batch.
func (r *PgxTransactionRepository) SaveTransactionsBatch(ctx context.Context, txns []domain.Transaction) (int, error) {
	if len(txns) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	query := `
		INSERT INTO transactions (transaction_date, description, original_amount, amount_in_inr, currency)
		VALUES ($1, $2, $3, $4, $5);
	`

	for i, txn := range txns {
		modelTxn := mapping.ToModelTransaction(txn)
		_, err := tx.Exec(ctx, query,
			modelTxn.TransactionDate,
			modelTxn.Description,
			modelTxn.OriginalAmount,
			modelTxn.AmountInINR,
			modelTxn.Currency,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert batch transaction %d of %d: %w", i+1, len(txns), err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(txns), nil
}

// DeleteTransaction removes a transaction. Deleting an absent id succeeds.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	query := `DELETE FROM transactions WHERE id = $1;`

	_, err := r.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	return nil
}
