package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database-layer representation of an expense record.
type Transaction struct {
	ID              int64           `db:"id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	OriginalAmount  decimal.Decimal `db:"original_amount"`
	AmountInINR     decimal.Decimal `db:"amount_in_inr"`
	Currency        string          `db:"currency"`
}
