package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single expense record.
// AmountInINR is fixed at the rate in effect when the record was normalized;
// it is never recomputed when rates later change.
type Transaction struct {
	ID              int64           `json:"id"` // Assigned by the store on creation
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	AmountInINR     decimal.Decimal `json:"amountInINR"`
	Currency        string          `json:"currency"` // 3-letter code, uppercase
}
