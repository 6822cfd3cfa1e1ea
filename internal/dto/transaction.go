package dto

import (
	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction
// from the add-transaction form. The INR amount is computed server-side from
// the cached rates; any client-supplied value is ignored.
type CreateTransactionRequest struct {
	TransactionDate string          `json:"transactionDate" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	OriginalAmount  decimal.Decimal `json:"originalAmount" binding:"required"`
	Currency        string          `json:"currency" binding:"required,len=3"`
}

// UpdateTransactionRequest defines the data needed to update a transaction.
type UpdateTransactionRequest struct {
	TransactionDate string          `json:"transactionDate" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	OriginalAmount  decimal.Decimal `json:"originalAmount" binding:"required"`
	Currency        string          `json:"currency" binding:"required,len=3"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID              int64           `json:"id"`
	TransactionDate string          `json:"transactionDate"`
	Description     string          `json:"description"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	AmountInINR     decimal.Decimal `json:"amountInINR"`
	Currency        string          `json:"currency"`
}

// ListTransactionsParams carries the optional pagination inputs for listing.
type ListTransactionsParams struct {
	Limit     int
	NextToken string
}

// ListTransactionsResponse wraps a page of transactions. NextToken is set
// only when another page may exist.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              txn.ID,
		TransactionDate: txn.TransactionDate.Format("2006-01-02"),
		Description:     txn.Description,
		OriginalAmount:  txn.OriginalAmount,
		AmountInINR:     txn.AmountInINR,
		Currency:        txn.Currency,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
