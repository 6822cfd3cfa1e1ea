package mapping

import (
	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	"github.com/shivamgupta-zluri/onboarding-project/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:              d.ID,
		TransactionDate: d.TransactionDate,
		Description:     d.Description,
		OriginalAmount:  d.OriginalAmount,
		AmountInINR:     d.AmountInINR,
		Currency:        d.Currency,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:              m.ID,
		TransactionDate: m.TransactionDate,
		Description:     m.Description,
		OriginalAmount:  m.OriginalAmount,
		AmountInINR:     m.AmountInINR,
		Currency:        m.Currency,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
