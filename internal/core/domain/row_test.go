package domain_test

import (
	"testing"
	"time"

	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRates = map[string]float64{
	"USD": 83.12,
	"EUR": 90.5,
	"INR": 1,
}

func testToday() time.Time {
	return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
}

func TestNormalizeRow_ValidCSVRow(t *testing.T) {
	raw := domain.RawRow{
		Row:         1,
		Date:        "25-12-2023",
		Description: "Coffee",
		Amount:      "10",
		Currency:    "USD",
		Source:      domain.SourceCSV,
	}

	txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

	require.Nil(t, rowErr)
	require.NotNil(t, txn)
	assert.Equal(t, "2023-12-25", txn.TransactionDate.Format("2006-01-02"))
	assert.Equal(t, "Coffee", txn.Description)
	assert.True(t, decimal.NewFromInt(10).Equal(txn.OriginalAmount))
	assert.True(t, decimal.RequireFromString("0.12").Equal(txn.AmountInINR), "got %s", txn.AmountInINR)
	assert.Equal(t, "USD", txn.Currency)
	assert.Zero(t, txn.ID)
}

func TestNormalizeRow_PadsSingleDigitDayAndMonth(t *testing.T) {
	raw := domain.RawRow{
		Date:        "5-1-2023",
		Description: "Lunch",
		Amount:      "20",
		Currency:    "EUR",
		Source:      domain.SourceCSV,
	}

	txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

	require.Nil(t, rowErr)
	assert.Equal(t, "2023-01-05", txn.TransactionDate.Format("2006-01-02"))
}

func TestNormalizeRow_LowercaseCurrencyIsUppercased(t *testing.T) {
	raw := domain.RawRow{
		Date:        "25-12-2023",
		Description: "Coffee",
		Amount:      "10",
		Currency:    "usd",
		Source:      domain.SourceCSV,
	}

	txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

	require.Nil(t, rowErr)
	assert.Equal(t, "USD", txn.Currency)
}

func TestNormalizeRow_RoundsHalfAwayFromZero(t *testing.T) {
	// 1 / 8 = 0.125, which must round up to 0.13.
	rates := map[string]float64{"USD": 8}
	raw := domain.RawRow{
		Date:        "25-12-2023",
		Description: "Snack",
		Amount:      "1",
		Currency:    "USD",
		Source:      domain.SourceCSV,
	}

	txn, rowErr := domain.NormalizeRow(raw, rates, testToday())

	require.Nil(t, rowErr)
	assert.True(t, decimal.RequireFromString("0.13").Equal(txn.AmountInINR), "got %s", txn.AmountInINR)
}

func TestNormalizeRow_MissingFields(t *testing.T) {
	base := domain.RawRow{
		Row:         2,
		Date:        "25-12-2023",
		Description: "Coffee",
		Amount:      "10",
		Currency:    "USD",
		Source:      domain.SourceCSV,
	}

	tests := []struct {
		name   string
		mutate func(r *domain.RawRow)
	}{
		{"missing date", func(r *domain.RawRow) { r.Date = "" }},
		{"missing description", func(r *domain.RawRow) { r.Description = "  " }},
		{"missing amount", func(r *domain.RawRow) { r.Amount = "" }},
		{"missing currency", func(r *domain.RawRow) { r.Currency = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := base
			tt.mutate(&raw)

			txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

			assert.Nil(t, txn)
			require.NotNil(t, rowErr)
			assert.Equal(t, domain.ReasonMissingField, rowErr.Reason)
			assert.Equal(t, 2, rowErr.Row)
		})
	}
}

func TestNormalizeRow_InvalidDateFormat(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"no separators", "25/12/2023"},
		{"two parts", "25-12"},
		{"four parts", "25-12-20-23"},
		{"non-numeric parts", "aa-bb-cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := domain.RawRow{
				Date:        tt.date,
				Description: "Coffee",
				Amount:      "10",
				Currency:    "USD",
				Source:      domain.SourceCSV,
			}

			txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

			assert.Nil(t, txn)
			require.NotNil(t, rowErr)
			assert.Equal(t, domain.ReasonInvalidDateFormat, rowErr.Reason)
		})
	}
}

func TestNormalizeRow_FutureDateRejectedForCSV(t *testing.T) {
	raw := domain.RawRow{
		Date:        "16-01-2024", // one day past testToday
		Description: "Coffee",
		Amount:      "10",
		Currency:    "USD",
		Source:      domain.SourceCSV,
	}

	txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

	assert.Nil(t, txn)
	require.NotNil(t, rowErr)
	assert.Equal(t, domain.ReasonFutureDate, rowErr.Reason)
}

func TestNormalizeRow_TodayIsNotFuture(t *testing.T) {
	raw := domain.RawRow{
		Date:        "15-01-2024",
		Description: "Coffee",
		Amount:      "10",
		Currency:    "USD",
		Source:      domain.SourceCSV,
	}

	_, rowErr := domain.NormalizeRow(raw, testRates, testToday())

	assert.Nil(t, rowErr)
}

func TestNormalizeRow_FormSourceExemptFromFutureCheck(t *testing.T) {
	raw := domain.RawRow{
		Date:        "2024-01-16",
		Description: "Planned expense",
		Amount:      "10",
		Currency:    "USD",
		Source:      domain.SourceForm,
	}

	txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

	require.Nil(t, rowErr)
	assert.Equal(t, "2024-01-16", txn.TransactionDate.Format("2006-01-02"))
}

func TestNormalizeRow_UnsupportedCurrency(t *testing.T) {
	raw := domain.RawRow{
		Row:         3,
		Date:        "25-12-2023",
		Description: "Coffee",
		Amount:      "10",
		Currency:    "XYZ",
		Source:      domain.SourceCSV,
	}

	txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

	assert.Nil(t, txn)
	require.NotNil(t, rowErr)
	assert.Equal(t, domain.ReasonUnsupportedCurrency, rowErr.Reason)
	assert.Contains(t, rowErr.Message, "XYZ")
}

func TestNormalizeRow_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"not a number", "abc"},
		{"negative", "-5"},
		{"zero", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := domain.RawRow{
				Date:        "25-12-2023",
				Description: "Coffee",
				Amount:      tt.amount,
				Currency:    "USD",
				Source:      domain.SourceCSV,
			}

			txn, rowErr := domain.NormalizeRow(raw, testRates, testToday())

			assert.Nil(t, txn)
			require.NotNil(t, rowErr)
			assert.Equal(t, domain.ReasonInvalidAmount, rowErr.Reason)
		})
	}
}
