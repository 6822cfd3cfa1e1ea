package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RowSource identifies where a raw row came from. CSV rows carry
// dd-mm-yyyy dates and are subject to the future-date check; form rows
// arrive as yyyy-mm-dd and are exempt.
type RowSource string

const (
	SourceForm RowSource = "FORM"
	SourceCSV  RowSource = "CSV"
)

// RawRow is one unvalidated record from a form submission or a CSV line.
type RawRow struct {
	Row         int // 1-based position in the batch, 0 for single submissions
	Date        string
	Description string
	Amount      string
	Currency    string
	Source      RowSource
}

// RowErrorReason classifies why a row failed normalization.
type RowErrorReason string

const (
	ReasonMissingField        RowErrorReason = "missing_field"
	ReasonInvalidDateFormat   RowErrorReason = "invalid_date_format"
	ReasonFutureDate          RowErrorReason = "future_date"
	ReasonUnsupportedCurrency RowErrorReason = "unsupported_currency"
	ReasonInvalidAmount       RowErrorReason = "invalid_amount"
)

// RowError reports a recoverable, per-row normalization failure. It is a
// value collected into a batch report, not a Go error.
type RowError struct {
	Row     int            `json:"row"`
	Reason  RowErrorReason `json:"reason"`
	Message string         `json:"message"`
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

const dateLayout = "2006-01-02"

// NormalizeRow validates raw and converts it into a Transaction candidate
// (without ID) using the given rate mapping. today is only consulted for
// CSV rows, which must not be dated in the future.
func NormalizeRow(raw RawRow, rates map[string]float64, today time.Time) (*Transaction, *RowError) {
	date := strings.TrimSpace(raw.Date)
	description := strings.TrimSpace(raw.Description)
	amountStr := strings.TrimSpace(raw.Amount)
	currency := strings.TrimSpace(raw.Currency)

	if date == "" || description == "" || amountStr == "" || currency == "" {
		return nil, raw.fail(ReasonMissingField, "one or more required fields are missing")
	}

	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return nil, raw.fail(ReasonInvalidDateFormat, fmt.Sprintf("date %q is not a valid date", date))
	}
	if raw.Source == SourceCSV {
		// CSV rows use dd-mm-yyyy; rearrange to yyyy-mm-dd.
		date = fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[1]), pad2(parts[0]))
	}

	txnDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, raw.fail(ReasonInvalidDateFormat, fmt.Sprintf("date %q is not a valid date", raw.Date))
	}

	if raw.Source == SourceCSV && txnDate.After(today) {
		return nil, raw.fail(ReasonFutureDate, fmt.Sprintf("date %s is in the future", raw.Date))
	}

	code := strings.ToUpper(currency)
	rate, ok := rates[code]
	if !ok {
		return nil, raw.fail(ReasonUnsupportedCurrency, fmt.Sprintf("currency %s is not supported", code))
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, raw.fail(ReasonInvalidAmount, fmt.Sprintf("amount %q is not a positive number", raw.Amount))
	}

	// Double-precision division then round half away from zero, matching the
	// two-decimal formatting the stored values have always had.
	amountF, _ := amount.Float64()
	amountInINR := decimal.NewFromFloat(amountF / rate).Round(2)

	return &Transaction{
		TransactionDate: txnDate,
		Description:     description,
		OriginalAmount:  amount,
		AmountInINR:     amountInINR,
		Currency:        code,
	}, nil
}

func (r RawRow) fail(reason RowErrorReason, message string) *RowError {
	return &RowError{Row: r.Row, Reason: reason, Message: message}
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
