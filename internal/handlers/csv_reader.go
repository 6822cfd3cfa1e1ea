package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
)

// readCSVRows parses an uploaded CSV file into raw rows for the import
// pipeline. The first record is the header; columns are matched
// case-insensitively. Missing cells come through as empty strings so the
// normalizer reports them as missing fields with the right row number.
func readCSVRows(r io.Reader) ([]domain.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	dateIdx, ok := columns["date"]
	if !ok {
		// The original export format used the JSON field name instead.
		dateIdx, ok = columns["transactiondate"]
	}
	if !ok {
		return nil, fmt.Errorf("missing Date column in CSV header")
	}
	descIdx, ok := columns["description"]
	if !ok {
		return nil, fmt.Errorf("missing Description column in CSV header")
	}
	amountIdx, ok := columns["amount"]
	if !ok {
		amountIdx, ok = columns["originalamount"]
	}
	if !ok {
		return nil, fmt.Errorf("missing Amount column in CSV header")
	}
	currencyIdx, ok := columns["currency"]
	if !ok {
		return nil, fmt.Errorf("missing Currency column in CSV header")
	}

	var rows []domain.RawRow
	rowNum := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		rowNum++
		rows = append(rows, domain.RawRow{
			Row:         rowNum,
			Date:        cell(record, dateIdx),
			Description: cell(record, descIdx),
			Amount:      cell(record, amountIdx),
			Currency:    cell(record, currencyIdx),
			Source:      domain.SourceCSV,
		})
	}

	return rows, nil
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
