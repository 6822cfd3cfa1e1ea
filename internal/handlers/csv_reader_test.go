package handlers

import (
	"strings"
	"testing"

	"github.com/shivamgupta-zluri/onboarding-project/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSVRows_ParsesRowsWithOneBasedNumbers(t *testing.T) {
	input := "Date,Description,Amount,Currency\n25-12-2023,Coffee,10,USD\n26-12-2023,Lunch,20,eur\n"

	rows, err := readCSVRows(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, "25-12-2023", rows[0].Date)
	assert.Equal(t, "Coffee", rows[0].Description)
	assert.Equal(t, "10", rows[0].Amount)
	assert.Equal(t, "USD", rows[0].Currency)
	assert.Equal(t, domain.SourceCSV, rows[0].Source)
	assert.Equal(t, 2, rows[1].Row)
	assert.Equal(t, "eur", rows[1].Currency)
}

func TestReadCSVRows_HeaderIsCaseInsensitive(t *testing.T) {
	input := "DATE,description,AMOUNT,Currency\n25-12-2023,Coffee,10,USD\n"

	rows, err := readCSVRows(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Coffee", rows[0].Description)
}

func TestReadCSVRows_AcceptsJSONFieldHeaderNames(t *testing.T) {
	input := "transactionDate,Description,originalAmount,Currency\n25-12-2023,Coffee,10,USD\n"

	rows, err := readCSVRows(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "25-12-2023", rows[0].Date)
	assert.Equal(t, "10", rows[0].Amount)
}

func TestReadCSVRows_ShortRecordsYieldEmptyCells(t *testing.T) {
	input := "Date,Description,Amount,Currency\n25-12-2023,Coffee\n"

	rows, err := readCSVRows(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Amount)
	assert.Empty(t, rows[0].Currency)
}

func TestReadCSVRows_MissingColumn(t *testing.T) {
	input := "Date,Description,Amount\n25-12-2023,Coffee,10\n"

	rows, err := readCSVRows(strings.NewReader(input))

	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Contains(t, err.Error(), "Currency")
}

func TestReadCSVRows_EmptyFile(t *testing.T) {
	rows, err := readCSVRows(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCSVRows_HeaderOnly(t *testing.T) {
	rows, err := readCSVRows(strings.NewReader("Date,Description,Amount,Currency\n"))

	require.NoError(t, err)
	assert.Empty(t, rows)
}
