package processor

import (
	"os"
	"path/filepath"
	"testing"

	"fincoach/internal/categorizer"
	"fincoach/internal/logging"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestProcessor() *Processor {
	logger := logging.NewLogrusAdapter("error", "text")
	return New(categorizer.NewDefault(logger), logger)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessDocumentCSV(t *testing.T) {
	path := writeTemp(t, "statement.csv",
		"Date,Amount,Description\n"+
			"2024-01-15,2600.00,ACME Corp Salary\n"+
			"2024-01-16,\"($1,250.00)\",Monthly Rent Payment\n"+
			"2024-01-17,-89.12,Grocery Store\n")

	result := newTestProcessor().ProcessDocument(path)
	require.False(t, result.IsError(), "unexpected failure: %+v", result.Failure)

	summary := result.Summary
	assert.Equal(t, 3, summary.ProcessingInfo.SuccessfulTransactions)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromFloat(2600)))
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromFloat(1339.12)))
	assert.Equal(t, "Housing", summary.Transactions[1].Category)
}

func TestProcessDocumentFileNotFound(t *testing.T) {
	result := newTestProcessor().ProcessDocument("/nonexistent/statement.csv")
	require.True(t, result.IsError())

	failure := result.Failure
	assert.Equal(t, models.ErrFileNotFound, failure.Kind)
	assert.NotEmpty(t, failure.Suggestions)
	assert.True(t, failure.CapabilityFlags["csv_support"])
}

func TestProcessDocumentUnsupportedFormat(t *testing.T) {
	path := writeTemp(t, "data.json", `{"amount": 5}`)

	result := newTestProcessor().ProcessDocument(path)
	require.True(t, result.IsError())

	failure := result.Failure
	assert.Equal(t, models.ErrUnsupportedFormat, failure.Kind)
	assert.Contains(t, failure.Suggestions[0], "csv")
}

func TestProcessDocumentEmptyCSV(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")

	result := newTestProcessor().ProcessDocument(path)
	require.True(t, result.IsError())
	assert.Equal(t, models.ErrEmptyFile, result.Failure.Kind)
}

func TestProcessDocumentHeaderOnlyCSV(t *testing.T) {
	path := writeTemp(t, "headers.csv", "Date,Amount,Description\n")

	result := newTestProcessor().ProcessDocument(path)
	require.True(t, result.IsError())
	assert.Equal(t, models.ErrEmptyFile, result.Failure.Kind)
}

func TestProcessDocumentColumnDetectionFailed(t *testing.T) {
	path := writeTemp(t, "odd.csv", "Foo,Bar\n1,2\n")

	result := newTestProcessor().ProcessDocument(path)
	require.True(t, result.IsError())
	assert.Equal(t, models.ErrColumnDetection, result.Failure.Kind)
}

func TestProcessDocumentNonNumericAmounts(t *testing.T) {
	path := writeTemp(t, "text-amounts.csv",
		"Date,Amount\n2024-01-15,pending\n2024-01-16,tbd\n")

	result := newTestProcessor().ProcessDocument(path)
	require.True(t, result.IsError())
	// The amount column fails numeric validation during detection.
	assert.Equal(t, models.ErrColumnDetection, result.Failure.Kind)
}

func TestProcessDocumentXLSX(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Date", "Amount", "Description"},
		{"2024-01-15", "2600.00", "Salary deposit"},
		{"2024-01-20", "-120.00", "Electric bill"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "statement.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := newTestProcessor().ProcessDocument(path)
	require.False(t, result.IsError(), "unexpected failure: %+v", result.Failure)

	summary := result.Summary
	assert.Equal(t, 2, summary.ProcessingInfo.SuccessfulTransactions)
	assert.Equal(t, "Housing", summary.Transactions[1].Category)
}

func TestProcessDocumentXLSXNoFinancialData(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Topic", "Owner"},
		{"Budget kickoff", "Sam"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "notes.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := newTestProcessor().ProcessDocument(path)
	require.True(t, result.IsError())
	assert.Equal(t, models.ErrNoFinancialData, result.Failure.Kind)
}

func TestProcessDocumentText(t *testing.T) {
	path := writeTemp(t, "notes.txt",
		"Paid $1,200.00 for services\nReceived payment of $350.50\n")

	result := newTestProcessor().ProcessDocument(path)
	require.False(t, result.IsError())

	summary := result.Summary
	assert.Empty(t, summary.Transactions)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromFloat(1550.50)))
	assert.Contains(t, summary.Categories, "Text Analysis")
	assert.NotEmpty(t, summary.ProcessingInfo.Notes)
}

func TestProcessDocumentEmptyText(t *testing.T) {
	path := writeTemp(t, "empty.txt", "   \n  ")

	result := newTestProcessor().ProcessDocument(path)
	require.True(t, result.IsError())
	assert.Equal(t, models.ErrEmptyFile, result.Failure.Kind)
}

func TestCapabilities(t *testing.T) {
	caps := AllCapabilities()

	flags := caps.Flags()
	assert.True(t, flags["csv_support"])
	assert.True(t, flags["excel_support"])
	assert.True(t, flags["pdf_support"])
	assert.True(t, flags["word_support"])

	assert.True(t, caps.Supports("csv"))
	assert.True(t, caps.Supports("xlsx"))
	assert.False(t, caps.Supports("json"))

	partial := Capabilities{CSV: true}
	assert.False(t, partial.Supports("pdf"))
	assert.Equal(t, []string{"csv", "txt"}, partial.SupportedExtensions())
}
