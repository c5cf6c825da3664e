package tabular

import (
	"testing"

	"fincoach/internal/categorizer"
	"fincoach/internal/logging"
	"fincoach/internal/models"
	"fincoach/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewLogrusAdapter("error", "text")
}

func TestDetectColumnsExactHeaders(t *testing.T) {
	table := models.Table{
		Headers: []string{"Date", "Amount", "Description", "Category"},
		Rows:    [][]string{{"2024-01-15", "-50.00", "Grocery Store", "Food"}},
	}

	mapping, ok := DetectColumns(table)
	require.True(t, ok)
	assert.Equal(t, 0, mapping.Date)
	assert.Equal(t, 1, mapping.Amount)
	assert.Equal(t, 2, mapping.Description)
	assert.Equal(t, 3, mapping.Category)
}

func TestDetectColumnsAliases(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		date    int
		amount  int
	}{
		{name: "bank export names", headers: []string{"Posting_Date", "Debit", "Memo"}, date: 0, amount: 1},
		{name: "abbreviations", headers: []string{"dt", "amt", "desc"}, date: 0, amount: 1},
		{name: "substring in longer header", headers: []string{"Transaction Date", "Transaction Amount"}, date: 0, amount: 1},
		{name: "value and timestamp", headers: []string{"timestamp", "value"}, date: 0, amount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := models.Table{
				Headers: tt.headers,
				Rows:    [][]string{{"2024-01-15", "10.00", "x"}},
			}
			mapping, ok := DetectColumns(table)
			require.True(t, ok)
			assert.Equal(t, tt.date, mapping.Date)
			assert.Equal(t, tt.amount, mapping.Amount)
		})
	}
}

func TestDetectColumnsLongestAliasWins(t *testing.T) {
	// "transaction_date" scores higher than "dt", so the full header wins
	// over a shorter coincidental match.
	table := models.Table{
		Headers: []string{"dt_ignore", "transaction_date", "amount"},
		Rows:    [][]string{{"x", "2024-01-15", "5.00"}},
	}

	mapping, ok := DetectColumns(table)
	require.True(t, ok)
	assert.Equal(t, 1, mapping.Date)
}

func TestDetectColumnsIdempotent(t *testing.T) {
	// Several headers match the same role here, so a stable outcome depends
	// on the tie-break order, not on map iteration.
	table := models.Table{
		Headers: []string{"Posting Date", "Transaction Date", "Debit", "Credit", "Memo", "Note", "Type"},
		Rows: [][]string{
			{"2024-01-15", "2024-01-15", "", "50.00", "Grocery Store", "weekly", "purchase"},
		},
	}

	first, ok := DetectColumns(table)
	require.True(t, ok)
	// "Credit" outscores "Debit" and the first of the tied date headers wins.
	assert.Equal(t, 3, first.Amount)
	assert.Equal(t, 0, first.Date)

	for i := 0; i < 10; i++ {
		mapping, ok := DetectColumns(table)
		require.True(t, ok)
		assert.Equal(t, first, mapping)
	}
}

func TestDetectColumnsMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{name: "no amount", headers: []string{"Date", "Description"}},
		{name: "no date", headers: []string{"Amount", "Description"}},
		{name: "nothing recognizable", headers: []string{"Foo", "Bar", "Baz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := models.Table{
				Headers: tt.headers,
				Rows:    [][]string{{"a", "b", "c"}},
			}
			_, ok := DetectColumns(table)
			assert.False(t, ok)
		})
	}
}

func TestDetectColumnsNonNumericAmount(t *testing.T) {
	rows := make([][]string, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, []string{"2024-01-15", "pending"})
	}
	table := models.Table{Headers: []string{"Date", "Amount"}, Rows: rows}

	_, ok := DetectColumns(table)
	assert.False(t, ok)
}

func TestDetectColumnsNumericBeyondBlanks(t *testing.T) {
	// Blank cells do not consume the sample; a numeric value after blanks
	// still validates the column.
	table := models.Table{
		Headers: []string{"Date", "Amount"},
		Rows: [][]string{
			{"2024-01-01", ""},
			{"2024-01-02", ""},
			{"2024-01-03", "$12.50"},
		},
	}

	_, ok := DetectColumns(table)
	assert.True(t, ok)
}

func TestExtract(t *testing.T) {
	table := models.Table{
		Headers: []string{"Date", "Amount", "Description", "Category"},
		Rows: [][]string{
			{"2024-01-15", "2600.00", "ACME Corp Salary", ""},
			{"01/16/2024", "($1,250.00)", "Monthly Rent Payment", ""},
			{"2024-01-17", "-89.12", "Grocery Store", "Food"},
			{"2024-01-18", "not-a-number", "Broken row", ""},
		},
	}
	mapping, ok := DetectColumns(table)
	require.True(t, ok)

	summary, err := Extract(table, mapping, categorizer.NewDefault(testLogger()), testLogger())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.ProcessingInfo.RowsProcessed)
	assert.Equal(t, 3, summary.ProcessingInfo.SuccessfulTransactions)
	assert.Equal(t, 1, summary.ProcessingInfo.SkippedRows)
	require.Len(t, summary.Transactions, 3)

	salary := summary.Transactions[0]
	assert.Equal(t, "2024-01-15", salary.Date)
	assert.Equal(t, "Income", salary.Category)

	rent := summary.Transactions[1]
	assert.Equal(t, "2024-01-16", rent.Date)
	assert.True(t, rent.Amount.Equal(decimal.NewFromFloat(-1250)))
	assert.Equal(t, "Housing", rent.Category)

	groceries := summary.Transactions[2]
	assert.Equal(t, "Food", groceries.Category)

	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromFloat(2600)))
	assert.True(t, summary.TotalExpenses.Equal(decimal.NewFromFloat(1339.12)))

	require.Len(t, summary.ProcessingInfo.Issues, 1)
	assert.Equal(t, `row 4: amount "not-a-number" is not numeric`, summary.ProcessingInfo.Issues[0])
}

func TestExtractRecordsIssuePerSkippedRow(t *testing.T) {
	table := models.Table{
		Headers: []string{"Date", "Amount"},
		Rows: [][]string{
			{"2024-01-15", "not-a-number"},
			{"2024-01-16", "10.00"},
		},
	}
	mapping, ok := DetectColumns(table)
	require.True(t, ok)

	summary, err := Extract(table, mapping, categorizer.NewDefault(testLogger()), testLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ProcessingInfo.SkippedRows)
	require.Len(t, summary.ProcessingInfo.Issues, 1)
	assert.Contains(t, summary.ProcessingInfo.Issues[0], "row 1")
	assert.Contains(t, summary.ProcessingInfo.Issues[0], "not-a-number")
}

func TestExtractKeepsUnparseableDates(t *testing.T) {
	table := models.Table{
		Headers: []string{"Date", "Amount"},
		Rows:    [][]string{{"mid January", "10.00"}},
	}
	mapping, ok := DetectColumns(table)
	require.True(t, ok)

	summary, err := Extract(table, mapping, categorizer.NewDefault(testLogger()), testLogger())
	require.NoError(t, err)
	assert.Equal(t, "mid January", summary.Transactions[0].Date)
}

func TestExtractAllRowsSkipped(t *testing.T) {
	table := models.Table{
		Headers: []string{"Date", "Amount"},
		Rows: [][]string{
			{"2024-01-15", "n/a"},
			{"2024-01-16", "tbd"},
		},
	}
	mapping := models.ColumnMapping{Date: 0, Amount: 1, Description: -1, Category: -1}

	_, err := Extract(table, mapping, categorizer.NewDefault(testLogger()), testLogger())
	require.Error(t, err)

	var nvErr *parsererror.NoValidTransactionsError
	require.ErrorAs(t, err, &nvErr)
	assert.Equal(t, 2, nvErr.RowsSkipped)
}

func TestExtractShortRows(t *testing.T) {
	table := models.Table{
		Headers: []string{"Date", "Amount", "Description"},
		Rows: [][]string{
			{"2024-01-15", "25.00"},
			{"2024-01-16"},
		},
	}
	mapping, ok := DetectColumns(table)
	require.True(t, ok)

	summary, err := Extract(table, mapping, categorizer.NewDefault(testLogger()), testLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ProcessingInfo.SuccessfulTransactions)
	assert.Equal(t, 1, summary.ProcessingInfo.SkippedRows)
}
