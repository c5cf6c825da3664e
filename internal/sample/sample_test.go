package sample

import (
	"testing"
	"time"

	"fincoach/internal/categorizer"
	"fincoach/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGenerateTotals(t *testing.T) {
	ds := Generate(time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC))

	assert.True(t, ds.TotalIncome.Equal(decimal.NewFromFloat(5200)),
		"income: %s", ds.TotalIncome)
	assert.True(t, ds.TotalExpenses.Equal(decimal.NewFromFloat(4523.98)),
		"expenses: %s", ds.TotalExpenses)
	assert.True(t, ds.NetCashFlow.Equal(decimal.NewFromFloat(676.02)),
		"net: %s", ds.NetCashFlow)
	assert.True(t, ds.TotalIncome.GreaterThan(ds.TotalExpenses),
		"sample scenario must have positive cash flow")
}

func TestGenerateConsistency(t *testing.T) {
	ds := Generate(time.Now())

	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range ds.Transactions {
		if tx.Amount.IsPositive() {
			income = income.Add(tx.Amount)
		} else {
			expenses = expenses.Add(tx.Amount.Abs())
		}
	}
	assert.True(t, ds.TotalIncome.Equal(income))
	assert.True(t, ds.TotalExpenses.Equal(expenses))
	assert.Equal(t, len(ds.Transactions), ds.Info.TransactionCount)
	assert.Equal(t, len(ds.Transactions), ds.ProcessingInfo.SuccessfulTransactions)
}

func TestGenerateDates(t *testing.T) {
	now := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	ds := Generate(now)

	// Base date is 30 days back; the first entry lands one day after it.
	assert.Equal(t, "2024-06-01", ds.Transactions[0].Date)
	for _, tx := range ds.Transactions {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, tx.Date)
	}
}

func TestGenerateCategoriesMatchClassifier(t *testing.T) {
	ds := Generate(time.Now())

	logger := logging.NewLogrusAdapter("error", "text")
	known := map[string]bool{
		categorizer.FallbackIncome:  true,
		categorizer.FallbackExpense: true,
	}
	for _, name := range categorizer.NewDefault(logger).CategoryNames() {
		known[name] = true
	}

	for _, tx := range ds.Transactions {
		assert.True(t, known[tx.Category], "unknown category %q", tx.Category)
	}
}

func TestGenerateDerivedViews(t *testing.T) {
	ds := Generate(time.Now())

	assert.NotContains(t, ds.ExpenseCategories, "Income")
	assert.Contains(t, ds.ExpenseCategories, "Housing")
	assert.True(t, ds.ExpenseCategories["Housing"].Equal(decimal.NewFromFloat(1495)))
	assert.Contains(t, ds.IncomeCategories, "Income")
	assert.True(t, ds.SavingsRate.IsPositive())
	assert.NotEmpty(t, ds.Info.DateRange)
}
