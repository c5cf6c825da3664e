package models

import "github.com/shopspring/decimal"

// ProcessingInfo reports the quality of a document-processing run.
type ProcessingInfo struct {
	RowsProcessed          int      `json:"rows_processed"`
	SuccessfulTransactions int      `json:"successful_transactions"`
	SkippedRows            int      `json:"skipped_rows"`
	Issues                 []string `json:"issues"`
	Notes                  []string `json:"notes,omitempty"`
}

// FinancialSummary is the aggregated, categorized view of a transaction set
// consumed by all downstream reporting. It is built once per
// document-processing call and never mutated after being returned.
//
// Invariants: TotalIncome is the sum of all positive amounts, TotalExpenses
// the sum of absolute negative amounts, and each Categories entry the sum of
// absolute amounts carrying that label.
type FinancialSummary struct {
	Transactions   []Transaction              `json:"transactions"`
	TotalIncome    decimal.Decimal            `json:"total_income"`
	TotalExpenses  decimal.Decimal            `json:"total_expenses"`
	Categories     map[string]decimal.Decimal `json:"categories"`
	ProcessingInfo ProcessingInfo             `json:"processing_info"`
}

// NewFinancialSummary returns an empty summary ready for accumulation.
func NewFinancialSummary() *FinancialSummary {
	return &FinancialSummary{
		Transactions: []Transaction{},
		Categories:   map[string]decimal.Decimal{},
		ProcessingInfo: ProcessingInfo{
			Issues: []string{},
		},
	}
}

// Add records a transaction and updates the running totals.
func (s *FinancialSummary) Add(tx Transaction) {
	s.Transactions = append(s.Transactions, tx)
	if tx.Amount.IsPositive() {
		s.TotalIncome = s.TotalIncome.Add(tx.Amount)
	} else {
		s.TotalExpenses = s.TotalExpenses.Add(tx.Amount.Abs())
	}
	s.Categories[tx.Category] = s.Categories[tx.Category].Add(tx.Amount.Abs())
	s.ProcessingInfo.SuccessfulTransactions++
}

// NetCashFlow returns income minus expenses.
func (s *FinancialSummary) NetCashFlow() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpenses)
}

// SavingsRate returns the net cash flow as a percentage of income, or zero
// when there is no income.
func (s *FinancialSummary) SavingsRate() decimal.Decimal {
	if !s.TotalIncome.IsPositive() {
		return decimal.Zero
	}
	return s.NetCashFlow().Div(s.TotalIncome).Mul(decimal.NewFromInt(100))
}

// ExpenseByCategory groups absolute expense amounts by category label.
func (s *FinancialSummary) ExpenseByCategory() map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, tx := range s.Transactions {
		if tx.IsExpense() {
			out[tx.Category] = out[tx.Category].Add(tx.Amount.Abs())
		}
	}
	return out
}

// IncomeByCategory groups income amounts by category label.
func (s *FinancialSummary) IncomeByCategory() map[string]decimal.Decimal {
	out := map[string]decimal.Decimal{}
	for _, tx := range s.Transactions {
		if tx.IsIncome() {
			out[tx.Category] = out[tx.Category].Add(tx.Amount)
		}
	}
	return out
}
