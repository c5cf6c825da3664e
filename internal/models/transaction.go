// Package models provides the data structures shared across the application.
package models

import "github.com/shopspring/decimal"

// Transaction represents one signed monetary movement extracted from a
// financial document. Positive amounts are inflows, negative amounts are
// outflows. A Transaction is immutable once produced by a reader.
type Transaction struct {
	Date        string          `json:"date" csv:"Date"`
	Amount      decimal.Decimal `json:"amount" csv:"Amount"`
	Category    string          `json:"category" csv:"Category"`
	Description string          `json:"description" csv:"Description"`
}

// IsIncome reports whether the transaction is an inflow.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
