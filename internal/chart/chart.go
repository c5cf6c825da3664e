// Package chart derives the visualization data series served to clients:
// expense breakdown slices, cash flow bars and the financial health score.
// Rendering is the client's job; this package only shapes the numbers.
package chart

import (
	"sort"
	"strings"

	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// incomeLabels are category names excluded from the expense breakdown.
var incomeLabels = map[string]bool{
	"salary":  true,
	"income":  true,
	"deposit": true,
	"bonus":   true,
	"refund":  true,
}

// Slice is one segment of the expense breakdown.
type Slice struct {
	Label   string          `json:"label"`
	Value   decimal.Decimal `json:"value"`
	Percent decimal.Decimal `json:"percent"`
}

// CashFlow is the three-bar cash flow series.
type CashFlow struct {
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	NetSavings decimal.Decimal `json:"net_savings"`
}

// Dashboard bundles every series a client needs for the overview screen.
type Dashboard struct {
	HealthScore   int             `json:"health_score"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`
	CashFlow      CashFlow        `json:"cash_flow"`
	ExpenseSlices []Slice         `json:"expense_slices"`
}

// ExpensePie builds the expense breakdown, largest slice first. Income-type
// categories are excluded; an empty result means there is nothing to chart.
func ExpensePie(s *models.FinancialSummary) []Slice {
	total := decimal.Zero
	filtered := map[string]decimal.Decimal{}
	for category, amount := range s.Categories {
		if incomeLabels[strings.ToLower(category)] {
			continue
		}
		filtered[category] = amount
		total = total.Add(amount)
	}
	if !total.IsPositive() {
		return nil
	}

	slices := make([]Slice, 0, len(filtered))
	for category, amount := range filtered {
		slices = append(slices, Slice{
			Label:   category,
			Value:   amount,
			Percent: amount.Div(total).Mul(decimal.NewFromInt(100)),
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Value.Equal(slices[j].Value) {
			return slices[i].Label < slices[j].Label
		}
		return slices[i].Value.GreaterThan(slices[j].Value)
	})
	return slices
}

// CashFlowSeries builds the income/expenses/net series.
func CashFlowSeries(s *models.FinancialSummary) CashFlow {
	return CashFlow{
		Income:     s.TotalIncome,
		Expenses:   s.TotalExpenses,
		NetSavings: s.NetCashFlow(),
	}
}

// HealthScore grades overall financial health from 0 to 100. The savings
// rate sets the base score and low expense ratios earn bonus points. Zero
// income scores zero.
func HealthScore(s *models.FinancialSummary) int {
	if !s.TotalIncome.IsPositive() {
		return 0
	}

	savingsRate := s.SavingsRate()

	var score int
	switch {
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		score = 90
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(15)):
		score = 80
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(10)):
		score = 70
	case savingsRate.GreaterThanOrEqual(decimal.NewFromInt(5)):
		score = 60
	case savingsRate.IsPositive():
		score = 50
	default:
		score = 30
	}

	expenseRatio := s.TotalExpenses.Div(s.TotalIncome).Mul(decimal.NewFromInt(100))
	switch {
	case expenseRatio.LessThan(decimal.NewFromInt(50)):
		score += 10
	case expenseRatio.LessThan(decimal.NewFromInt(70)):
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// BuildDashboard assembles all series for one summary.
func BuildDashboard(s *models.FinancialSummary) Dashboard {
	return Dashboard{
		HealthScore:   HealthScore(s),
		SavingsRate:   s.SavingsRate(),
		CashFlow:      CashFlowSeries(s),
		ExpenseSlices: ExpensePie(s),
	}
}
