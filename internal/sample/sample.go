// Package sample generates the built-in demo dataset: one month of
// realistic transactions for a young professional with positive cash flow.
// It lets every analysis surface run without the user uploading a document
// first.
package sample

import (
	"fmt"
	"time"

	"fincoach/internal/dateutils"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// Dataset is the sample payload: a full financial summary plus the derived
// views and scenario description the coaching surfaces display.
type Dataset struct {
	models.FinancialSummary
	ExpenseCategories map[string]decimal.Decimal `json:"expense_categories"`
	IncomeCategories  map[string]decimal.Decimal `json:"income_categories"`
	NetCashFlow       decimal.Decimal            `json:"net_cash_flow"`
	SavingsRate       decimal.Decimal            `json:"savings_rate"`
	Info              Info                       `json:"sample_info"`
}

// Info describes the demo scenario.
type Info struct {
	Scenario         string          `json:"scenario"`
	MonthlyIncome    decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses"`
	NetSavings       decimal.Decimal `json:"net_savings"`
	TransactionCount int             `json:"transaction_count"`
	DateRange        string          `json:"date_range"`
	Notes            []string        `json:"notes"`
}

// entry is one templated transaction: a day offset from the rolling base
// date plus the fixed amount, category and description.
type entry struct {
	day         int
	amount      string
	category    string
	description string
}

// Category labels stick to the classifier's vocabulary so sample analyses
// and document analyses read the same.
var entries = []entry{
	// Income
	{1, "4200.00", "Income", "Monthly Salary - Company XYZ"},
	{15, "800.00", "Income", "Freelance Project Payment"},
	{20, "200.00", "Income", "Tax Refund"},

	// Housing and utilities
	{1, "-1250.00", "Housing", "Monthly Rent Payment"},
	{5, "-120.00", "Housing", "Electric Bill"},
	{7, "-80.00", "Housing", "Internet & Cable"},
	{10, "-45.00", "Housing", "Water Bill"},

	// Transportation
	{3, "-350.00", "Transportation", "Car Payment"},
	{8, "-55.00", "Transportation", "Gas Station Fill-up"},
	{15, "-60.00", "Transportation", "Gas Station Fill-up"},
	{22, "-45.00", "Transportation", "Gas Station Fill-up"},
	{12, "-25.00", "Transportation", "Parking Fee"},
	{1, "-95.00", "Transportation", "Auto Insurance"},

	// Food
	{2, "-120.00", "Food", "Weekly Grocery Shopping"},
	{9, "-115.00", "Food", "Weekly Grocery Shopping"},
	{16, "-130.00", "Food", "Weekly Grocery Shopping"},
	{23, "-125.00", "Food", "Weekly Grocery Shopping"},
	{6, "-45.00", "Food", "Restaurant Dinner"},
	{13, "-35.00", "Food", "Lunch with Colleagues"},
	{19, "-25.00", "Food", "Coffee Shop"},

	// Healthcare
	{14, "-150.00", "Healthcare", "Doctor Visit Copay"},
	{18, "-35.00", "Healthcare", "Prescription Medication"},
	{15, "-200.00", "Healthcare", "Health Insurance Premium"},

	// Entertainment
	{4, "-15.99", "Entertainment", "Netflix Subscription"},
	{11, "-12.99", "Entertainment", "Spotify Premium"},
	{17, "-45.00", "Entertainment", "Movie Theater Tickets"},
	{24, "-85.00", "Entertainment", "Concert Tickets"},

	// Shopping and personal
	{5, "-65.00", "Shopping", "Clothing Store"},
	{21, "-120.00", "Shopping", "Amazon Purchase"},
	{26, "-40.00", "Shopping", "Haircut"},

	// Debt payments
	{3, "-185.00", "Debt Payment", "Credit Card Payment"},
	{25, "-75.00", "Debt Payment", "Student Loan Payment"},

	// Savings and investments
	{2, "-300.00", "Savings", "Emergency Fund Transfer"},
	{16, "-400.00", "Savings", "401k Contribution"},

	// Miscellaneous
	{28, "-50.00", "Other Expenses", "ATM Withdrawal"},
	{29, "-25.00", "Other Expenses", "Bank Service Fee"},
}

// Generate builds the sample dataset with dates anchored to the 30 days
// before now.
func Generate(now time.Time) *Dataset {
	base := now.AddDate(0, 0, -30)

	summary := models.NewFinancialSummary()
	for _, e := range entries {
		amount, err := decimal.NewFromString(e.amount)
		if err != nil {
			// The entry table is static; a bad literal is a programming
			// error.
			panic(fmt.Sprintf("sample: invalid amount %q: %v", e.amount, err))
		}
		summary.Add(models.Transaction{
			Date:        dateutils.ToISODate(base.AddDate(0, 0, e.day)),
			Amount:      amount,
			Category:    e.category,
			Description: e.description,
		})
	}
	summary.ProcessingInfo.RowsProcessed = len(entries)

	first := summary.Transactions[0].Date
	last := summary.Transactions[len(summary.Transactions)-1].Date

	return &Dataset{
		FinancialSummary:  *summary,
		ExpenseCategories: summary.ExpenseByCategory(),
		IncomeCategories:  summary.IncomeByCategory(),
		NetCashFlow:       summary.NetCashFlow(),
		SavingsRate:       summary.SavingsRate(),
		Info: Info{
			Scenario:         "Young Professional with Good Financial Habits",
			MonthlyIncome:    summary.TotalIncome,
			MonthlyExpenses:  summary.TotalExpenses,
			NetSavings:       summary.NetCashFlow(),
			TransactionCount: len(summary.Transactions),
			DateRange:        fmt.Sprintf("%s to %s", first, last),
			Notes: []string{
				"Realistic transaction amounts and categories",
				"Demonstrates both income and various expense types",
				"Shows positive cash flow with savings potential",
				"Includes debt payments and investment contributions",
			},
		},
	}
}
