package advisor

import (
	"errors"
	"fmt"
	"strings"

	"fincoach/internal/currencyutils"
	"fincoach/internal/logging"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// ErrNoIncome reports that a budget cannot be assessed without income.
var ErrNoIncome = errors.New("cannot analyze budget without income data")

// Spending levels assigned to each category.
const (
	SpendingReduce     = "reduce"
	SpendingConsider   = "consider"
	SpendingControlled = "controlled"
)

// CategoryAssessment grades one category's share of income.
type CategoryAssessment struct {
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	PercentOfIncome decimal.Decimal `json:"percent_of_income"`
	Level           string          `json:"level"`
}

// BudgetReview is the 50/30/20 budget assessment for one summary.
type BudgetReview struct {
	Health        string               `json:"health"`
	ExpenseRatio  decimal.Decimal      `json:"expense_ratio"`
	SavingsRate   decimal.Decimal      `json:"savings_rate"`
	NeedsBudget   decimal.Decimal      `json:"needs_budget"`
	WantsBudget   decimal.Decimal      `json:"wants_budget"`
	SavingsBudget decimal.Decimal      `json:"savings_budget"`
	Available     decimal.Decimal      `json:"available_for_savings"`
	Categories    []CategoryAssessment `json:"categories"`
	Priority      string               `json:"priority"`
}

// ReviewBudget grades overall spending against income and renders the
// 50/30/20 allocation. Returns ErrNoIncome when the summary has no income
// to measure against.
func (a *Advisor) ReviewBudget(s *models.FinancialSummary) (BudgetReview, error) {
	if !s.TotalIncome.IsPositive() {
		return BudgetReview{}, ErrNoIncome
	}

	expenseRatio := percentOf(s.TotalExpenses, s.TotalIncome)
	review := BudgetReview{
		ExpenseRatio:  expenseRatio,
		SavingsRate:   percentOf(s.NetCashFlow(), s.TotalIncome),
		NeedsBudget:   s.TotalIncome.Mul(decimal.NewFromFloat(0.50)),
		WantsBudget:   s.TotalIncome.Mul(decimal.NewFromFloat(0.30)),
		SavingsBudget: s.TotalIncome.Mul(decimal.NewFromFloat(0.20)),
		Available:     s.NetCashFlow(),
	}

	switch {
	case expenseRatio.LessThanOrEqual(decimal.NewFromInt(50)):
		review.Health = HealthExcellent
	case expenseRatio.LessThanOrEqual(decimal.NewFromInt(70)):
		review.Health = HealthGood
	case expenseRatio.LessThanOrEqual(decimal.NewFromInt(90)):
		review.Health = HealthFair
	default:
		review.Health = HealthNeedsAttention
	}

	heavy := decimal.NewFromInt(30)
	notable := decimal.NewFromInt(15)
	worst := decimal.Zero
	for _, category := range sortedKeys(s.Categories) {
		amount := s.Categories[category]
		pct := percentOf(amount, s.TotalIncome)

		level := SpendingControlled
		switch {
		case pct.GreaterThan(heavy):
			level = SpendingReduce
		case pct.GreaterThan(notable):
			level = SpendingConsider
		}
		review.Categories = append(review.Categories, CategoryAssessment{
			Category:        category,
			Amount:          amount,
			PercentOfIncome: pct,
			Level:           level,
		})

		if level != SpendingControlled && amount.GreaterThan(worst) && category != "Income" {
			worst = amount
			review.Priority = fmt.Sprintf(
				"Focus on %s, your largest overspending category, and reduce it by 20%%.", category)
		}
	}
	if review.Priority == "" {
		review.Priority = "Spending is under control across categories. Direct the surplus into savings."
	}

	a.logger.Debug("Reviewed budget",
		logging.Field{Key: "health", Value: review.Health},
		logging.Field{Key: "expense_ratio", Value: review.ExpenseRatio.StringFixed(1)},
	)
	return review, nil
}

// Render formats the review as display text.
func (r BudgetReview) Render() string {
	var sb strings.Builder
	sb.WriteString("BUDGET HEALTH ASSESSMENT\n\n")
	fmt.Fprintf(&sb, "Overall Health: %s\n", r.Health)
	fmt.Fprintf(&sb, "Expense Ratio: %s%% of income\n", r.ExpenseRatio.StringFixed(1))
	fmt.Fprintf(&sb, "Savings Rate: %s%% of income\n\n", r.SavingsRate.StringFixed(1))
	sb.WriteString("50/30/20 rule allocation:\n")
	fmt.Fprintf(&sb, "  Needs (50%%): %s/month\n", currencyutils.FormatAmount(r.NeedsBudget))
	fmt.Fprintf(&sb, "  Wants (30%%): %s/month\n", currencyutils.FormatAmount(r.WantsBudget))
	fmt.Fprintf(&sb, "  Savings and extra debt (20%%): %s/month\n\n", currencyutils.FormatAmount(r.SavingsBudget))
	sb.WriteString("Spending by category:\n")
	for _, c := range r.Categories {
		marker := "ok"
		switch c.Level {
		case SpendingReduce:
			marker = "reduce"
		case SpendingConsider:
			marker = "review"
		}
		fmt.Fprintf(&sb, "  [%s] %s: %s (%s%% of income)\n",
			marker, c.Category, currencyutils.FormatAmount(c.Amount), c.PercentOfIncome.StringFixed(1))
	}
	sb.WriteString("\nThis month's priority: " + r.Priority + "\n")
	return sb.String()
}
