package advisor

import (
	"fmt"
	"strings"

	"fincoach/internal/currencyutils"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// Report combines every analysis into one document.
type Report struct {
	Debt          DebtAnalysis    `json:"debt_analysis"`
	Savings       SavingsPlan     `json:"savings_strategy"`
	Budget        *BudgetReview   `json:"budget_review,omitempty"`
	Payoff        PayoffPlan      `json:"payoff_plan"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	CategoryCount int             `json:"category_count"`
}

// BuildReport runs every analysis over the summary. The budget section is
// omitted when the summary has no income, matching ReviewBudget's error
// contract; the other analyses degrade gracefully on their own.
func (a *Advisor) BuildReport(s *models.FinancialSummary, goals string, extraPayment decimal.Decimal) Report {
	report := Report{
		Debt:          a.AnalyzeDebt(s),
		Savings:       a.SavingsPlanFor(s, goals),
		Payoff:        a.PayoffPlanFor(s, extraPayment),
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		CategoryCount: len(s.Categories),
	}
	if budget, err := a.ReviewBudget(s); err == nil {
		report.Budget = &budget
	}
	return report
}

// Render formats the full report as display text.
func (r Report) Render() string {
	var sb strings.Builder
	sb.WriteString("FINANCIAL COACHING REPORT\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")

	sb.WriteString(r.Debt.Render())
	sb.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
	sb.WriteString(r.Savings.Render())
	sb.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
	if r.Budget != nil {
		sb.WriteString(r.Budget.Render())
		sb.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
	}
	sb.WriteString(r.Payoff.Render())
	sb.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")

	sb.WriteString("SUMMARY\n")
	fmt.Fprintf(&sb, "  Income: %s\n", currencyutils.FormatAmount(r.TotalIncome))
	fmt.Fprintf(&sb, "  Expenses: %s\n", currencyutils.FormatAmount(r.TotalExpenses))
	fmt.Fprintf(&sb, "  Categories: %d\n", r.CategoryCount)
	return sb.String()
}
