package advisor

import (
	"fmt"
	"strings"

	"fincoach/internal/currencyutils"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// PayoffPlan is the debt payoff recommendation for one summary.
type PayoffPlan struct {
	TotalDebt    decimal.Decimal `json:"total_debt"`
	ExtraPayment decimal.Decimal `json:"extra_payment"`
	HasDebt      bool            `json:"has_debt"`
	Strategies   []string        `json:"strategies"`
}

// PayoffPlanFor totals debt-related categories and recommends the snowball
// and avalanche strategies. extraPayment is an optional additional monthly
// amount the user can commit.
func (a *Advisor) PayoffPlanFor(s *models.FinancialSummary, extraPayment decimal.Decimal) PayoffPlan {
	totalDebt := decimal.Zero
	for category, amount := range s.Categories {
		lower := strings.ToLower(category)
		if strings.Contains(lower, "loan") || strings.Contains(lower, "credit") || strings.Contains(lower, "debt") {
			totalDebt = totalDebt.Add(amount)
		}
	}

	plan := PayoffPlan{
		TotalDebt:    totalDebt,
		ExtraPayment: extraPayment,
		HasDebt:      totalDebt.IsPositive(),
	}
	if plan.HasDebt {
		plan.Strategies = []string{
			"Snowball: pay smallest debts first for quick wins",
			"Avalanche: pay highest-interest debts first to save money",
			"Reinvest freed-up payments as each debt clears",
		}
	}
	return plan
}

// Render formats the plan as display text.
func (p PayoffPlan) Render() string {
	if !p.HasDebt {
		return "No debts detected. Keep saving and investing.\n"
	}

	var sb strings.Builder
	sb.WriteString("DEBT PAYOFF PLAN\n\n")
	fmt.Fprintf(&sb, "Total debt identified: %s\n", currencyutils.FormatAmount(p.TotalDebt))
	fmt.Fprintf(&sb, "Extra monthly payment: %s\n\n", currencyutils.FormatAmount(p.ExtraPayment))
	sb.WriteString("Recommended strategies:\n")
	for _, strategy := range p.Strategies {
		fmt.Fprintf(&sb, "  - %s\n", strategy)
	}
	return sb.String()
}
