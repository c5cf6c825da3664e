package advisor

import (
	"fmt"
	"strings"

	"fincoach/internal/currencyutils"
	"fincoach/internal/logging"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// Savings-rate tiers. Twenty percent of income is the conventional ideal.
var (
	rateExcellent = decimal.NewFromFloat(0.20)
	rateVeryGood  = decimal.NewFromFloat(0.15)
	rateGood      = decimal.NewFromFloat(0.10)
	rateStarter   = decimal.NewFromFloat(0.05)
)

// CategoryFlag marks an expense category worth reviewing.
type CategoryFlag struct {
	Category          string          `json:"category"`
	Amount            decimal.Decimal `json:"amount"`
	PercentOfExpenses decimal.Decimal `json:"percent_of_expenses"`
	Suggestion        string          `json:"suggestion"`
}

// SavingsPlan is the personalized savings strategy for one summary.
type SavingsPlan struct {
	Status               string          `json:"status"`
	CurrentRate          decimal.Decimal `json:"current_rate"`
	TargetRate           decimal.Decimal `json:"target_rate"`
	TargetMonthly        decimal.Decimal `json:"target_monthly"`
	Available            decimal.Decimal `json:"available_for_savings"`
	EmergencyFundTarget  decimal.Decimal `json:"emergency_fund_target"`
	EmergencyFundMonthly decimal.Decimal `json:"emergency_fund_monthly"`
	EmergencyFundMonths  int             `json:"emergency_fund_months"`
	Advice               string          `json:"advice"`
	CategoryFlags        []CategoryFlag  `json:"category_flags"`
	Goals                string          `json:"goals,omitempty"`
}

// SavingsPlanFor grades the current savings rate, sizes a three-month
// emergency fund, and flags expense categories that dominate spending. The
// optional goals text is echoed into the plan for display.
func (a *Advisor) SavingsPlanFor(s *models.FinancialSummary, goals string) SavingsPlan {
	available := maxDecimal(decimal.Zero, s.NetCashFlow())
	currentRate := ratioOf(available, s.TotalIncome)

	plan := SavingsPlan{
		CurrentRate: currentRate,
		Available:   available,
		Goals:       goals,
	}

	switch {
	case currentRate.GreaterThanOrEqual(rateExcellent):
		plan.Status = HealthExcellent
		plan.TargetRate = maxDecimal(rateExcellent, currentRate)
		plan.Advice = "You're already saving an excellent amount. Consider optimizing for tax efficiency."
	case currentRate.GreaterThanOrEqual(rateVeryGood):
		plan.Status = HealthVeryGood
		plan.TargetRate = rateExcellent
		plan.Advice = "You're doing well. Try to reach the ideal 20% savings rate."
	case currentRate.GreaterThanOrEqual(rateGood):
		plan.Status = HealthGood
		plan.TargetRate = rateVeryGood
		plan.Advice = "Good foundation. Gradually increase your savings rate."
	case currentRate.IsPositive():
		plan.Status = HealthFair
		plan.TargetRate = rateGood
		plan.Advice = "Start small and build the habit. Every dollar saved matters."
	default:
		plan.Status = HealthNeedsAttention
		plan.TargetRate = rateStarter
		plan.Advice = "Focus on creating positive cash flow first, then build savings."
	}
	plan.TargetMonthly = s.TotalIncome.Mul(plan.TargetRate)

	// Three months of expenses is the conservative emergency target; fund
	// it with at most half the available surplus.
	plan.EmergencyFundTarget = s.TotalExpenses.Mul(decimal.NewFromInt(3))
	plan.EmergencyFundMonthly = minDecimal(
		available.Mul(decimal.NewFromFloat(0.5)),
		plan.EmergencyFundTarget.Div(decimal.NewFromInt(12)),
	)
	if plan.EmergencyFundMonthly.IsPositive() {
		months := plan.EmergencyFundTarget.Div(plan.EmergencyFundMonthly).Ceil()
		plan.EmergencyFundMonths = int(months.IntPart())
	}

	plan.CategoryFlags = flagCategories(s)

	a.logger.Debug("Built savings plan",
		logging.Field{Key: "status", Value: plan.Status},
		logging.Field{Key: "flags", Value: len(plan.CategoryFlags)},
	)
	return plan
}

// flagCategories marks expense categories that dominate total spending.
// Housing-type categories are exempt from the hard reduction flag, rent
// being the least flexible line in most budgets.
func flagCategories(s *models.FinancialSummary) []CategoryFlag {
	expenses := s.ExpenseByCategory()

	total := decimal.Zero
	for _, amount := range expenses {
		total = total.Add(amount)
	}
	if !total.IsPositive() {
		return nil
	}

	heavy := decimal.NewFromInt(30)
	notable := decimal.NewFromInt(15)

	var flags []CategoryFlag
	for _, category := range sortedKeys(expenses) {
		amount := expenses[category]
		pct := percentOf(amount, total)
		lower := strings.ToLower(category)

		switch {
		case pct.GreaterThan(heavy) && !strings.Contains(lower, "rent") && !strings.Contains(lower, "housing"):
			flags = append(flags, CategoryFlag{
				Category:          category,
				Amount:            amount,
				PercentOfExpenses: pct,
				Suggestion:        "Consider reducing by 10-15%",
			})
		case pct.GreaterThan(notable) && lower != "rent" && lower != "mortgage" && lower != "housing":
			flags = append(flags, CategoryFlag{
				Category:          category,
				Amount:            amount,
				PercentOfExpenses: pct,
				Suggestion:        "Look for savings opportunities",
			})
		}
	}
	return flags
}

// Render formats the plan as display text.
func (p SavingsPlan) Render() string {
	var sb strings.Builder
	sb.WriteString("SAVINGS RATE ANALYSIS\n\n")
	fmt.Fprintf(&sb, "Current Status: %s\n", p.Status)
	fmt.Fprintf(&sb, "Current Savings Rate: %s%% of income\n", p.CurrentRate.Mul(hundred).StringFixed(1))
	fmt.Fprintf(&sb, "Target Savings Rate: %s%% of income\n", p.TargetRate.Mul(hundred).StringFixed(1))
	fmt.Fprintf(&sb, "Target Monthly Savings: %s\n\n", currencyutils.FormatAmount(p.TargetMonthly))
	sb.WriteString(p.Advice)
	sb.WriteString("\n\nEmergency fund:\n")
	fmt.Fprintf(&sb, "  Target: %s (3 months of expenses)\n", currencyutils.FormatAmount(p.EmergencyFundTarget))
	fmt.Fprintf(&sb, "  Monthly contribution: %s\n", currencyutils.FormatAmount(p.EmergencyFundMonthly))
	if p.EmergencyFundMonths > 0 {
		fmt.Fprintf(&sb, "  Timeline: %d months to full fund\n", p.EmergencyFundMonths)
	}
	if len(p.CategoryFlags) > 0 {
		sb.WriteString("\nExpense optimization opportunities:\n")
		for _, flag := range p.CategoryFlags {
			fmt.Fprintf(&sb, "  - %s: %s/month (%s%% of expenses) - %s\n",
				flag.Category,
				currencyutils.FormatAmount(flag.Amount),
				flag.PercentOfExpenses.StringFixed(0),
				flag.Suggestion,
			)
		}
	}
	if p.Goals != "" {
		sb.WriteString("\nYour goals: " + p.Goals + "\n")
	}
	return sb.String()
}
