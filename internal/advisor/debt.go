package advisor

import (
	"fmt"
	"strings"

	"fincoach/internal/currencyutils"
	"fincoach/internal/logging"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// Debt-to-income thresholds used by lenders: at or below 20% is healthy,
// above 36% is the conventional warning line.
var (
	dtiExcellent = decimal.NewFromFloat(0.20)
	dtiGood      = decimal.NewFromFloat(0.36)
)

// debtKeywords flag a transaction category as debt service.
var debtKeywords = []string{
	"credit card", "loan", "mortgage", "car payment", "student loan",
	"debt", "payment", "financing", "installment", "lease",
}

// DebtItem is one identified debt payment.
type DebtItem struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// DebtAnalysis is the debt health assessment for one summary.
type DebtAnalysis struct {
	Status            string          `json:"status"`
	MonthlyIncome     decimal.Decimal `json:"monthly_income"`
	MonthlyPayments   decimal.Decimal `json:"monthly_payments"`
	DebtToIncomeRatio decimal.Decimal `json:"debt_to_income_ratio"`
	Debts             []DebtItem      `json:"debts"`
	Advice            string          `json:"advice"`
	Actions           []string        `json:"actions"`
}

// AnalyzeDebt identifies debt payments in the summary and grades the
// debt-to-income ratio against the standard lending thresholds.
func (a *Advisor) AnalyzeDebt(s *models.FinancialSummary) DebtAnalysis {
	debts := identifyDebts(s)

	payments := decimal.Zero
	for _, d := range debts {
		payments = payments.Add(d.Amount)
	}
	ratio := ratioOf(payments, s.TotalIncome)

	analysis := DebtAnalysis{
		MonthlyIncome:     s.TotalIncome,
		MonthlyPayments:   payments,
		DebtToIncomeRatio: ratio,
		Debts:             debts,
	}

	switch {
	case ratio.LessThanOrEqual(dtiExcellent):
		analysis.Status = HealthExcellent
		analysis.Advice = "Your debt-to-income ratio is excellent. You're in great financial shape."
	case ratio.LessThanOrEqual(dtiGood):
		analysis.Status = HealthGood
		analysis.Advice = "Your debt-to-income ratio is manageable but could be improved."
	default:
		analysis.Status = HealthNeedsAttention
		analysis.Advice = "Your debt-to-income ratio is high. Focus on debt reduction immediately."
	}

	extra := maxDecimal(decimal.NewFromInt(50), s.NetCashFlow().Mul(decimal.NewFromFloat(0.1)))
	starter := minDecimal(decimal.NewFromInt(500), s.TotalIncome.Mul(decimal.NewFromFloat(0.1)))
	analysis.Actions = []string{
		"List all debts with balances, minimum payments, and interest rates",
		"Choose either the avalanche or snowball method and stick with it",
		"Set up automatic payments to avoid late fees",
		fmt.Sprintf("Find an extra %s/month for debt payments", currencyutils.FormatAmount(extra)),
		fmt.Sprintf("Build a starter emergency fund of %s to avoid new debt", currencyutils.FormatAmount(starter)),
	}

	a.logger.Debug("Analyzed debt",
		logging.Field{Key: "debts", Value: len(debts)},
		logging.Field{Key: "status", Value: analysis.Status},
	)
	return analysis
}

// identifyDebts collects outgoing transactions whose category looks like
// debt service.
func identifyDebts(s *models.FinancialSummary) []DebtItem {
	var debts []DebtItem
	for _, tx := range s.Transactions {
		if !tx.IsExpense() {
			continue
		}
		category := strings.ToLower(tx.Category)
		for _, keyword := range debtKeywords {
			if strings.Contains(category, keyword) {
				debts = append(debts, DebtItem{
					Type:        tx.Category,
					Amount:      tx.Amount.Abs(),
					Date:        tx.Date,
					Description: tx.Description,
				})
				break
			}
		}
	}
	return debts
}

// Render formats the analysis as display text.
func (d DebtAnalysis) Render() string {
	var sb strings.Builder
	sb.WriteString("DEBT HEALTH ASSESSMENT\n\n")
	fmt.Fprintf(&sb, "Status: %s\n", d.Status)
	fmt.Fprintf(&sb, "Monthly Income: %s\n", currencyutils.FormatAmount(d.MonthlyIncome))
	fmt.Fprintf(&sb, "Total Debt Payments: %s\n", currencyutils.FormatAmount(d.MonthlyPayments))
	fmt.Fprintf(&sb, "Debt-to-Income Ratio: %s%%\n\n", d.DebtToIncomeRatio.Mul(hundred).StringFixed(1))
	sb.WriteString(d.Advice)
	sb.WriteString("\n\nAction plan:\n")
	for _, action := range d.Actions {
		fmt.Fprintf(&sb, "  - %s\n", action)
	}
	return sb.String()
}
