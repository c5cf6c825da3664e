// Package advisor produces the coaching analyses: debt health, savings
// strategy, budget review, payoff planning and the combined report. All
// advice is rule-based and deterministic, derived from the financial
// summary's totals and category breakdown.
package advisor

import (
	"sort"

	"fincoach/internal/logging"

	"github.com/shopspring/decimal"
)

// Advisor generates financial analyses from summaries.
type Advisor struct {
	logger logging.Logger
}

// New creates an Advisor.
func New(logger logging.Logger) *Advisor {
	return &Advisor{logger: logger}
}

// Health grades shared by the analyses.
const (
	HealthExcellent      = "Excellent"
	HealthVeryGood       = "Very Good"
	HealthGood           = "Good"
	HealthFair           = "Fair"
	HealthNeedsAttention = "Needs Attention"
)

var (
	hundred = decimal.NewFromInt(100)
)

// percentOf returns part/whole as a percentage, or zero when whole is not
// positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// ratioOf returns part/whole as a fraction, or zero when whole is not
// positive.
func ratioOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole)
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// sortedKeys returns the map keys in alphabetical order so rendered output
// is stable.
func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
