// Package categorizer assigns category labels to transactions by keyword
// matching against an ordered rule table.
package categorizer

import (
	"strings"

	"fincoach/internal/logging"
	"fincoach/internal/models"

	"github.com/shopspring/decimal"
)

// Fallback labels applied when no keyword rule matches.
const (
	FallbackIncome  = "Income"
	FallbackExpense = "Other Expenses"
)

// Categorizer classifies transaction descriptions. Rule order matters: the
// first rule with a matching keyword wins, so generic keywords belong in
// later rules.
type Categorizer struct {
	rules  []models.CategoryRule
	logger logging.Logger
}

// New creates a Categorizer from an ordered rule table.
func New(rules []models.CategoryRule, logger logging.Logger) *Categorizer {
	return &Categorizer{rules: rules, logger: logger}
}

// NewDefault creates a Categorizer with the built-in rule table. Used when
// no rules file is available.
func NewDefault(logger logging.Logger) *Categorizer {
	return New(DefaultRules(), logger)
}

// Categorize returns the category label for a transaction. Matching is
// case-insensitive substring containment, so "Shell Gas Station" hits the
// "gas" keyword. When no keyword matches, the amount's sign decides between
// the income and expense fallbacks.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal) string {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return c.fallback(amount)
	}

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, strings.ToLower(keyword)) {
				c.logger.Debug("Categorized by keyword",
					logging.Field{Key: "description", Value: description},
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: "category", Value: rule.Name},
				)
				return rule.Name
			}
		}
	}

	return c.fallback(amount)
}

// CategoryNames returns the ordered list of rule category names.
func (c *Categorizer) CategoryNames() []string {
	names := make([]string, 0, len(c.rules))
	for _, rule := range c.rules {
		names = append(names, rule.Name)
	}
	return names
}

func (c *Categorizer) fallback(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return FallbackIncome
	}
	return FallbackExpense
}
