// Package scanner finds financial patterns in free-form text. It backs the
// PDF, Word and plain-text paths, where no column structure exists and the
// best available signal is dollar amounts and dates in running text.
package scanner

import (
	"regexp"
	"strings"

	"fincoach/internal/currencyutils"

	"github.com/shopspring/decimal"
)

var (
	// dollarRe matches labeled amounts, including negatives written with a
	// leading minus or accounting parentheses.
	dollarRe = regexp.MustCompile(`\(\$[\d,]+(?:\.\d+)?\)|-?\$[\d,]+(?:\.\d+)?`)

	// looseRe additionally matches bare numbers without a currency symbol.
	// Used for Word and text documents, where statements rarely label every
	// figure.
	looseRe = regexp.MustCompile(`\$?[\d,]+(?:\.\d+)?`)

	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),
		regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`),
		regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
	}
)

// ScanAmounts extracts dollar-labeled amounts from text. Amounts written as
// "-$50.00" or "($50.00)" come back negative.
func ScanAmounts(text string) []decimal.Decimal {
	matches := dollarRe.FindAllString(text, -1)
	amounts := make([]decimal.Decimal, 0, len(matches))
	for _, m := range matches {
		if amount, err := currencyutils.CleanAmount(m); err == nil {
			amounts = append(amounts, amount)
		}
	}
	return amounts
}

// ScanLooseAmounts extracts positive numeric values, labeled or not. Bare
// numbers pick up noise (dates, account numbers), so only positive values
// are kept and callers should treat the result as approximate.
func ScanLooseAmounts(text string) []decimal.Decimal {
	matches := looseRe.FindAllString(text, -1)
	amounts := make([]decimal.Decimal, 0, len(matches))
	for _, m := range matches {
		amount, err := currencyutils.CleanAmount(m)
		if err != nil || !amount.IsPositive() {
			continue
		}
		amounts = append(amounts, amount)
	}
	return amounts
}

// ScanDates extracts date-shaped strings in slash, dash and ISO forms.
func ScanDates(text string) []string {
	var dates []string
	for _, re := range dateRes {
		dates = append(dates, re.FindAllString(text, -1)...)
	}
	return dates
}

// ScanCategories returns which of the given category names appear in the
// text, preserving their order.
func ScanCategories(text string, names []string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, name := range names {
		if strings.Contains(lower, strings.ToLower(name)) {
			found = append(found, name)
		}
	}
	return found
}

// Totals splits a scanned amount list into income and expense sums, where
// expenses are the absolute values of the negatives.
func Totals(amounts []decimal.Decimal) (income, expenses decimal.Decimal) {
	for _, amount := range amounts {
		if amount.IsPositive() {
			income = income.Add(amount)
		} else if amount.IsNegative() {
			expenses = expenses.Add(amount.Abs())
		}
	}
	return income, expenses
}
