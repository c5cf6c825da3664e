// Package currencyutils provides amount normalization and formatting shared
// by the document readers and the reporting layer.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotNumeric reports that a value could not be interpreted as an amount.
var ErrNotNumeric = errors.New("value is not numeric")

// symbolRe strips currency symbols, grouping separators and whitespace
// before parsing. Apostrophes cover Swiss-style grouping ("1'234.56").
var symbolRe = regexp.MustCompile(`[$€£¥',\s]`)

// CleanAmount converts a raw cell value into a signed decimal amount.
// Accounting-style parentheses denote a negative value, so "(50.00)" parses
// to -50.00. Currency symbols, thousands separators and whitespace are
// ignored. Empty or non-numeric input returns ErrNotNumeric.
func CleanAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrNotNumeric
	}

	// Symbols go first so forms like "$(500)" still read as negative.
	s = symbolRe.ReplaceAllString(s, "")

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	if s == "" {
		return decimal.Zero, ErrNotNumeric
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, raw)
	}

	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

// IsNumeric reports whether a raw cell value parses as an amount.
func IsNumeric(raw string) bool {
	_, err := CleanAmount(raw)
	return err == nil
}

// FormatAmount renders an amount with two decimal places and a dollar sign,
// e.g. "$1234.56" or "-$50.00".
func FormatAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}
