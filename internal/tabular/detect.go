// Package tabular turns a raw header-plus-rows table into transactions: it
// detects which columns carry the date, amount, description and category
// roles, then extracts and categorizes each row.
package tabular

import (
	"strings"

	"fincoach/internal/currencyutils"
	"fincoach/internal/models"
)

// amountSampleSize caps how many non-blank amount cells are inspected when
// validating a candidate amount column.
const amountSampleSize = 10

// roleAliases lists, per semantic role, the header names that commonly
// carry it across bank exports. The role order is fixed so detection is
// fully deterministic.
var roleAliases = []struct {
	role    string
	aliases []string
}{
	{"date", []string{"date", "transaction_date", "posting_date", "trans_date", "dt", "timestamp"}},
	{"amount", []string{"amount", "transaction_amount", "debit", "credit", "value", "sum", "total", "amt"}},
	{"description", []string{"description", "memo", "details", "transaction_details", "desc", "note"}},
	{"category", []string{"category", "type", "transaction_type", "class", "classification", "cat"}},
}

// DetectColumns identifies which columns of the table hold each semantic
// role. A header matches an alias when either contains the other; the score
// is the length of the contained side, and the highest score wins, so
// "transaction_date" beats "dt" for the date role. Detection fails when no
// date or amount column is found, or when the chosen amount column yields
// no numeric value among its first sampled cells.
func DetectColumns(t models.Table) (models.ColumnMapping, bool) {
	mapping := models.ColumnMapping{Date: -1, Amount: -1, Description: -1, Category: -1}

	lowered := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	assign := map[string]*int{
		"date":        &mapping.Date,
		"amount":      &mapping.Amount,
		"description": &mapping.Description,
		"category":    &mapping.Category,
	}
	for _, r := range roleAliases {
		best, bestScore := -1, 0
		for i, header := range lowered {
			if header == "" {
				continue
			}
			for _, alias := range r.aliases {
				score := 0
				if strings.Contains(header, alias) {
					score = len(alias)
				} else if strings.Contains(alias, header) {
					score = len(header)
				}
				if score > bestScore {
					bestScore = score
					best = i
				}
			}
		}
		*assign[r.role] = best
	}

	if mapping.Date < 0 || mapping.Amount < 0 {
		return mapping, false
	}

	if !amountColumnIsNumeric(t, mapping.Amount) {
		return mapping, false
	}

	return mapping, true
}

// amountColumnIsNumeric samples the first non-blank cells of the candidate
// amount column and requires at least one of them to parse as an amount.
func amountColumnIsNumeric(t models.Table, col int) bool {
	sampled := 0
	for _, row := range t.Rows {
		if sampled >= amountSampleSize {
			break
		}
		cell := strings.TrimSpace(cellAt(row, col))
		if cell == "" {
			continue
		}
		sampled++
		if currencyutils.IsNumeric(cell) {
			return true
		}
	}
	return false
}

// cellAt returns the cell at the given column, or "" when the row is short.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
