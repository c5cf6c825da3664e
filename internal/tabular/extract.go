package tabular

import (
	"fmt"
	"strings"

	"fincoach/internal/categorizer"
	"fincoach/internal/currencyutils"
	"fincoach/internal/dateutils"
	"fincoach/internal/logging"
	"fincoach/internal/models"
	"fincoach/internal/parsererror"
)

// Extract walks every data row of the table and builds the financial
// summary. Rows whose amount cell does not parse are skipped, counted and
// recorded in ProcessingInfo.Issues;
// dates that fail to parse survive as their original text so no row is lost
// to formatting. Returns NoValidTransactionsError when every row was
// skipped.
func Extract(t models.Table, mapping models.ColumnMapping, cat *categorizer.Categorizer, logger logging.Logger) (*models.FinancialSummary, error) {
	summary := models.NewFinancialSummary()
	summary.ProcessingInfo.RowsProcessed = len(t.Rows)

	for i, row := range t.Rows {
		raw := cellAt(row, mapping.Amount)
		amount, err := currencyutils.CleanAmount(raw)
		if err != nil {
			summary.ProcessingInfo.SkippedRows++
			summary.ProcessingInfo.Issues = append(summary.ProcessingInfo.Issues,
				fmt.Sprintf("row %d: amount %q is not numeric", i+1, raw))
			continue
		}

		date := dateutils.CleanDate(cellAt(row, mapping.Date))

		description := ""
		if mapping.HasDescription() {
			description = strings.TrimSpace(cellAt(row, mapping.Description))
		}

		category := ""
		if mapping.HasCategory() {
			category = strings.TrimSpace(cellAt(row, mapping.Category))
		}
		if isBlankCategory(category) {
			category = cat.Categorize(description, amount)
		}

		summary.Add(models.Transaction{
			Date:        date,
			Amount:      amount,
			Category:    category,
			Description: description,
		})
	}

	if summary.ProcessingInfo.SuccessfulTransactions == 0 {
		return nil, &parsererror.NoValidTransactionsError{
			RowsSkipped: summary.ProcessingInfo.SkippedRows,
		}
	}

	if summary.ProcessingInfo.SkippedRows > 0 {
		logger.Warn("Skipped rows during extraction",
			logging.Field{Key: "skipped", Value: summary.ProcessingInfo.SkippedRows},
			logging.Field{Key: "processed", Value: summary.ProcessingInfo.RowsProcessed},
		)
	}

	return summary, nil
}

// isBlankCategory reports whether a raw category cell should be replaced by
// auto-categorization. Placeholder values exported by some tools ("nan",
// "none") count as blank.
func isBlankCategory(category string) bool {
	switch strings.ToLower(category) {
	case "", "nan", "none":
		return true
	}
	return false
}
