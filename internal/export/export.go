// Package export writes processed transaction data back out to files, so a
// scanned statement can round-trip into the structured CSV the rest of the
// pipeline prefers.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fincoach/internal/fileutils"
	"fincoach/internal/logging"
	"fincoach/internal/models"

	"github.com/gocarina/gocsv"
)

// Exporter writes summaries to disk.
type Exporter struct {
	logger logging.Logger
}

// New creates an Exporter.
func New(logger logging.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// WriteCSV writes the summary's transactions as a CSV file with Date,
// Amount, Category and Description columns.
func (e *Exporter) WriteCSV(path string, s *models.FinancialSummary) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("Failed to close export file", logging.Field{Key: "error", Value: cerr})
		}
	}()

	if err := gocsv.MarshalFile(&s.Transactions, f); err != nil {
		return fmt.Errorf("failed to write CSV export: %w", err)
	}

	e.logger.Info("Exported transactions",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "transactions", Value: len(s.Transactions)},
	)
	return nil
}

// WriteJSON writes the full summary, including totals and processing info,
// as indented JSON.
func (e *Exporter) WriteJSON(path string, s *models.FinancialSummary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := fileutils.WriteFile(path, data); err != nil {
		return err
	}

	e.logger.Info("Exported summary",
		logging.Field{Key: "file", Value: path},
	)
	return nil
}
