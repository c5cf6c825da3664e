// Package excelparser reads Excel workbooks into format-neutral tables.
// Modern .xlsx files go through excelize; legacy BIFF .xls files go through
// a dedicated reader since excelize does not handle them.
package excelparser

import (
	"strings"

	"fincoach/internal/logging"
	"fincoach/internal/models"
	"fincoach/internal/parsererror"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// Parser reads Excel workbooks.
type Parser struct {
	logger logging.Logger
}

// New creates an Excel parser.
func New(logger logging.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseXLSX reads every sheet of an .xlsx workbook and returns one table
// per sheet that holds data. Sheets without data rows are dropped, so the
// caller can probe each returned table for financial columns in turn.
func (p *Parser) ParseXLSX(path string) ([]models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &parsererror.ExtractionError{FilePath: path, Field: "workbook", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			p.logger.Warn("Failed to close workbook", logging.Field{Key: "error", Value: cerr})
		}
	}()

	var tables []models.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			p.logger.Warn("Failed to read sheet",
				logging.Field{Key: "file", Value: path},
				logging.Field{Key: "sheet", Value: sheet},
				logging.Field{Key: "error", Value: err},
			)
			continue
		}
		if table, ok := buildTable(sheet, rows); ok {
			tables = append(tables, table)
		}
	}

	p.logger.Debug("Read xlsx workbook",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "sheets_with_data", Value: len(tables)},
	)
	return tables, nil
}

// ParseXLS reads every sheet of a legacy BIFF .xls workbook.
func (p *Parser) ParseXLS(path string) ([]models.Table, error) {
	workbook, err := xls.OpenFile(path)
	if err != nil {
		return nil, &parsererror.ExtractionError{FilePath: path, Field: "workbook", Err: err}
	}

	var tables []models.Table
	for i := 0; i < workbook.GetNumberSheets(); i++ {
		sheet, err := workbook.GetSheet(i)
		if err != nil || sheet == nil {
			continue
		}

		rows := make([][]string, 0)
		for _, xlsRow := range sheet.GetRows() {
			cells := make([]string, 0)
			for _, col := range xlsRow.GetCols() {
				cells = append(cells, col.GetString())
			}
			rows = append(rows, cells)
		}
		if table, ok := buildTable(sheet.GetName(), rows); ok {
			tables = append(tables, table)
		}
	}

	p.logger.Debug("Read xls workbook",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "sheets_with_data", Value: len(tables)},
	)
	return tables, nil
}

// buildTable converts raw sheet rows into a table: the first non-blank row
// becomes the header, blank rows are dropped. Returns false when the sheet
// has no header or no data rows.
func buildTable(sheet string, raw [][]string) (models.Table, bool) {
	var headers []string
	rows := make([][]string, 0, len(raw))
	for _, record := range raw {
		if isBlankRow(record) {
			continue
		}
		if headers == nil {
			headers = record
			continue
		}
		rows = append(rows, record)
	}

	if headers == nil || len(rows) == 0 {
		return models.Table{}, false
	}
	return models.Table{Name: sheet, Headers: headers, Rows: rows}, true
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
