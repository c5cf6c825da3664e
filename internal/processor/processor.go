// Package processor routes financial documents to the right reader and
// normalizes every outcome, success or failure, into a single result shape.
package processor

import (
	"errors"
	"fmt"
	"strings"

	"fincoach/internal/categorizer"
	"fincoach/internal/csvparser"
	"fincoach/internal/docxparser"
	"fincoach/internal/excelparser"
	"fincoach/internal/fileutils"
	"fincoach/internal/logging"
	"fincoach/internal/models"
	"fincoach/internal/parsererror"
	"fincoach/internal/pdfparser"
	"fincoach/internal/scanner"
	"fincoach/internal/tabular"
	"fincoach/internal/textutils"

	"github.com/shopspring/decimal"
)

// TableReader produces one table from a single-table document.
type TableReader interface {
	Parse(path string) (models.Table, error)
}

// WorkbookReader produces one table per sheet of a spreadsheet workbook.
type WorkbookReader interface {
	ParseXLSX(path string) ([]models.Table, error)
	ParseXLS(path string) ([]models.Table, error)
}

// TextExtractor yields plain text plus a page count from a paged document.
type TextExtractor interface {
	ExtractText(path string) (string, int, error)
}

// WordExtractor yields text and table rows from a word-processing document.
type WordExtractor interface {
	Extract(path string) (docxparser.Content, error)
}

// Processor turns financial documents into summaries. It never returns a Go
// error to its caller: every failure becomes a typed ErrorResult with
// recovery suggestions, so transport layers can render it directly.
type Processor struct {
	csv    TableReader
	excel  WorkbookReader
	pdf    TextExtractor
	docx   WordExtractor
	cat    *categorizer.Categorizer
	caps   Capabilities
	logger logging.Logger
}

// New creates a Processor with all format readers wired in.
func New(cat *categorizer.Categorizer, logger logging.Logger) *Processor {
	return &Processor{
		csv:    csvparser.New(logger),
		excel:  excelparser.New(logger),
		pdf:    pdfparser.New(logger),
		docx:   docxparser.New(logger),
		cat:    cat,
		caps:   AllCapabilities(),
		logger: logger,
	}
}

// Capabilities returns the processor's capability set.
func (p *Processor) Capabilities() Capabilities {
	return p.caps
}

// ProcessDocument validates, routes and processes one document. A panic in
// any reader is converted into a ProcessingException result so one corrupt
// document cannot take down a batch or a server worker.
func (p *Processor) ProcessDocument(path string) (result models.Result) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Panic while processing document",
				logging.Field{Key: "file", Value: path},
				logging.Field{Key: "panic", Value: r},
			)
			result = models.Fail(p.errProcessingException(fmt.Sprintf("unexpected failure: %v", r)))
		}
	}()

	log := p.logger.WithField("file", path)
	log.Info("Processing document")

	if !fileutils.FileExists(path) {
		return models.Fail(p.errFileNotFound(path))
	}

	ext := fileutils.Extension(path)
	if !p.caps.Supports(ext) {
		return models.Fail(p.errUnsupportedFormat(ext))
	}

	switch ext {
	case "csv":
		return p.processCSV(path)
	case "xlsx", "xls":
		return p.processExcel(path, ext)
	case "pdf":
		return p.processPDF(path)
	case "docx":
		return p.processWord(path)
	case "txt":
		return p.processText(path)
	}

	return models.Fail(p.errUnsupportedFormat(ext))
}

// processCSV reads the file as one table. A table whose columns cannot be
// identified is a column-detection failure here, unlike Excel where other
// sheets may still hold the data.
func (p *Processor) processCSV(path string) models.Result {
	table, err := p.csv.Parse(path)
	if err != nil {
		return models.Fail(p.classify(err, path))
	}

	mapping, ok := tabular.DetectColumns(table)
	if !ok {
		return models.Fail(p.errColumnDetection())
	}

	summary, err := tabular.Extract(table, mapping, p.cat, p.logger)
	if err != nil {
		return models.Fail(p.classify(err, path))
	}

	p.logger.Info("Processed CSV document",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "transactions", Value: summary.ProcessingInfo.SuccessfulTransactions},
	)
	return models.Ok(summary)
}

// processExcel probes each sheet for financial columns and extracts from
// the first one that matches.
func (p *Processor) processExcel(path, ext string) models.Result {
	var (
		tables []models.Table
		err    error
	)
	if ext == "xls" {
		tables, err = p.excel.ParseXLS(path)
	} else {
		tables, err = p.excel.ParseXLSX(path)
	}
	if err != nil {
		return models.Fail(p.classify(err, path))
	}

	for _, table := range tables {
		mapping, ok := tabular.DetectColumns(table)
		if !ok {
			continue
		}

		summary, err := tabular.Extract(table, mapping, p.cat, p.logger)
		if err != nil {
			return models.Fail(p.classify(err, path))
		}

		p.logger.Info("Processed Excel document",
			logging.Field{Key: "file", Value: path},
			logging.Field{Key: "sheet", Value: table.Name},
			logging.Field{Key: "transactions", Value: summary.ProcessingInfo.SuccessfulTransactions},
		)
		return models.Ok(summary)
	}

	return models.Fail(p.errNoFinancialData("no sheet has recognizable financial columns"))
}

// processPDF extracts text and scans it for dollar amounts. The result is
// approximate: it has totals but no per-row transactions.
func (p *Processor) processPDF(path string) models.Result {
	text, pages, err := p.pdf.ExtractText(path)
	if err != nil {
		return models.Fail(p.classify(err, path))
	}

	amounts := scanner.ScanAmounts(text)
	dates := scanner.ScanDates(text)

	summary := p.patternSummary("PDF Transactions", amounts, []string{
		fmt.Sprintf("Scanned %d pages: %d amounts and %d dates detected", pages, len(amounts), len(dates)),
		"PDF processing is limited - amounts and dates detected",
		"For full analysis, export transactions to CSV format",
	})
	return models.Ok(summary)
}

// processWord extracts paragraphs and tables and scans both for amounts.
func (p *Processor) processWord(path string) models.Result {
	content, err := p.docx.Extract(path)
	if err != nil {
		return models.Fail(p.classify(err, path))
	}

	text := content.Text
	for _, row := range content.Tables {
		text += "\n" + strings.Join(row, " ")
	}

	amounts := scanner.ScanLooseAmounts(text)
	found := scanner.ScanCategories(text, p.cat.CategoryNames())

	notes := []string{
		fmt.Sprintf("%d amounts detected across text and %d table rows", len(amounts), len(content.Tables)),
		"Word document processing is basic - patterns detected",
		"For detailed analysis, use structured CSV format",
	}
	if len(found) > 0 {
		notes = append(notes, "Categories mentioned: "+strings.Join(found, ", "))
	}

	return models.Ok(p.patternSummary("Document Analysis", amounts, notes))
}

// processText scans a plain-text file for amounts.
func (p *Processor) processText(path string) models.Result {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return models.Fail(p.errProcessingException(err.Error()))
	}

	text, _, ok := textutils.DecodeBytes(data)
	if !ok {
		return models.Fail(p.errEncodingFailure(path))
	}
	if strings.TrimSpace(text) == "" {
		return models.Fail(p.errEmptyFile("the text file is empty"))
	}

	amounts := scanner.ScanLooseAmounts(text)
	return models.Ok(p.patternSummary("Text Analysis", amounts, []string{
		fmt.Sprintf("%d amounts detected", len(amounts)),
		"Text file processing is basic - patterns detected",
		"Use CSV format with headers for best results",
	}))
}

// patternSummary builds the approximate summary used by the unstructured
// paths. It carries totals under a single label but no transactions, and
// the notes flag it as low confidence.
func (p *Processor) patternSummary(label string, amounts []decimal.Decimal, notes []string) *models.FinancialSummary {
	income, expenses := scanner.Totals(amounts)

	summary := models.NewFinancialSummary()
	summary.TotalIncome = income
	summary.TotalExpenses = expenses
	summary.Categories[label] = expenses
	summary.ProcessingInfo.Notes = notes
	return summary
}

// classify maps reader errors onto the failure taxonomy.
func (p *Processor) classify(err error, path string) *models.ErrorResult {
	var (
		encodingErr *parsererror.EncodingError
		emptyErr    *parsererror.EmptyInputError
		noDataErr   *parsererror.NoFinancialDataError
		noTxErr     *parsererror.NoValidTransactionsError
	)
	switch {
	case errors.As(err, &encodingErr):
		return p.errEncodingFailure(path)
	case errors.As(err, &emptyErr):
		return p.errEmptyFile(emptyErr.Reason)
	case errors.As(err, &noDataErr):
		return p.errNoFinancialData(noDataErr.Reason)
	case errors.As(err, &noTxErr):
		return p.errNoValidTransactions()
	default:
		p.logger.WithError(err).Error("Document processing failed",
			logging.Field{Key: "file", Value: path},
		)
		return p.errProcessingException(err.Error())
	}
}
