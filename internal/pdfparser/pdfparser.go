// Package pdfparser extracts plain text from PDF bank statements. PDFs have
// no reliable column structure, so downstream processing works on patterns
// in the extracted text rather than on rows.
package pdfparser

import (
	"strings"

	"fincoach/internal/logging"
	"fincoach/internal/parsererror"

	"github.com/ledongthuc/pdf"
)

// Parser extracts text from PDF files.
type Parser struct {
	logger logging.Logger
}

// New creates a PDF parser.
func New(logger logging.Logger) *Parser {
	return &Parser{logger: logger}
}

// ExtractText reads every page of the PDF and concatenates the plain text.
// Pages that fail to yield text are skipped, matching how scanned pages
// behave in statements that mix text and images. Returns the page count
// alongside the text. A document with pages but no extractable text returns
// NoFinancialDataError, since it is likely image-based.
func (p *Parser) ExtractText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, &parsererror.ExtractionError{FilePath: path, Field: "pdf", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			p.logger.Warn("Failed to close PDF", logging.Field{Key: "error", Value: cerr})
		}
	}()

	pages := r.NumPage()
	if pages == 0 {
		return "", 0, &parsererror.EmptyInputError{FilePath: path, Reason: "PDF contains no pages"}
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Warn("Failed to extract page text",
				logging.Field{Key: "file", Value: path},
				logging.Field{Key: "page", Value: i},
				logging.Field{Key: "error", Value: err},
			)
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	full := sb.String()
	if strings.TrimSpace(full) == "" {
		return "", pages, &parsererror.NoFinancialDataError{
			FilePath: path,
			Reason:   "no readable text extracted, the PDF may be image-based",
		}
	}

	p.logger.Debug("Extracted PDF text",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "pages", Value: pages},
		logging.Field{Key: "chars", Value: len(full)},
	)
	return full, pages, nil
}
