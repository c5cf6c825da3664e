// Package csvparser reads CSV bank exports into a format-neutral table,
// handling the character encodings that exports commonly arrive in.
package csvparser

import (
	"encoding/csv"
	"strings"

	"fincoach/internal/fileutils"
	"fincoach/internal/logging"
	"fincoach/internal/models"
	"fincoach/internal/parsererror"
	"fincoach/internal/textutils"
)

// Parser reads CSV files.
type Parser struct {
	logger logging.Logger
}

// New creates a CSV parser.
func New(logger logging.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse reads the file at path into a table. The raw bytes are decoded as
// UTF-8 with single-byte fallbacks, so legacy exports from older banking
// software still load. The first record becomes the header row; fully blank
// records are dropped.
func (p *Parser) Parse(path string) (models.Table, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return models.Table{}, &parsererror.ExtractionError{FilePath: path, Field: "file", Err: err}
	}

	text, encoding, ok := textutils.DecodeBytes(data)
	if !ok {
		return models.Table{}, &parsererror.EncodingError{
			FilePath: path,
			Tried:    textutils.EncodingNames,
		}
	}
	p.logger.Debug("Decoded CSV file",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "encoding", Value: encoding},
	)

	text = strings.TrimPrefix(text, "\ufeff")
	if strings.TrimSpace(text) == "" {
		return models.Table{}, &parsererror.EmptyInputError{FilePath: path, Reason: "file contains no data"}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return models.Table{}, &parsererror.ExtractionError{FilePath: path, Field: "csv records", Err: err}
	}

	var headers []string
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		if isBlankRecord(record) {
			continue
		}
		if headers == nil {
			headers = record
			continue
		}
		rows = append(rows, record)
	}

	if headers == nil {
		return models.Table{}, &parsererror.EmptyInputError{FilePath: path, Reason: "file contains no records"}
	}
	if len(rows) == 0 {
		return models.Table{}, &parsererror.EmptyInputError{FilePath: path, Reason: "file has headers but no data rows"}
	}

	return models.Table{Name: path, Headers: headers, Rows: rows}, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
