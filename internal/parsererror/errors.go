// Package parsererror defines the typed errors shared by the document
// readers. The processor inspects these with errors.As to classify a
// failure for the caller.
package parsererror

import "fmt"

// EncodingError reports that a file's bytes could not be decoded with any
// of the supported character encodings.
type EncodingError struct {
	FilePath string
	Tried    []string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unable to decode '%s' with any supported encoding %v", e.FilePath, e.Tried)
}

// EmptyInputError reports that a file contained no data rows to process.
type EmptyInputError struct {
	FilePath string
	Reason   string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input in '%s': %s", e.FilePath, e.Reason)
}

// ColumnDetectionError reports that the required date and amount columns
// could not be identified in a tabular file.
type ColumnDetectionError struct {
	FilePath string
	Headers  []string
	Reason   string
}

func (e *ColumnDetectionError) Error() string {
	return fmt.Sprintf("column detection failed for '%s': %s (headers: %v)",
		e.FilePath, e.Reason, e.Headers)
}

// NoFinancialDataError reports that a document was read successfully but
// carried nothing recognizable as financial data.
type NoFinancialDataError struct {
	FilePath string
	Reason   string
}

func (e *NoFinancialDataError) Error() string {
	return fmt.Sprintf("no financial data in '%s': %s", e.FilePath, e.Reason)
}

// NoValidTransactionsError reports that rows were found but every one of
// them was rejected during extraction.
type NoValidTransactionsError struct {
	FilePath    string
	RowsSkipped int
}

func (e *NoValidTransactionsError) Error() string {
	return fmt.Sprintf("no valid transactions in '%s': all %d rows were skipped",
		e.FilePath, e.RowsSkipped)
}

// ExtractionError wraps a lower-level failure while reading a document,
// keeping the file path and field context.
type ExtractionError struct {
	FilePath string
	Field    string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed in '%s' for %s: %v", e.FilePath, e.Field, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
