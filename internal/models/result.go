package models

// ErrorKind classifies a document-processing failure.
type ErrorKind string

const (
	ErrFileNotFound        ErrorKind = "FileNotFound"
	ErrUnsupportedFormat   ErrorKind = "UnsupportedFormat"
	ErrEncodingFailure     ErrorKind = "EncodingFailure"
	ErrEmptyFile           ErrorKind = "EmptyFile"
	ErrColumnDetection     ErrorKind = "ColumnDetectionFailed"
	ErrNoFinancialData     ErrorKind = "NoFinancialData"
	ErrNoValidTransactions ErrorKind = "NoValidTransactions"
	ErrProcessingException ErrorKind = "ProcessingException"
)

// ErrorResult is returned in place of a FinancialSummary whenever processing
// cannot produce valid transactions. Suggestions are user-facing recovery
// hints meant for direct display, not log text.
type ErrorResult struct {
	Kind            ErrorKind       `json:"error"`
	Message         string          `json:"message"`
	Suggestions     []string        `json:"suggestions"`
	CapabilityFlags map[string]bool `json:"capability_flags"`
}

// Error implements the error interface.
func (e *ErrorResult) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// Result is the outcome of one document-processing call. Exactly one of
// Summary or Failure is set; callers switch on IsError rather than probing
// a map for an error key.
type Result struct {
	Summary *FinancialSummary
	Failure *ErrorResult
}

// Ok wraps a successful summary.
func Ok(s *FinancialSummary) Result {
	return Result{Summary: s}
}

// Fail wraps a processing failure.
func Fail(e *ErrorResult) Result {
	return Result{Failure: e}
}

// IsError reports whether the call failed.
func (r Result) IsError() bool {
	return r.Failure != nil
}
