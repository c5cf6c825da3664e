package processor

import (
	"fmt"
	"strings"

	"fincoach/internal/models"
)

// Error constructors. Every failure response carries recovery suggestions
// and the capability flags so clients can guide the user instead of showing
// a bare failure.

func (p *Processor) errFileNotFound(path string) *models.ErrorResult {
	return p.newError(models.ErrFileNotFound,
		fmt.Sprintf("The file '%s' could not be found.", path),
		"Check that the file path is correct",
		"Ensure the file hasn't been moved or deleted",
	)
}

func (p *Processor) errUnsupportedFormat(ext string) *models.ErrorResult {
	return p.newError(models.ErrUnsupportedFormat,
		fmt.Sprintf("File format '.%s' is not supported.", ext),
		"Supported formats: "+strings.Join(p.caps.SupportedExtensions(), ", "),
		"Convert your file to CSV for best results",
	)
}

// UnsupportedFormat builds the rejection response for a bad upload
// extension, for callers that validate before writing a temp file.
func (p *Processor) UnsupportedFormat(ext string) *models.ErrorResult {
	return p.errUnsupportedFormat(ext)
}

func (p *Processor) errEncodingFailure(path string) *models.ErrorResult {
	return p.newError(models.ErrEncodingFailure,
		fmt.Sprintf("Could not decode '%s' with any supported encoding.", path),
		"Ensure the file is valid text",
		"Try saving the file with UTF-8 encoding",
		"Check for special characters in the file",
	)
}

func (p *Processor) errEmptyFile(reason string) *models.ErrorResult {
	return p.newError(models.ErrEmptyFile,
		"The file contains no data: "+reason+".",
		"Check that the file has transaction data",
		"Ensure the file isn't just headers",
	)
}

func (p *Processor) errColumnDetection() *models.ErrorResult {
	return p.newError(models.ErrColumnDetection,
		"Could not identify required financial columns in the file.",
		"Required columns: Date, Amount, Description/Category",
		"Column names should be in the first row",
		"Example format: Date,Amount,Category,Description",
	)
}

func (p *Processor) errNoFinancialData(reason string) *models.ErrorResult {
	return p.newError(models.ErrNoFinancialData,
		"No financial data found: "+reason+".",
		"Ensure at least one sheet has columns: Date, Amount, Description",
		"Check that data starts in the first few rows",
		"Try converting to CSV for better compatibility",
	)
}

func (p *Processor) errNoValidTransactions() *models.ErrorResult {
	return p.newError(models.ErrNoValidTransactions,
		"Could not extract any valid transactions from the file.",
		"Check that the amount column contains numeric values",
		"Ensure the date column has valid dates",
		"Verify the file format matches expected structure",
	)
}

func (p *Processor) errProcessingException(detail string) *models.ErrorResult {
	return p.newError(models.ErrProcessingException,
		detail,
		"Check that the file is not corrupted",
		"Ensure the file is not currently open in another application",
		"Try saving the file in a different format",
	)
}

func (p *Processor) newError(kind models.ErrorKind, message string, suggestions ...string) *models.ErrorResult {
	return &models.ErrorResult{
		Kind:            kind,
		Message:         message,
		Suggestions:     suggestions,
		CapabilityFlags: p.caps.Flags(),
	}
}
