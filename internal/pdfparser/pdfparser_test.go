package pdfparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fincoach/internal/logging"
	"fincoach/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser() *Parser {
	return New(logging.NewLogrusAdapter("error", "text"))
}

func TestExtractTextMissingFile(t *testing.T) {
	_, _, err := newParser().ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestExtractTextNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("just some text, no PDF header"), 0o644))

	_, _, err := newParser().ExtractText(path)
	require.Error(t, err)

	var extractErr *parsererror.ExtractionError
	assert.True(t, errors.As(err, &extractErr))
}
