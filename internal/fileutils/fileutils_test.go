package fileutils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.txt")

	require.NoError(t, WriteFile(path, []byte("hello")))
	assert.True(t, FileExists(path))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestFileExistsOnDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, FileExists(dir))
	assert.True(t, DirectoryExists(dir))
}

func TestExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"statement.CSV", "csv"},
		{"report.xlsx", "xlsx"},
		{"/tmp/a/b.PDF", "pdf"},
		{"noext", ""},
		{"archive.tar.gz", "gz"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Extension(tt.path), tt.path)
	}
}
