package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBytesUTF8(t *testing.T) {
	text, encoding, ok := DecodeBytes([]byte("Café au lait"))
	require.True(t, ok)
	assert.Equal(t, "utf-8", encoding)
	assert.Equal(t, "Café au lait", text)
}

func TestDecodeBytesLatin1(t *testing.T) {
	// 0xe9 is é in ISO 8859-1 but invalid standalone UTF-8.
	text, encoding, ok := DecodeBytes([]byte{'C', 'a', 'f', 0xe9})
	require.True(t, ok)
	assert.Equal(t, "iso-8859-1", encoding)
	assert.Equal(t, "Café", text)
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  a\t\tb  c \n\n\n\nd  "
	assert.Equal(t, "a b c \n\nd", NormalizeWhitespace(in))
}

func TestCleanCell(t *testing.T) {
	assert.Equal(t, "Grocery Store", CleanCell("  Grocery \t Store "))
	assert.Equal(t, "", CleanCell("   "))
}
