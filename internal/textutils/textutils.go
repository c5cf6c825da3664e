// Package textutils provides character decoding and text cleanup shared by
// the document readers.
package textutils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	spaceRe   = regexp.MustCompile(`[ \t]+`)
	newlineRe = regexp.MustCompile(`\n{3,}`)
)

// EncodingNames lists the character encodings tried when decoding raw file
// bytes, in order of preference.
var EncodingNames = []string{"utf-8", "iso-8859-1", "windows-1252"}

// DecodeBytes converts raw file bytes to a string, trying UTF-8 first and
// then the single-byte fallbacks. It returns the decoded text and the name
// of the encoding that succeeded. ISO 8859-1 accepts every byte value, so
// in practice decoding always succeeds; the ok flag guards the theoretical
// failure path.
func DecodeBytes(data []byte) (text string, encoding string, ok bool) {
	if utf8.Valid(data) {
		return string(data), "utf-8", true
	}

	decoders := []struct {
		name string
		cm   *charmap.Charmap
	}{
		{"iso-8859-1", charmap.ISO8859_1},
		{"windows-1252", charmap.Windows1252},
	}
	for _, d := range decoders {
		decoded, err := d.cm.NewDecoder().Bytes(data)
		if err == nil {
			return string(decoded), d.name, true
		}
	}

	return "", "", false
}

// NormalizeWhitespace collapses runs of spaces and tabs and trims the
// result. Line breaks are preserved but capped at two in a row.
func NormalizeWhitespace(s string) string {
	s = spaceRe.ReplaceAllString(s, " ")
	s = newlineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// CleanCell trims a raw table cell and collapses interior whitespace.
func CleanCell(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
