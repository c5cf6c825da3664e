package processor

// Capabilities records which document formats this build can process. The
// flags travel with every error response so API clients can tell a missing
// feature from a broken file.
type Capabilities struct {
	CSV   bool
	Excel bool
	PDF   bool
	Word  bool
}

// AllCapabilities returns the capability set of a full build. Every reader
// is compiled in, so all flags are on; the explicit value exists so callers
// and tests can model reduced builds.
func AllCapabilities() Capabilities {
	return Capabilities{CSV: true, Excel: true, PDF: true, Word: true}
}

// Flags renders the capabilities as the wire-format map embedded in error
// responses.
func (c Capabilities) Flags() map[string]bool {
	return map[string]bool{
		"csv_support":   c.CSV,
		"excel_support": c.Excel,
		"pdf_support":   c.PDF,
		"word_support":  c.Word,
	}
}

// SupportedExtensions lists the file extensions the capability set accepts,
// without leading dots.
func (c Capabilities) SupportedExtensions() []string {
	var exts []string
	if c.CSV {
		exts = append(exts, "csv", "txt")
	}
	if c.Excel {
		exts = append(exts, "xlsx", "xls")
	}
	if c.PDF {
		exts = append(exts, "pdf")
	}
	if c.Word {
		exts = append(exts, "docx")
	}
	return exts
}

// Supports reports whether the given extension (without dot) is accepted.
func (c Capabilities) Supports(ext string) bool {
	for _, e := range c.SupportedExtensions() {
		if e == ext {
			return true
		}
	}
	return false
}
