package models

// Table is a format-neutral tabular payload produced by the spreadsheet
// readers: a header row plus data rows, all as raw strings.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// ColumnMapping records which table columns hold the four semantic roles.
// Date and Amount always reference a valid column once a mapping has been
// derived; Description and Category are -1 when the sheet has no such
// column. A mapping is derived once per sheet and read-only afterward.
type ColumnMapping struct {
	Date        int
	Amount      int
	Description int
	Category    int
}

// HasDescription reports whether a description column was found.
func (m ColumnMapping) HasDescription() bool {
	return m.Description >= 0
}

// HasCategory reports whether a category column was found.
func (m ColumnMapping) HasCategory() bool {
	return m.Category >= 0
}
