// Package docxparser extracts paragraph text and table cells from Word
// documents. A .docx file is a zip archive whose main part is
// word/document.xml, so extraction is a zip walk plus an XML decode with no
// external dependency on Word itself.
package docxparser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"

	"fincoach/internal/logging"
	"fincoach/internal/parsererror"
)

const documentPart = "word/document.xml"

// Parser extracts content from .docx files.
type Parser struct {
	logger logging.Logger
}

// New creates a Word document parser.
func New(logger logging.Logger) *Parser {
	return &Parser{logger: logger}
}

// Content is the readable payload of a Word document: running text from
// paragraphs plus any table cells, row by row.
type Content struct {
	Text   string
	Tables [][]string
}

// Extract reads the document's paragraphs and tables. A document with
// neither readable text nor table content returns EmptyInputError.
func (p *Parser) Extract(path string) (Content, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return Content{}, &parsererror.ExtractionError{FilePath: path, Field: "docx archive", Err: err}
	}
	defer func() {
		if cerr := archive.Close(); cerr != nil {
			p.logger.Warn("Failed to close document", logging.Field{Key: "error", Value: cerr})
		}
	}()

	var part *zip.File
	for _, f := range archive.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return Content{}, &parsererror.ExtractionError{
			FilePath: path,
			Field:    documentPart,
			Err:      io.ErrUnexpectedEOF,
		}
	}

	rc, err := part.Open()
	if err != nil {
		return Content{}, &parsererror.ExtractionError{FilePath: path, Field: documentPart, Err: err}
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			p.logger.Warn("Failed to close document part", logging.Field{Key: "error", Value: cerr})
		}
	}()

	var doc wordDocument
	if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
		return Content{}, &parsererror.ExtractionError{FilePath: path, Field: "document xml", Err: err}
	}

	content := Content{
		Text:   doc.Body.text(),
		Tables: doc.Body.tableRows(),
	}
	if strings.TrimSpace(content.Text) == "" && len(content.Tables) == 0 {
		return Content{}, &parsererror.EmptyInputError{
			FilePath: path,
			Reason:   "document contains no readable text or tables",
		}
	}

	p.logger.Debug("Extracted Word document",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "chars", Value: len(content.Text)},
		logging.Field{Key: "table_rows", Value: len(content.Tables)},
	)
	return content, nil
}

// Minimal WordprocessingML shapes. Unqualified names match the w: namespace
// elements during decoding.
type wordDocument struct {
	Body wordBody `xml:"body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"p"`
	Tables     []wordTable     `xml:"tbl"`
}

type wordParagraph struct {
	Runs []wordRun `xml:"r"`
}

type wordRun struct {
	Texts []string `xml:"t"`
}

type wordTable struct {
	Rows []wordTableRow `xml:"tr"`
}

type wordTableRow struct {
	Cells []wordTableCell `xml:"tc"`
}

type wordTableCell struct {
	Paragraphs []wordParagraph `xml:"p"`
}

func (b wordBody) text() string {
	var sb strings.Builder
	for _, para := range b.Paragraphs {
		sb.WriteString(para.text())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b wordBody) tableRows() [][]string {
	var rows [][]string
	for _, table := range b.Tables {
		for _, row := range table.Rows {
			cells := make([]string, 0, len(row.Cells))
			for _, cell := range row.Cells {
				var parts []string
				for _, para := range cell.Paragraphs {
					if t := strings.TrimSpace(para.text()); t != "" {
						parts = append(parts, t)
					}
				}
				cells = append(cells, strings.Join(parts, " "))
			}
			rows = append(rows, cells)
		}
	}
	return rows
}

func (p wordParagraph) text() string {
	var sb strings.Builder
	for _, run := range p.Runs {
		for _, t := range run.Texts {
			sb.WriteString(t)
		}
	}
	return sb.String()
}
