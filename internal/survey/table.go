package survey

import (
	"fmt"

	apperrors "github.com/uniomni/survey/internal/errors"
)

// Column is one survey export column
type Column struct {
	Question string   // first header row
	Label    string   // second header row
	Cells    []string // one entry per respondent
}

// Table is a loaded survey export with two header rows. It is not modified
// after construction.
type Table struct {
	columns []Column
	rows    int
}

// NewTable builds a table from the two header rows and the respondent rows.
// The header rows are padded to the same width; a respondent row whose width
// differs from the header is rejected.
func NewTable(questions, labels []string, rows [][]string) (*Table, error) {
	width := len(questions)
	if len(labels) > width {
		width = len(labels)
	}
	if width == 0 {
		return nil, apperrors.NewFormatError("survey header is empty")
	}

	columns := make([]Column, width)
	for i := range columns {
		columns[i] = Column{
			Question: at(questions, i),
			Label:    at(labels, i),
			Cells:    make([]string, len(rows)),
		}
	}

	for r, row := range rows {
		if len(row) != width {
			// data rows are numbered as in the file: two header rows come first
			return nil, apperrors.NewConsistencyError(fmt.Sprintf(
				"row %d has %d fields, header has %d", r+3, len(row), width)).
				WithContext("row", r+3)
		}
		for c, cell := range row {
			columns[c].Cells[r] = cell
		}
	}

	return &Table{columns: columns, rows: len(rows)}, nil
}

// NumColumns returns the number of columns
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the number of respondents
func (t *Table) NumRows() int {
	return t.rows
}

// Question returns the first header row text of column col
func (t *Table) Question(col int) string {
	return t.columns[col].Question
}

// Label returns the second header row text of column col
func (t *Table) Label(col int) string {
	return t.columns[col].Label
}

// Cells returns a copy of the respondent cells of column col
func (t *Table) Cells(col int) []string {
	out := make([]string, len(t.columns[col].Cells))
	copy(out, t.columns[col].Cells)
	return out
}

func at(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
