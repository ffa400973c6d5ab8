package survey

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/uniomni/survey/internal/errors"
)

// Load reads a survey export, choosing the reader from the file extension.
// .xlsx and .xlsm files are read as workbooks, anything else as CSV.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV reads a comma separated survey export
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewIOError("open survey file", err).WithContext("path", path)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a survey export from r. A leading UTF-8 byte order mark is
// ignored.
func ReadCSV(r io.Reader) (*Table, error) {
	br := stripUTF8BOM(bufio.NewReader(r))

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrTypeFormat, "malformed CSV", err)
	}
	return fromRecords(records)
}

// LoadXLSX reads the first sheet of a workbook export
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewIOError("open survey workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewFormatError("workbook has no sheets").WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewIOError("read sheet "+sheets[0], err).WithContext("path", path)
	}

	// Spreadsheet rows drop trailing empty cells and blank rows come back
	// empty, so blank rows are skipped and the rest padded to header width.
	if len(rows) < 2 {
		return fromRecords(rows)
	}
	width := len(rows[0])
	if len(rows[1]) > width {
		width = len(rows[1])
	}
	records := make([][]string, 0, len(rows))
	for i, row := range rows {
		if i >= 2 && isBlank(row) {
			continue
		}
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		records = append(records, row)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) < 2 {
		return nil, apperrors.NewFormatError(fmt.Sprintf(
			"survey export needs two header rows, found %d rows", len(records)))
	}
	return NewTable(records[0], records[1], records[2:])
}

func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
