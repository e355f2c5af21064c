// Package tabular reads player stat sheets from CSV and XLSX sources into a
// uniform string table. It knows nothing about the stat schema; validation
// of columns and values happens downstream.
package tabular

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrEmptySource is returned when a source contains no rows at all, not
// even a header.
var ErrEmptySource = errors.New("tabular: source has no rows")

// Options configures source parsing.
type Options struct {
	SheetIndex int    // XLSX: default 0
	SheetName  string // XLSX: if set, overrides SheetIndex
	Encoding   string // CSV: IANA charset name, default UTF-8
	Delimiter  rune   // CSV: default ','
}

// Table is a parsed source: one header row plus zero or more data rows.
// Cells are raw strings; short rows are allowed and read as missing cells.
type Table struct {
	Source string
	Header []string
	Rows   [][]string
}

// ColumnIndex maps trimmed header names to their column positions. When a
// header name repeats, the last occurrence wins.
func (t *Table) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Header))
	for i, col := range t.Header {
		idx[strings.TrimSpace(col)] = i
	}
	return idx
}

// Field safely retrieves a named column value from a row, trimmed. Missing
// columns and short rows return "".
func Field(row []string, colIdx map[string]int, col string) string {
	idx, ok := colIdx[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Read parses the file at path, dispatching on its extension.
func Read(path string, opts Options) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadCSV(path, opts)
	case ".xlsx":
		return ReadXLSX(path, opts)
	case ".xls":
		return nil, eris.Errorf("tabular: legacy .xls is not supported, convert %q to .xlsx", path)
	default:
		return nil, eris.Errorf("tabular: unsupported source format %q", ext)
	}
}

// IsNotFound reports whether err means the source file does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsEmptySource reports whether err means the source parsed to zero rows.
func IsEmptySource(err error) bool {
	return errors.Is(err, ErrEmptySource)
}
