// Package schema has configs, models and global variables for all parts of epiclog.
package schema

import (
	"math"
	"time"
)

// Cell is a single value in a series row. EPIC logs mix numeric channels
// (pressures, temperatures) with free-text channels (event messages), so a
// cell is either numeric or text. Missing numeric values are NaN.
type Cell struct {
	Num    float64 // Numeric value when IsText is false
	Text   string  // Raw text value when IsText is true
	IsText bool    // Distinguishes text cells from numeric cells
}

// NumCell returns a numeric cell.
func NumCell(v float64) Cell {
	return Cell{Num: v}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Text: s, IsText: true}
}

// MissingCell returns a numeric cell holding NaN.
func MissingCell() Cell {
	return Cell{Num: math.NaN()}
}

// IsMissing reports whether the cell holds no usable value.
func (c Cell) IsMissing() bool {
	if c.IsText {
		return c.Text == ""
	}
	return math.IsNaN(c.Num)
}

// Row is one timestamped record of a series. Cells align positionally with
// the owning series' Columns.
type Row struct {
	Time  time.Time
	Cells []Cell
}

// Series is a normalized time-indexed table plus the metadata that must
// survive every transform stage. The timestamp is the sole ordering key and
// is never a payload column; Rows are ordered by non-decreasing Time
// (duplicate timestamps in the source are kept as-is).
type Series struct {
	Name    string   // Derived from the source file path, sanitized
	Comment string   // First line of the source file, sanitized
	Columns []string // Payload column names, timestamp excluded
	Rows    []Row
}

// Empty reports whether the series has no rows.
func (s *Series) Empty() bool {
	return len(s.Rows) == 0
}

// ColumnIndex returns the position of the named column, or -1.
func (s *Series) ColumnIndex(name string) int {
	for i, c := range s.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// WithTable returns a copy of the series with the table replaced and the
// Name/Comment metadata carried forward. Transform stages return new series
// through this instead of mutating their input, so metadata is never lost
// across stages.
func (s *Series) WithTable(columns []string, rows []Row) *Series {
	return &Series{
		Name:    s.Name,
		Comment: s.Comment,
		Columns: columns,
		Rows:    rows,
	}
}

// WithRows returns a copy of the series with the same columns and new rows.
func (s *Series) WithRows(rows []Row) *Series {
	return s.WithTable(s.Columns, rows)
}
