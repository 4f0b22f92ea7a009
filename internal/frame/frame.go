// Package frame holds the loosely typed tables produced by stage readers:
// ordered column names plus rows of nullable string cells. Typed records are
// extracted from frames by column name, which is where structural problems
// (a missing required column) surface.
package frame

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumn is wrapped by every lookup of an absent column.
var ErrMissingColumn = errors.New("missing column")

// Cell is a string value that may be null.
type Cell struct {
	S     string
	Valid bool
}

// Str returns a non-null cell.
func Str(s string) Cell { return Cell{S: s, Valid: true} }

// Null is the null cell.
var Null Cell

// Frame is a table of string cells. Every row has len(Columns) cells.
type Frame struct {
	Columns []string
	Rows    [][]Cell
}

// New returns an empty frame with the given columns.
func New(columns ...string) Frame {
	return Frame{Columns: append([]string(nil), columns...)}
}

// Len is the number of rows.
func (f Frame) Len() int { return len(f.Rows) }

// Index returns the position of column name, or -1.
func (f Frame) Index(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Has reports whether the frame carries column name.
func (f Frame) Has(name string) bool { return f.Index(name) >= 0 }

// Col returns a copy of one column's cells.
func (f Frame) Col(name string) ([]Cell, error) {
	i := f.Index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
	}
	out := make([]Cell, len(f.Rows))
	for r, row := range f.Rows {
		out[r] = row[i]
	}
	return out, nil
}

// Require checks that every named column exists.
func (f Frame) Require(names ...string) error {
	for _, n := range names {
		if !f.Has(n) {
			return fmt.Errorf("%w %q", ErrMissingColumn, n)
		}
	}
	return nil
}

// Append adds a row, padding or truncating it to the frame's width.
func (f *Frame) Append(cells ...Cell) {
	row := make([]Cell, len(f.Columns))
	copy(row, cells)
	f.Rows = append(f.Rows, row)
}

// Value returns the cell at row r of column name; absent columns read as null.
func (f Frame) Value(r int, name string) Cell {
	i := f.Index(name)
	if i < 0 || r < 0 || r >= len(f.Rows) {
		return Null
	}
	return f.Rows[r][i]
}

// RenameColumns returns a frame whose column names are mapped through fn.
// Rows are shared with f.
func (f Frame) RenameColumns(fn func(string) string) Frame {
	cols := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		cols[i] = fn(c)
	}
	return Frame{Columns: cols, Rows: f.Rows}
}

// StripMarker removes leading comment markers ('#') from a column name, as
// in the "#rname" header of samtools coverage.
func StripMarker(col string) string { return strings.TrimLeft(col, "#") }

// Strings renders every row with nulls as "".
func (f Frame) Strings() [][]string {
	out := make([][]string, len(f.Rows))
	for r, row := range f.Rows {
		ss := make([]string, len(row))
		for i, c := range row {
			ss[i] = c.S
		}
		out[r] = ss
	}
	return out
}
