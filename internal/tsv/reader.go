// internal/tsv/reader.go
package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"magmerge/internal/frame"
)

// ErrNoHeader is returned when a headered file has no lines at all.
var ErrNoHeader = errors.New("no header line")

// Options controls how a delimited file becomes a frame.
type Options struct {
	// Names, when set, are the column names of a headerless file.
	Names []string
	// Comma is the field separator; 0 means tab.
	Comma rune
}

// naValues are the cell spellings read as null.
var naValues = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"NULL": {}, "null": {}, "None": {}, "<NA>": {}, "#N/A": {}, "#NA": {},
}

// ReadFile opens path (see Open) and parses it with Read.
func ReadFile(path string, opt Options) (frame.Frame, error) {
	rc, err := Open(path)
	if err != nil {
		return frame.Frame{}, err
	}
	defer rc.Close()
	f, err := Read(rc, opt)
	if err != nil {
		return frame.Frame{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Read parses a delimited stream. The first line is the header unless
// opt.Names is set. Short rows are padded with nulls; rows wider than the
// header are an error.
func Read(r io.Reader, opt Options) (frame.Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var f frame.Frame
	if len(opt.Names) > 0 {
		f = frame.New(opt.Names...)
	} else {
		hdr, err := cr.Read()
		if err == io.EOF {
			return frame.Frame{}, ErrNoHeader
		}
		if err != nil {
			return frame.Frame{}, err
		}
		f = frame.New(hdr...)
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return frame.Frame{}, err
		}
		if len(rec) > len(f.Columns) {
			line, _ := cr.FieldPos(0)
			return frame.Frame{}, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(f.Columns), len(rec))
		}
		cells := make([]frame.Cell, len(rec))
		for i, s := range rec {
			if _, na := naValues[s]; !na {
				cells[i] = frame.Str(s)
			}
		}
		f.Append(cells...)
	}
	return f, nil
}
