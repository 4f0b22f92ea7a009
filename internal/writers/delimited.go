// internal/writers/delimited.go
package writers

import (
	"encoding/csv"
	"io"

	"magmerge/internal/frame"
	"magmerge/internal/mag"
	"magmerge/internal/output"
)

func init() {
	RegisterMAG(output.FormatTSV, delimitedMAG('\t'))
	RegisterMAG(output.FormatCSV, delimitedMAG(','))
	RegisterFrame(output.FormatTSV, delimitedFrame('\t'))
	RegisterFrame(output.FormatCSV, delimitedFrame(','))
}

func delimitedMAG(comma rune) MAGWriter {
	return func(w io.Writer, t mag.Table, opt Options) error {
		cw := csv.NewWriter(w)
		cw.Comma = comma
		if opt.Header {
			if err := cw.Write(t.Columns()); err != nil {
				return err
			}
		}
		if err := cw.WriteAll(t.Rows()); err != nil {
			return err
		}
		return cw.Error()
	}
}

// delimitedFrame writes null cells as empty fields.
func delimitedFrame(comma rune) FrameWriter {
	return func(w io.Writer, f frame.Frame, opt Options) error {
		cw := csv.NewWriter(w)
		cw.Comma = comma
		if opt.Header && len(f.Columns) > 0 {
			if err := cw.Write(f.Columns); err != nil {
				return err
			}
		}
		if err := cw.WriteAll(f.Strings()); err != nil {
			return err
		}
		return cw.Error()
	}
}
