// internal/writers/json.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"magmerge/internal/frame"
	"magmerge/internal/mag"
	"magmerge/internal/output"
)

func init() {
	RegisterMAG(output.FormatJSON, func(w io.Writer, t mag.Table, _ Options) error {
		return output.EncodePretty(w, output.ToAPIList(t))
	})
	RegisterMAG(output.FormatJSONL, func(w io.Writer, t mag.Table, _ Options) error {
		return writeJSONL(w, output.ToAPIList(t))
	})
	RegisterFrame(output.FormatJSON, func(w io.Writer, f frame.Frame, _ Options) error {
		return output.EncodePretty(w, output.FrameRecords(f))
	})
	RegisterFrame(output.FormatJSONL, func(w io.Writer, f frame.Frame, _ Options) error {
		return writeJSONL(w, output.FrameRecords(f))
	})
}

// writeJSONL encodes one value per line through a 64 KiB buffer.
func writeJSONL[T any](w io.Writer, items []T) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	for _, v := range items {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
