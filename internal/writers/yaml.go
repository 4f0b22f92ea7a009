// internal/writers/yaml.go
package writers

import (
	"io"

	"gopkg.in/yaml.v3"

	"magmerge/internal/frame"
	"magmerge/internal/mag"
	"magmerge/internal/output"
)

func init() {
	RegisterMAG(output.FormatYAML, func(w io.Writer, t mag.Table, _ Options) error {
		return encodeYAML(w, output.ToAPIList(t))
	})
	RegisterFrame(output.FormatYAML, func(w io.Writer, f frame.Frame, _ Options) error {
		return encodeYAML(w, output.FrameRecords(f))
	})
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
