// internal/output/rows.go
package output

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"magmerge/internal/frame"
)

// FrameRow is one raw frame row for JSON/JSONL/YAML. Keys keep the frame's
// column order; null cells encode as null.
type FrameRow struct {
	Columns []string
	Cells   []frame.Cell
}

func (r FrameRow) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		if c := r.Cells[i]; c.Valid {
			v, err := json.Marshal(c.S)
			if err != nil {
				return nil, err
			}
			b.Write(v)
		} else {
			b.WriteString("null")
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

func (r FrameRow) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i, col := range r.Columns {
		v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if c := r.Cells[i]; c.Valid {
			v = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.S}
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col}, v)
	}
	return n, nil
}

// FrameRecords wraps every row of f; the result is never nil so JSON gets [].
func FrameRecords(f frame.Frame) []FrameRow {
	out := make([]FrameRow, 0, f.Len())
	for _, row := range f.Rows {
		out = append(out, FrameRow{Columns: f.Columns, Cells: row})
	}
	return out
}
