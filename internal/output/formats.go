package output

import "fmt"

// Output formats shared by every command.
const (
	FormatTSV   = "tsv"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// Formats lists the accepted --format values.
var Formats = []string{FormatTSV, FormatCSV, FormatJSON, FormatJSONL, FormatYAML}

// ValidateFormat rejects unknown format names.
func ValidateFormat(f string) error {
	for _, k := range Formats {
		if f == k {
			return nil
		}
	}
	return fmt.Errorf("invalid --format %q (want tsv | csv | json | jsonl | yaml)", f)
}
