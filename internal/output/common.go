package output

import (
	"strings"

	"magmerge/internal/mag"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
var TSVHeader = strings.Join(mag.Columns, "\t")
