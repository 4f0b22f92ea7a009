// internal/cli/options.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"magmerge/internal/config"
	"magmerge/internal/manifest"
	"magmerge/internal/output"
	"magmerge/internal/version"
)

// Flag names shared by every command.
const (
	FlagConfig        = "config"
	FlagManifest      = "manifest"
	FlagOut           = "out"
	FlagFormat        = "format"
	FlagNoHeader      = "no-header"
	FlagPrintPaths    = "print-paths"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
	FlagEmptyExitCode = "empty-exit-code"
)

// Register adds the global flags to fs. Defaults mirror config.NewViper so
// help output shows the effective values.
func Register(fs *pflag.FlagSet) {
	// Input
	fs.String(FlagConfig, "", "config file (yaml | json | toml)")
	fs.StringP(FlagManifest, "m", "", "manifest CSV: study_id,sample_id,stage,folder ('-' = stdin) [*]")

	// Output
	fs.StringP(FlagOut, "o", config.DefaultOut, "output file ('-' = stdout)")
	fs.StringP(FlagFormat, "f", config.DefaultFormat, "output format: "+strings.Join(output.Formats, " | "))
	fs.Bool(FlagNoHeader, false, "suppress header line in tsv/csv")
	fs.Bool(FlagPrintPaths, false, "print each input path to stderr before reading it")
	fs.Int(FlagEmptyExitCode, 0, "exit code when the merged table is empty")

	// Diagnostics
	fs.String(FlagLogLevel, config.DefaultLogLevel, "log level: debug | info | warn | error")
	fs.String(FlagLogFormat, config.DefaultLogFormat, "log encoding: console | json")
}

// Banner is the long help text of the root command.
func Banner(name string) string {
	return fmt.Sprintf(`%s: merge binning, coverage and GTDB-Tk outputs into one MAG table

Version: %s

Inputs are located through a manifest CSV whose stage column is one of
%s. Settings may also come from --config or %s_* environment variables.`,
		name, version.Version, stageList(), config.EnvPrefix)
}

func stageList() string {
	names := make([]string, len(manifest.Stages))
	for i, s := range manifest.Stages {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
