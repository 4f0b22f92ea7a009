// internal/loader/stages.go
package loader

import (
	"path/filepath"
	"strings"

	"magmerge/internal/frame"
	"magmerge/internal/manifest"
	"magmerge/internal/tsv"
)

// File names produced by the upstream pipeline.
const (
	contig2binSuffix = "_DASTool_contig2bin.tsv"
	summarySuffix    = "_DASTool_summary.tsv"
	coverageSuffix   = "_coverage.tsv"
	gtdbtkSummary    = "gtdbtk.bac120.summary.tsv"
)

// Coverage reads {folder}/{sample}_coverage.tsv (samtools coverage output).
type Coverage struct{}

func (Coverage) PathsFor(row manifest.Row) []string {
	return []string{filepath.Join(row.Folder, row.SampleID+coverageSuffix)}
}

func (Coverage) Read(path string) (frame.Frame, error) {
	f, err := tsv.ReadFile(path, tsv.Options{})
	if err != nil {
		return frame.Frame{}, err
	}
	return f.RenameColumns(frame.StripMarker), nil
}

// GTDBTk reads {folder}/gtdbtk.bac120.summary.tsv.
type GTDBTk struct{}

func (GTDBTk) PathsFor(row manifest.Row) []string {
	return []string{filepath.Join(row.Folder, gtdbtkSummary)}
}

func (GTDBTk) Read(path string) (frame.Frame, error) {
	return tsv.ReadFile(path, tsv.Options{})
}

// Binning reads the DAS Tool pair for a sample. Used through Load it simply
// stacks both files; LoadBinning joins them.
type Binning struct{}

func (Binning) PathsFor(row manifest.Row) []string {
	return []string{
		filepath.Join(row.Folder, row.SampleID+contig2binSuffix),
		filepath.Join(row.Folder, row.SampleID+summarySuffix),
	}
}

func (Binning) Read(path string) (frame.Frame, error) {
	switch {
	case strings.HasSuffix(path, "contig2bin.tsv"):
		return tsv.ReadFile(path, tsv.Options{Names: []string{"contig", "bin"}})
	case strings.HasSuffix(path, "summary.tsv"):
		return tsv.ReadFile(path, tsv.Options{})
	}
	return frame.Frame{}, nil
}
