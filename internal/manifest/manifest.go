// Package manifest reads the CSV that tells magmerge where each sample's
// stage outputs live.
package manifest

import (
	"fmt"
	"io"

	"magmerge/internal/tsv"
)

// Stage names a pipeline step. Matching is exact and case-sensitive.
type Stage string

const (
	Binning  Stage = "BINNING"
	Coverage Stage = "COVERAGE"
	GTDBTk   Stage = "GTDBTK"
)

// Stages lists the known stages in load order.
var Stages = []Stage{Binning, Coverage, GTDBTk}

// ParseStage validates a stage name.
func ParseStage(s string) (Stage, error) {
	for _, st := range Stages {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown stage %q (want BINNING, COVERAGE or GTDBTK)", s)
}

// Row is one manifest line. Empty manifest cells read as "".
type Row struct {
	StudyID  string
	SampleID string
	Stage    Stage
	Folder   string
}

// Columns is the manifest header, in file order.
var Columns = []string{"study_id", "sample_id", "stage", "folder"}

// Load reads a manifest file ("-" for stdin, gzip accepted).
func Load(path string) ([]Row, error) {
	rc, err := tsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	rows, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return rows, nil
}

// Parse reads comma-separated manifest rows. Every column in Columns must be
// present in the header; extra columns are ignored.
func Parse(r io.Reader) ([]Row, error) {
	f, err := tsv.Read(r, tsv.Options{Comma: ','})
	if err != nil {
		return nil, err
	}
	if err := f.Require(Columns...); err != nil {
		return nil, err
	}
	get := func(i int, col string) string { return f.Value(i, col).S }

	rows := make([]Row, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		rows = append(rows, Row{
			StudyID:  get(i, "study_id"),
			SampleID: get(i, "sample_id"),
			Stage:    Stage(get(i, "stage")),
			Folder:   get(i, "folder"),
		})
	}
	return rows, nil
}

// Filter returns the rows for stage, in manifest order.
func Filter(rows []Row, stage Stage) []Row {
	var out []Row
	for _, r := range rows {
		if r.Stage == stage {
			out = append(out, r)
		}
	}
	return out
}

