// internal/mag/inputs.go
package mag

import (
	"fmt"

	"magmerge/internal/frame"
	"magmerge/internal/table"
	"magmerge/internal/taxonomy"
)

// coverageRow is one contig observation from samtools coverage.
type coverageRow struct {
	Contig   string
	EndPos   table.Float
	NumReads table.Float
	Sample   frame.Cell
}

// assignment maps a contig to its bin.
type assignment struct {
	Contig string
	Bin    string
}

// scoreRow is a bin's DAS Tool score.
type scoreRow struct {
	Bin   string
	Score table.Float
}

// taxonRow is one GTDB-Tk classification, already split into ranks.
type taxonRow struct {
	MagID string
	Ranks taxonomy.Ranks
	RefID frame.Cell
	ANI   table.Float
}

// coverageRows normalises the coverage frame. Rows with a null contig name
// cannot join anything and are dropped here.
func coverageRows(f frame.Frame) ([]coverageRow, bool, error) {
	f = f.RenameColumns(frame.StripMarker)
	if err := f.Require("rname", "endpos", "numreads"); err != nil {
		return nil, false, fmt.Errorf("coverage table: %w", err)
	}
	hasSample := f.Has("sample_id")
	rows := make([]coverageRow, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		name := f.Value(i, "rname")
		if !name.Valid {
			continue
		}
		end, reads := f.Value(i, "endpos"), f.Value(i, "numreads")
		rows = append(rows, coverageRow{
			Contig:   name.S,
			EndPos:   table.Coerce(end.S, end.Valid),
			NumReads: table.Coerce(reads.S, reads.Valid),
			Sample:   f.Value(i, "sample_id"),
		})
	}
	return rows, hasSample, nil
}

// assignments returns contig→bin pairs where both sides are present.
func assignments(f frame.Frame) ([]assignment, error) {
	if err := f.Require("contig", "bin"); err != nil {
		return nil, fmt.Errorf("binning table: %w", err)
	}
	var out []assignment
	for i := 0; i < f.Len(); i++ {
		c, b := f.Value(i, "contig"), f.Value(i, "bin")
		if c.Valid && b.Valid {
			out = append(out, assignment{Contig: c.S, Bin: b.S})
		}
	}
	return out, nil
}

// scores returns one score per bin (first occurrence). Without a bin_score
// column the mapping is empty, which leaves every MAG without a score.
func scores(f frame.Frame) []scoreRow {
	if !f.Has("bin_score") {
		return nil
	}
	var rows []scoreRow
	for i := 0; i < f.Len(); i++ {
		b := f.Value(i, "bin")
		if !b.Valid {
			continue
		}
		s := f.Value(i, "bin_score")
		rows = append(rows, scoreRow{Bin: b.S, Score: table.Coerce(s.S, s.Valid)})
	}
	return table.DedupFirst(rows, func(r scoreRow) string { return r.Bin })
}

// taxa expands the GTDB-Tk summary. An empty summary yields no rank columns
// at all, which is a structural failure like a missing column.
func taxa(f frame.Frame) ([]taxonRow, error) {
	if err := f.Require("user_genome", "classification", "closest_genome_reference", "closest_genome_ani"); err != nil {
		return nil, fmt.Errorf("taxonomy table: %w", err)
	}
	if f.Len() == 0 {
		return nil, ErrNoTaxonomy
	}
	rows := make([]taxonRow, 0, f.Len())
	for i := 0; i < f.Len(); i++ {
		id := f.Value(i, "user_genome")
		if !id.Valid {
			continue
		}
		var class any
		if c := f.Value(i, "classification"); c.Valid {
			class = c.S
		}
		ani := f.Value(i, "closest_genome_ani")
		rows = append(rows, taxonRow{
			MagID: id.S,
			Ranks: taxonomy.Parse(class),
			RefID: f.Value(i, "closest_genome_reference"),
			ANI:   table.Coerce(ani.S, ani.Valid),
		})
	}
	return rows, nil
}
