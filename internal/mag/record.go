// internal/mag/record.go
package mag

import "magmerge/internal/table"

// Columns is the canonical output header, in order.
var Columns = []string{
	"mag_id",
	"genome_size",
	"bin_score",
	"relative_abundance",
	"Domain",
	"Phylum",
	"Class",
	"Order",
	"Family",
	"Genus",
	"Species",
	"closest_reference_genome_id",
	"closest_reference_genome_ani",
}

// Record is one complete MAG row. Records only exist once every canonical
// field is known.
type Record struct {
	MagID                     string
	GenomeSize                float64
	BinScore                  float64
	RelativeAbundance         float64
	Domain                    string
	Phylum                    string
	Class                     string
	Order                     string
	Family                    string
	Genus                     string
	Species                   string
	ClosestReferenceGenomeID  string
	ClosestReferenceGenomeANI float64
}

// Fields returns the canonical cells of r, in Columns order.
func (r Record) Fields() []string {
	return []string{
		r.MagID,
		table.FormatFloat(r.GenomeSize),
		table.FormatFloat(r.BinScore),
		table.FormatFloat(r.RelativeAbundance),
		r.Domain, r.Phylum, r.Class, r.Order, r.Family, r.Genus, r.Species,
		r.ClosestReferenceGenomeID,
		table.FormatFloat(r.ClosestReferenceGenomeANI),
	}
}

// Table is the merged MAG table, sorted by MagID.
type Table []Record

// Columns returns the header of the table.
func (Table) Columns() []string { return append([]string(nil), Columns...) }

// Rows returns the string cells of every record.
func (t Table) Rows() [][]string {
	rows := make([][]string, len(t))
	for i, r := range t {
		rows[i] = r.Fields()
	}
	return rows
}

// Report summarises the final null-dropping step.
type Report struct {
	Before  int
	After   int
	Dropped int
}
