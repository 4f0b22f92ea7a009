// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"magmerge/internal/mag"
	"magmerge/pkg/api"
)

// ToAPI converts a Record to the stable wire schema (v1).
func ToAPI(r mag.Record) api.MAGV1 {
	return api.MAGV1{
		MagID:                     r.MagID,
		GenomeSize:                api.Float(r.GenomeSize),
		BinScore:                  api.Float(r.BinScore),
		RelativeAbundance:         api.Float(r.RelativeAbundance),
		Domain:                    r.Domain,
		Phylum:                    r.Phylum,
		Class:                     r.Class,
		Order:                     r.Order,
		Family:                    r.Family,
		Genus:                     r.Genus,
		Species:                   r.Species,
		ClosestReferenceGenomeID:  r.ClosestReferenceGenomeID,
		ClosestReferenceGenomeANI: api.Float(r.ClosestReferenceGenomeANI),
	}
}

// ToAPIList converts every record; the result is never nil so JSON gets [].
func ToAPIList(list mag.Table) []api.MAGV1 {
	out := make([]api.MAGV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPI(r))
	}
	return out
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
