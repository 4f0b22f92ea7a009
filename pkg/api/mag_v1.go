// pkg/api/mag_v1.go
package api

// MAGV1 is the stable JSON/JSONL/YAML schema for one merged MAG.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MAGV1 struct {
	MagID                     string `json:"mag_id" yaml:"mag_id"`
	GenomeSize                Float  `json:"genome_size" yaml:"genome_size"`
	BinScore                  Float  `json:"bin_score" yaml:"bin_score"`
	RelativeAbundance         Float  `json:"relative_abundance" yaml:"relative_abundance"`
	Domain                    string `json:"Domain" yaml:"Domain"`
	Phylum                    string `json:"Phylum" yaml:"Phylum"`
	Class                     string `json:"Class" yaml:"Class"`
	Order                     string `json:"Order" yaml:"Order"`
	Family                    string `json:"Family" yaml:"Family"`
	Genus                     string `json:"Genus" yaml:"Genus"`
	Species                   string `json:"Species" yaml:"Species"`
	ClosestReferenceGenomeID  string `json:"closest_reference_genome_id" yaml:"closest_reference_genome_id"`
	ClosestReferenceGenomeANI Float  `json:"closest_reference_genome_ani" yaml:"closest_reference_genome_ani"`
}
