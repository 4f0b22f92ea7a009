// Package taxonomy splits GTDB-style lineage strings
// ("d__Bacteria;p__Firmicutes;...;s__Name") into seven fixed ranks.
package taxonomy

import "strings"

// RankNames are the output column names, in rank order.
var RankNames = [7]string{"Domain", "Phylum", "Class", "Order", "Family", "Genus", "Species"}

// Ranks holds one lineage. A nil field means the rank was not present.
type Ranks struct {
	Domain  *string
	Phylum  *string
	Class   *string
	Order   *string
	Family  *string
	Genus   *string
	Species *string
}

// Values returns the ranks in RankNames order.
func (r Ranks) Values() [7]*string {
	return [7]*string{r.Domain, r.Phylum, r.Class, r.Order, r.Family, r.Genus, r.Species}
}

// slot maps a token prefix to the field it fills.
func (r *Ranks) slot(prefix string) **string {
	switch prefix {
	case "d":
		return &r.Domain
	case "p":
		return &r.Phylum
	case "c":
		return &r.Class
	case "o":
		return &r.Order
	case "f":
		return &r.Family
	case "g":
		return &r.Genus
	case "s":
		return &r.Species
	}
	return nil
}

// Parse accepts any value; only strings are parsed; everything else,
// nil included, yields all-nil ranks.
func Parse(classification any) Ranks {
	switch v := classification.(type) {
	case string:
		return ParseString(v)
	case *string:
		if v != nil {
			return ParseString(*v)
		}
	}
	return Ranks{}
}

// ParseString splits on ';' and each token on its first "__". Tokens without
// "__" and unknown prefixes are skipped; a repeated prefix overwrites the
// earlier value.
func ParseString(classification string) Ranks {
	var r Ranks
	for _, tok := range strings.Split(classification, ";") {
		prefix, name, ok := strings.Cut(tok, "__")
		if !ok {
			continue
		}
		if dst := r.slot(prefix); dst != nil {
			*dst = &name
		}
	}
	return r
}
