// internal/mag/build.go
package mag

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"magmerge/internal/frame"
	"magmerge/internal/logging"
	"magmerge/internal/table"
	"magmerge/internal/taxonomy"
)

// ErrNoTaxonomy is returned when the GTDB-Tk table has no rows, so the rank
// columns cannot be derived.
var ErrNoTaxonomy = errors.New("taxonomy table has no rows")

type options struct {
	logger *zap.Logger
}

// Option configures Build.
type Option func(*options)

// WithLogger sends the drop summary to l. Build logs nothing without it.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// placed is a coverage row whose contig has a bin.
type placed struct {
	coverageRow
	Bin string
}

type binContig struct{ Bin, Contig string }
type sampleBin struct{ Sample, Bin string }

// metric is a per-bin value keyed by MAG id.
type metric struct {
	MagID string
	Value table.Float
}

// draft is a MAG row before null filtering.
type draft struct {
	MagID      string
	GenomeSize table.Float
	Abundance  table.Float
	Score      table.Float
	Ranks      taxonomy.Ranks
	RefID      frame.Cell
	ANI        table.Float
}

// Build joins the stage frames into the MAG table. A frame missing a required
// column fails the call; value-level gaps (unparsable numbers, bins absent
// from a table) only drop rows, counted in the Report.
func Build(taxonomyFrame, coverageFrame, binningFrame frame.Frame, opts ...Option) (Table, Report, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.Component(o.logger, "mag")

	cov, hasSample, err := coverageRows(coverageFrame)
	if err != nil {
		return nil, Report{}, err
	}
	assigned, err := assignments(binningFrame)
	if err != nil {
		return nil, Report{}, err
	}

	joined := table.InnerJoin(cov, assigned,
		func(c coverageRow) string { return c.Contig },
		func(a assignment) string { return a.Contig },
		func(c coverageRow, a assignment) placed { return placed{coverageRow: c, Bin: a.Bin} },
	)

	sizes := genomeSizes(joined)
	var abundance []metric
	if hasSample {
		abundance = abundancePerSample(joined)
	} else {
		abundance = abundanceGlobal(joined)
	}
	binScores := scores(binningFrame)
	taxRows, err := taxa(taxonomyFrame)
	if err != nil {
		return nil, Report{}, err
	}

	byID := func(m metric) string { return m.MagID }
	drafts := table.LeftJoin(sizes, abundance, byID, byID, func(s metric, a *metric) draft {
		d := draft{MagID: s.MagID, GenomeSize: s.Value}
		if a != nil {
			d.Abundance = a.Value
		}
		return d
	})
	drafts = table.LeftJoin(drafts, binScores,
		func(d draft) string { return d.MagID },
		func(s scoreRow) string { return s.Bin },
		func(d draft, s *scoreRow) draft {
			if s != nil {
				d.Score = s.Score
			}
			return d
		})
	drafts = table.LeftJoin(drafts, taxRows,
		func(d draft) string { return d.MagID },
		func(t taxonRow) string { return t.MagID },
		func(d draft, t *taxonRow) draft {
			if t != nil {
				d.Ranks, d.RefID, d.ANI = t.Ranks, t.RefID, t.ANI
			}
			return d
		})

	out := make(Table, 0, len(drafts))
	for _, d := range drafts {
		if rec, ok := d.complete(); ok {
			out = append(out, rec)
		}
	}
	rep := Report{Before: len(drafts), After: len(out), Dropped: len(drafts) - len(out)}
	log.Info(fmt.Sprintf("Deleted %d from %d records with missing data", rep.Dropped, rep.Before),
		zap.Int("dropped", rep.Dropped), zap.Int("total", rep.Before))
	return out, rep, nil
}

// genomeSizes sums, per bin, the largest endpos seen for each of its contigs.
// Bins come back sorted by id.
func genomeSizes(rows []placed) []metric {
	perContig := table.GroupBy(rows,
		func(p placed) binContig { return binContig{p.Bin, p.Contig} },
		func(acc table.Float, p placed) table.Float { return acc.Max(p.EndPos) },
	)
	perBin := table.GroupBy(perContig,
		func(g table.Group[binContig, table.Float]) string { return g.Key.Bin },
		func(acc table.Float, g table.Group[binContig, table.Float]) table.Float { return acc.Add(g.Value) },
	)
	out := make([]metric, len(perBin))
	for i, g := range perBin {
		out[i] = metric{MagID: g.Key, Value: g.Value}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MagID < out[j].MagID })
	return out
}

// abundancePerSample divides each bin's reads by its sample's reads, then
// sums a bin's shares over the samples it occurs in. Rows without a sample id
// take no part.
func abundancePerSample(rows []placed) []metric {
	rows = table.Filter(rows, func(p placed) bool { return p.Sample.Valid })
	reads := func(acc table.Float, p placed) table.Float { return acc.Add(p.NumReads) }

	totals := map[string]table.Float{}
	for _, g := range table.GroupBy(rows, func(p placed) string { return p.Sample.S }, reads) {
		totals[g.Key] = g.Value
	}
	perSampleBin := table.GroupBy(rows, func(p placed) sampleBin { return sampleBin{p.Sample.S, p.Bin} }, reads)

	perBin := table.GroupBy(perSampleBin,
		func(g table.Group[sampleBin, table.Float]) string { return g.Key.Bin },
		func(acc table.Float, g table.Group[sampleBin, table.Float]) table.Float {
			return acc.Add(ratio(g.Value, totals[g.Key.Sample]))
		},
	)
	out := make([]metric, len(perBin))
	for i, g := range perBin {
		out[i] = metric{MagID: g.Key, Value: g.Value}
	}
	return out
}

// abundanceGlobal divides each bin's reads by the reads of all bins.
func abundanceGlobal(rows []placed) []metric {
	perBin := table.GroupBy(rows,
		func(p placed) string { return p.Bin },
		func(acc table.Float, p placed) table.Float { return acc.Add(p.NumReads) },
	)
	var total table.Float
	for _, g := range perBin {
		total = total.Add(g.Value)
	}
	out := make([]metric, len(perBin))
	for i, g := range perBin {
		out[i] = metric{MagID: g.Key, Value: ratio(g.Value, total)}
	}
	return out
}

// ratio is null when the denominator is zero or null.
func ratio(num, den table.Float) table.Float {
	if !num.Valid || !den.Valid || den.V == 0 {
		return table.Null
	}
	return table.Num(num.V / den.V)
}

// complete converts a draft into a Record when no canonical field is null.
func (d draft) complete() (Record, bool) {
	ranks := d.Ranks.Values()
	for _, r := range ranks {
		if r == nil {
			return Record{}, false
		}
	}
	if !d.GenomeSize.Valid || !d.Score.Valid || !d.Abundance.Valid || !d.RefID.Valid || !d.ANI.Valid {
		return Record{}, false
	}
	return Record{
		MagID:                     d.MagID,
		GenomeSize:                d.GenomeSize.V,
		BinScore:                  d.Score.V,
		RelativeAbundance:         d.Abundance.V,
		Domain:                    *ranks[0],
		Phylum:                    *ranks[1],
		Class:                     *ranks[2],
		Order:                     *ranks[3],
		Family:                    *ranks[4],
		Genus:                     *ranks[5],
		Species:                   *ranks[6],
		ClosestReferenceGenomeID:  d.RefID.S,
		ClosestReferenceGenomeANI: d.ANI.V,
	}, true
}
