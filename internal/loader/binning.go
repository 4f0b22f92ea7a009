// internal/loader/binning.go
package loader

import (
	"go.uber.org/zap"

	"magmerge/internal/frame"
	"magmerge/internal/manifest"
)

// LoadBinning reads each BINNING sample's contig2bin and summary files,
// outer-joins them on bin and concatenates the samples. A missing or broken
// summary only costs that sample its summary columns; contig rows still
// appear. With no BINNING rows the result is an empty contig/bin frame.
func LoadBinning(rows []manifest.Row, opt Options) frame.Frame {
	log := opt.logger().With(zap.String("stage", string(manifest.Binning)))
	src := Binning{}

	var frames []frame.Frame
	for _, row := range manifest.Filter(rows, manifest.Binning) {
		paths := src.PathsFor(row)
		c2bPath, summaryPath := paths[0], paths[1]
		opt.announce(c2bPath)
		opt.announce(summaryPath)

		c2b, err := src.Read(c2bPath)
		if err != nil {
			report(log, c2bPath, err)
			c2b = frame.New("contig", "bin")
		}

		summary, err := src.Read(summaryPath)
		switch {
		case err != nil:
			report(log, summaryPath, err)
			summary = frame.New("bin")
		case !summary.Has("bin"):
			log.Warn("Summary has no bin column", zap.String("path", summaryPath))
			summary = frame.New("bin")
		}

		merged, err := frame.OuterJoin(c2b, summary, "bin")
		if err != nil {
			// both sides carry bin by construction
			log.Error("Error joining binning files", zap.String("sample_id", row.SampleID), zap.Error(err))
			continue
		}
		frames = append(frames, merged)
	}
	if len(frames) == 0 {
		return frame.New("contig", "bin")
	}
	return frame.Concat(frames...)
}
