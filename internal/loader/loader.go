// internal/loader/loader.go
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"magmerge/internal/frame"
	"magmerge/internal/logging"
	"magmerge/internal/manifest"
)

// Source resolves and reads one stage's files.
type Source interface {
	// PathsFor lists the files a manifest row contributes.
	PathsFor(row manifest.Row) []string
	// Read parses one file. A missing file must yield an error matching
	// fs.ErrNotExist.
	Read(path string) (frame.Frame, error)
}

// Options are shared by every loader.
type Options struct {
	Logger *zap.Logger
	// Progress, when set, receives each path on its own line before it is read.
	Progress io.Writer
}

func (o Options) logger() *zap.Logger { return logging.Component(o.Logger, "loader") }

func (o Options) announce(path string) {
	if o.Progress != nil {
		_, _ = fmt.Fprintln(o.Progress, path)
	}
}

// Load reads every file of stage and concatenates the results in manifest
// order. Rows of other stages are never handed to src. The result is empty
// (no columns, no rows) when nothing could be read.
func Load(rows []manifest.Row, stage manifest.Stage, src Source, opt Options) frame.Frame {
	log := opt.logger().With(zap.String("stage", string(stage)))

	var frames []frame.Frame
	for _, row := range manifest.Filter(rows, stage) {
		for _, path := range src.PathsFor(row) {
			opt.announce(path)
			f, err := src.Read(path)
			if err != nil {
				report(log, path, err)
				continue
			}
			frames = append(frames, f)
		}
	}
	if len(frames) == 0 {
		return frame.Frame{}
	}
	return frame.Concat(frames...)
}

// report logs a failed read: warning for a missing file, error otherwise.
func report(log *zap.Logger, path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("File not found", zap.String("path", path))
		return
	}
	log.Error("Error reading file", zap.String("path", path), zap.Error(err))
}

// ForStage returns the Source for a stage.
func ForStage(stage manifest.Stage) (Source, error) {
	switch stage {
	case manifest.Binning:
		return Binning{}, nil
	case manifest.Coverage:
		return Coverage{}, nil
	case manifest.GTDBTk:
		return GTDBTk{}, nil
	}
	return nil, fmt.Errorf("no loader for stage %q", stage)
}

// LoadStage loads one stage with its own Source; binning goes through
// LoadBinning so contig assignments and summaries are joined per sample.
func LoadStage(rows []manifest.Row, stage manifest.Stage, opt Options) (frame.Frame, error) {
	if stage == manifest.Binning {
		return LoadBinning(rows, opt), nil
	}
	src, err := ForStage(stage)
	if err != nil {
		return frame.Frame{}, err
	}
	return Load(rows, stage, src, opt), nil
}
