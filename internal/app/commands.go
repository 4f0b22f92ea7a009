// internal/app/commands.go
package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"magmerge/internal/frame"
	"magmerge/internal/loader"
	"magmerge/internal/mag"
	"magmerge/internal/manifest"
	"magmerge/internal/taxonomy"
	"magmerge/internal/version"
	"magmerge/internal/writers"
)

func newMergeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Load every stage from the manifest and write the MAG table",
		Args:  cobra.NoArgs,
		RunE:  func(*cobra.Command, []string) error { return s.merge() },
	}
}

func newLoadCmd(s *session) *cobra.Command {
	valid := make([]string, len(manifest.Stages))
	for i, st := range manifest.Stages {
		valid[i] = string(st)
	}
	return &cobra.Command{
		Use:       "load STAGE",
		Short:     "Load one stage (BINNING | COVERAGE | GTDBTK) and write the raw table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: valid,
		RunE: func(_ *cobra.Command, args []string) error {
			stage, err := manifest.ParseStage(strings.ToUpper(args[0]))
			if err != nil {
				return usageError(err)
			}
			return s.loadOne(stage)
		},
	}
}

func newTaxonomyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy CLASSIFICATION...",
		Short: "Split GTDB classification strings into ranks",
		Example: `  magmerge taxonomy 'd__Bacteria;p__Firmicutes;c__Bacilli'
  magmerge taxonomy -f json 'd__Archaea;p__Thermoproteota'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error { return s.taxonomy(args) },
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "magmerge version %s\n", version.Version)
			return err
		},
	}
}

func (s *session) manifest() ([]manifest.Row, error) {
	if s.cfg.Manifest == "" {
		return nil, usageError(errors.New("--manifest is required"))
	}
	rows, err := manifest.Load(s.cfg.Manifest)
	if err != nil {
		return nil, usageError(err)
	}
	s.log.Debug("manifest loaded", zap.String("path", s.cfg.Manifest), zap.Int("rows", len(rows)))
	return rows, nil
}

func (s *session) loaderOptions() loader.Options {
	opt := loader.Options{Logger: s.log}
	if s.cfg.PrintPaths {
		opt.Progress = s.stderr
	}
	return opt
}

func (s *session) merge() error {
	rows, err := s.manifest()
	if err != nil {
		return err
	}
	opt := s.loaderOptions()
	frames := make(map[manifest.Stage]frame.Frame, len(manifest.Stages))
	for _, st := range manifest.Stages {
		f, err := loader.LoadStage(rows, st, opt)
		if err != nil {
			return runError(err)
		}
		frames[st] = f
	}

	recs, rep, err := mag.Build(frames[manifest.GTDBTk], frames[manifest.Coverage], frames[manifest.Binning],
		mag.WithLogger(s.log))
	if err != nil {
		return runError(err)
	}
	s.log.Debug("merge finished", zap.Int("records", rep.After), zap.Int("dropped", rep.Dropped))

	if err := s.write(func(w io.Writer) error {
		return writers.WriteMAG(s.cfg.Format, w, recs, s.writerOptions())
	}); err != nil {
		return err
	}
	if len(recs) == 0 {
		s.code = s.cfg.EmptyExitCode
	}
	return nil
}

func (s *session) loadOne(stage manifest.Stage) error {
	rows, err := s.manifest()
	if err != nil {
		return err
	}
	f, err := loader.LoadStage(rows, stage, s.loaderOptions())
	if err != nil {
		return runError(err)
	}
	if err := s.write(func(w io.Writer) error {
		return writers.WriteFrame(s.cfg.Format, w, f, s.writerOptions())
	}); err != nil {
		return err
	}
	if f.Len() == 0 {
		s.code = s.cfg.EmptyExitCode
	}
	return nil
}

// taxonomy writes one row per classification: the input string followed by
// the seven ranks, null where the rank is absent.
func (s *session) taxonomy(classifications []string) error {
	f := frame.New(append([]string{"classification"}, taxonomy.RankNames[:]...)...)
	for _, c := range classifications {
		cells := []frame.Cell{frame.Str(c)}
		for _, v := range taxonomy.ParseString(c).Values() {
			if v == nil {
				cells = append(cells, frame.Null)
			} else {
				cells = append(cells, frame.Str(*v))
			}
		}
		f.Append(cells...)
	}
	return s.write(func(w io.Writer) error {
		return writers.WriteFrame(s.cfg.Format, w, f, s.writerOptions())
	})
}
