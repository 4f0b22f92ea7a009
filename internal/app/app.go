// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"magmerge/internal/cli"
	"magmerge/internal/config"
	"magmerge/internal/logging"
	"magmerge/internal/version"
	"magmerge/internal/writers"
)

// Exit codes.
const (
	exitOK    = 0
	exitUsage = 2
	exitRun   = 3
)

// exitError carries the exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error { return &exitError{code: exitUsage, err: err} }
func runError(err error) error   { return &exitError{code: exitRun, err: err} }

// session is the state shared by the commands of one invocation.
type session struct {
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	log    *zap.Logger
	code   int // exit code of a successful run
}

// Run executes magmerge with argv and returns the process exit code:
// 0 ok, 2 usage or configuration error, 3 I/O or merge failure. A closed
// stdout (e.g. piping into head) is not an error.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	s := &session{stdout: outw, stderr: stderr, log: zap.NewNop()}

	root := newRootCmd(s)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.Execute()
	if ferr := outw.Flush(); ferr != nil && err == nil {
		err = runError(ferr)
	}
	switch {
	case err == nil:
		return s.code
	case writers.IsBrokenPipe(err):
		return exitOK
	}

	_, _ = fmt.Fprintln(stderr, "magmerge:", err)
	var ee *exitError
	if errors.As(err, &ee) && ee.code != exitUsage {
		return ee.code
	}
	_, _ = fmt.Fprintln(stderr, "Run 'magmerge --help' for usage.")
	return exitUsage
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "magmerge",
		Short:         "Merge binning, coverage and GTDB-Tk outputs into one MAG table",
		Long:          cli.Banner("magmerge"),
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = s.log.Sync()
		},
	}
	cli.Register(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError(err) })
	root.AddCommand(
		newMergeCmd(s),
		newLoadCmd(s),
		newTaxonomyCmd(s),
		newVersionCmd(),
	)
	return root
}

// setup resolves configuration and builds the run logger.
func (s *session) setup(cmd *cobra.Command) error {
	v := config.NewViper()
	if err := config.BindFlags(v, cmd.Flags(), cli.FlagConfig); err != nil {
		return usageError(err)
	}
	file, _ := cmd.Flags().GetString(cli.FlagConfig)
	cfg, err := config.Load(v, file)
	if err != nil {
		return usageError(err)
	}
	log, err := logging.New(s.stderr, cfg.Logging())
	if err != nil {
		return usageError(err)
	}
	s.cfg = cfg
	s.log = log
	return nil
}

// write opens the configured output, runs fn against it and closes it.
func (s *session) write(fn func(io.Writer) error) error {
	if s.cfg.Out == config.DefaultOut {
		if err := fn(s.stdout); err != nil {
			return runError(err)
		}
		return nil
	}
	f, err := os.Create(s.cfg.Out)
	if err != nil {
		return runError(err)
	}
	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		_ = f.Close()
		return runError(err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return runError(err)
	}
	if err := f.Close(); err != nil {
		return runError(err)
	}
	return nil
}

func (s *session) writerOptions() writers.Options {
	return writers.Options{Header: !s.cfg.NoHeader}
}
