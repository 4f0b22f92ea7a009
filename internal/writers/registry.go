// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"magmerge/internal/frame"
	"magmerge/internal/mag"
)

// Options are shared by every writer. Header only affects delimited formats.
type Options struct {
	Header bool
}

// MAGWriter serializes the final MAG table.
type MAGWriter func(w io.Writer, t mag.Table, opt Options) error

// FrameWriter serializes a raw stage frame.
type FrameWriter func(w io.Writer, f frame.Frame, opt Options) error

// Writer registries (format → handler). Registered from init() blocks in
// delimited.go, json.go and yaml.go.
var (
	MAGWriters   = map[string]MAGWriter{}
	FrameWriters = map[string]FrameWriter{}
)

// Register helpers (idempotent last-wins)
func RegisterMAG(format string, fn MAGWriter)     { MAGWriters[format] = fn }
func RegisterFrame(format string, fn FrameWriter) { FrameWriters[format] = fn }

// WriteMAG dispatches to the writer registered for format.
func WriteMAG(format string, w io.Writer, t mag.Table, opt Options) error {
	fn, ok := MAGWriters[format]
	if !ok {
		return fmt.Errorf("unknown mag format %q (no writer registered)", format)
	}
	return fn(w, t, opt)
}

// WriteFrame dispatches to the frame writer registered for format.
func WriteFrame(format string, w io.Writer, f frame.Frame, opt Options) error {
	fn, ok := FrameWriters[format]
	if !ok {
		return fmt.Errorf("unknown frame format %q (no writer registered)", format)
	}
	return fn(w, f, opt)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe, as
// when a downstream `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
