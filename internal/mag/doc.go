// Package mag builds the per-MAG table from the three stage frames
// (binning, coverage, GTDB-Tk). It never imports loader, writers, cli or app;
// keep it domain-only.
//
// External outputs must not depend on Record's shape; use pkg/api for the
// stable wire type.
package mag
