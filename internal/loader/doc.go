// Package loader turns manifest rows into one concatenated frame per stage.
//
// The only contract a stage implements is Source (PathsFor + Read). Load owns
// iteration, diagnostics and concatenation; a missing or unreadable file is
// logged and skipped, never fatal. Binning is the exception: each sample's
// contig2bin and summary files are outer-joined on bin before concatenation,
// see LoadBinning.
package loader
