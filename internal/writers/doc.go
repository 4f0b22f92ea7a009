// Package writers turns the MAG table and raw stage frames into serialized
// outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV/CSV/JSON/JSONL/YAML).
//   • mag stays domain-only; loader stays I/O-only.
//   • JSON/JSONL/YAML of MAG rows go through pkg/api (v1) for a stable wire format.
package writers
