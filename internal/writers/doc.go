// Package writers turns design batches and analysis reports into
// serialized outputs.
//
// Writers own all presentation knowledge (TSV, pretty blocks, JSON, JSONL,
// FASTA, YAML). Everything structured goes through pkg/api (v1) for a
// stable wire format. Formats register themselves in init blocks.
package writers
