// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"oligotile/pkg/api"
)

// ErrUnknownFormat is returned for formats nothing registered.
var ErrUnknownFormat = errors.New("unknown output format")

// Options tune the text renderers; other formats ignore them.
type Options struct {
	Header bool
	Pretty bool
}

// BatchFunc renders one design batch.
type BatchFunc func(w io.Writer, b api.BatchV1, opt Options) error

// AnalysisFunc renders an analysis report.
type AnalysisFunc func(w io.Writer, rows []api.AnalysisV1, opt Options) error

// PrimerFunc renders a primers report.
type PrimerFunc func(w io.Writer, rows []api.PrimerPairV1, opt Options) error

// Format registries (last registration wins).
var (
	batchWriters    = map[string]BatchFunc{}
	analysisWriters = map[string]AnalysisFunc{}
	primerWriters   = map[string]PrimerFunc{}
)

func RegisterBatch(format string, fn BatchFunc)       { batchWriters[format] = fn }
func RegisterAnalysis(format string, fn AnalysisFunc) { analysisWriters[format] = fn }
func RegisterPrimers(format string, fn PrimerFunc)    { primerWriters[format] = fn }

// WriteBatch dispatches on format.
func WriteBatch(format string, w io.Writer, b api.BatchV1, opt Options) error {
	fn, ok := batchWriters[format]
	if !ok {
		return fmt.Errorf("%w %q for oligos (have %v)", ErrUnknownFormat, format, BatchFormats())
	}
	return fn(w, b, opt)
}

// WriteAnalysis dispatches on format.
func WriteAnalysis(format string, w io.Writer, rows []api.AnalysisV1, opt Options) error {
	fn, ok := analysisWriters[format]
	if !ok {
		return fmt.Errorf("%w %q for analysis (have %v)", ErrUnknownFormat, format, AnalysisFormats())
	}
	return fn(w, rows, opt)
}

// WritePrimers dispatches on format.
func WritePrimers(format string, w io.Writer, rows []api.PrimerPairV1, opt Options) error {
	fn, ok := primerWriters[format]
	if !ok {
		return fmt.Errorf("%w %q for primers (have %v)", ErrUnknownFormat, format, PrimerFormats())
	}
	return fn(w, rows, opt)
}

// BatchFormats lists registered batch formats, sorted.
func BatchFormats() []string { return keys(batchWriters) }

// AnalysisFormats lists registered analysis formats, sorted.
func AnalysisFormats() []string { return keys(analysisWriters) }

// PrimerFormats lists registered primer formats, sorted.
func PrimerFormats() []string { return keys(primerWriters) }

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
