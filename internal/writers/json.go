// internal/writers/json.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"oligotile/pkg/api"
)

func init() {
	RegisterBatch("json", func(w io.Writer, b api.BatchV1, _ Options) error { return encodePretty(w, b) })
	RegisterAnalysis("json", func(w io.Writer, rows []api.AnalysisV1, _ Options) error { return encodePretty(w, rows) })
	RegisterBatch("jsonl", func(w io.Writer, b api.BatchV1, _ Options) error { return writeJSONL(w, b.Oligos) })
	RegisterAnalysis("jsonl", func(w io.Writer, rows []api.AnalysisV1, _ Options) error { return writeJSONL(w, rows) })
	RegisterPrimers("json", func(w io.Writer, rows []api.PrimerPairV1, _ Options) error { return encodePretty(w, rows) })
	RegisterPrimers("jsonl", func(w io.Writer, rows []api.PrimerPairV1, _ Options) error { return writeJSONL(w, rows) })
}

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// 64 KiB buffered writers are pooled across JSONL writes.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// writeJSONL emits one compact JSON document per element.
func writeJSONL[T any](w io.Writer, items []T) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(w)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for _, v := range items {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return bw.Flush()
}
