// internal/writers/fasta.go
package writers

import (
	"bufio"
	"fmt"
	"io"

	"oligotile/pkg/api"
)

func init() {
	RegisterBatch("fasta", writeBatchFASTA)
	RegisterPrimers("fasta", writePrimersFASTA)
}

// writeBatchFASTA writes one record per oligo; the header carries the
// fragment, length and validity.
func writeBatchFASTA(w io.Writer, b api.BatchV1, _ Options) error {
	bw := bufio.NewWriter(w)
	for _, o := range b.Oligos {
		if o.Sequence == "" {
			continue
		}
		if _, err := fmt.Fprintf(bw, ">%s fragment=%s len=%d invalid=%t\n%s\n",
			o.Label, o.Fragment, o.Length, o.Invalid, o.Sequence); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writePrimersFASTA writes <name>_F and <name>_R records per pair.
func writePrimersFASTA(w io.Writer, rows []api.PrimerPairV1, _ Options) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, ">%s_F tm=%.0f fallback=%t\n%s\n>%s_R tm=%.0f fallback=%t\n%s\n",
			r.Name, r.ForwardTm, r.ForwardFallback, r.Forward,
			r.Name, r.ReverseTm, r.ReverseFallback, r.Reverse); err != nil {
			return err
		}
	}
	return bw.Flush()
}
