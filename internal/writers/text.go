// internal/writers/text.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"oligotile/core/oligo"
	"oligotile/core/pool"
	"oligotile/pkg/api"
)

// Canonical header rows for the TSV outputs.
const (
	OligoTSVHeader    = "label\tfragment\tlength\tinvalid\tsequence"
	AnalysisTSVHeader = "name\tlength\tgc\ttm\thairpin_dg\tduplex_dg\tacceptable"
	PrimerTSVHeader   = "name\tforward_primer\tforward_tm\tforward_gc\treverse_primer\treverse_tm\treverse_gc"
)

const prettyPrefix = "# "

func init() {
	RegisterBatch("text", writeBatchText)
	RegisterAnalysis("text", writeAnalysisText)
	RegisterPrimers("text", writePrimersText)
}

func writeBatchText(w io.Writer, b api.BatchV1, opt Options) error {
	bw := bufio.NewWriter(w)
	if opt.Header {
		if _, err := fmt.Fprintln(bw, OligoTSVHeader); err != nil {
			return err
		}
	}
	for _, o := range b.Oligos {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\t%t\t%s\n",
			o.Label, o.Fragment, o.Length, o.Invalid, o.Sequence); err != nil {
			return err
		}
		if opt.Pretty {
			if _, err := bw.WriteString(RenderOligo(o)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// RenderOligo draws the oligo on the strand it anneals to: forward tiles
// 5'→3', reverse tiles 3'→5' so both read along the fragment.
func RenderOligo(o api.OligoV1) string {
	var sb strings.Builder
	sb.WriteString(prettyPrefix)
	orient, _, _ := pool.ParseLabel(o.Label)
	if orient == pool.Reverse {
		sb.WriteString("3'-")
		sb.WriteString(reverse(o.Sequence))
		sb.WriteString("-5'")
	} else {
		sb.WriteString("5'-")
		sb.WriteString(o.Sequence)
		sb.WriteString("-3'")
	}
	fmt.Fprintf(&sb, "  gc=%.1f%%", oligo.GCContent(o.Sequence))
	if o.Invalid {
		sb.WriteString("  INVALID")
	}
	sb.WriteByte('\n')
	return sb.String()
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

func writeAnalysisText(w io.Writer, rows []api.AnalysisV1, opt Options) error {
	bw := bufio.NewWriter(w)
	if opt.Header {
		if _, err := fmt.Fprintln(bw, AnalysisTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%t\n",
			r.Name, r.Length, r.GC, r.Tm, r.Hairpin, r.Duplex, r.Acceptable); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writePrimersText marks a fallback primer with a trailing '*'.
func writePrimersText(w io.Writer, rows []api.PrimerPairV1, opt Options) error {
	bw := bufio.NewWriter(w)
	if opt.Header {
		if _, err := fmt.Fprintln(bw, PrimerTSVHeader); err != nil {
			return err
		}
	}
	mark := func(seq string, fallback bool) string {
		if fallback {
			return seq + "*"
		}
		return seq
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%.0f\t%.1f\t%s\t%.0f\t%.1f\n",
			r.Name, mark(r.Forward, r.ForwardFallback), r.ForwardTm, r.ForwardGC,
			mark(r.Reverse, r.ReverseFallback), r.ReverseTm, r.ReverseGC); err != nil {
			return err
		}
	}
	return bw.Flush()
}
