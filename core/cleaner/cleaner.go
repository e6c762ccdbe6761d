// Package cleaner trims oligo ends until neither terminal window can anneal
// somewhere it should not: inside the oligo itself or on any pool member
// other than its intended partners.
package cleaner

import (
	"strings"

	"oligotile/core/oligo"
	"oligotile/core/pool"
)

// Options control end scoring and the per-side trim budget.
type Options struct {
	EndLength      int     // terminal window scored at each end
	ScoreThreshold float64 // scores at or above this are conflicts
	TrimLimit      int     // max bases trimmed from each side
	MinRun         int     // terminal homopolymer runs this long get shortened
}

// DefaultOptions returns an 8-nt window, 0.75 threshold, 8-nt budget and
// 4-nt homopolymer runs.
func DefaultOptions() Options {
	return Options{EndLength: 8, ScoreThreshold: 0.75, TrimLimit: 8, MinRun: 4}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.EndLength <= 0 {
		o.EndLength = d.EndLength
	}
	if o.ScoreThreshold <= 0 {
		o.ScoreThreshold = d.ScoreThreshold
	}
	if o.TrimLimit < 0 {
		o.TrimLimit = d.TrimLimit
	}
	if o.MinRun < 2 {
		o.MinRun = d.MinRun
	}
	return o
}

// Clean processes p in emission order. Each accepted oligo is published to
// the working pool before the next one is scored, so later oligos are
// checked against already-trimmed neighbours. p itself is left untouched.
func Clean(p pool.Pool, opt Options) pool.Pool {
	opt = opt.withDefaults()
	out := p.Clone()
	for i := range out {
		out[i] = cleanOne(out, i, opt)
	}
	return out
}

func cleanOne(cur pool.Pool, i int, opt Options) pool.Oligo {
	orig := cur[i]
	seq := strings.ToUpper(orig.Sequence)
	others := cur.Others(i, true)

	e := opt.EndLength
	t5, t3 := 0, 0
	for len(seq) >= 2*e {
		s5 := worstScore(seq[:e], seq[e:], others)
		s3 := worstScore(seq[len(seq)-e:], seq[:len(seq)-e], others)
		c5 := s5 >= opt.ScoreThreshold
		c3 := s3 >= opt.ScoreThreshold
		if !c5 && !c3 {
			seq = trimRuns(seq, opt.MinRun, opt.TrimLimit-t5, opt.TrimLimit-t3)
			return orig.WithSequence(seq)
		}

		can5 := c5 && t5 < opt.TrimLimit
		can3 := c3 && t3 < opt.TrimLimit
		switch {
		case can3 && (!can5 || s3 >= s5):
			seq = seq[:len(seq)-1]
			t3++
		case can5:
			seq = seq[1:]
			t5++
		default:
			return orig.MarkInvalid()
		}
	}
	return orig.MarkInvalid()
}

// worstScore is the highest end-match score of end against its own interior
// and every sequence in others.
func worstScore(end, interior string, others []string) float64 {
	worst := ScoreEndMatch(end, interior)
	for _, o := range others {
		if worst >= 1 {
			break
		}
		if s := ScoreEndMatch(end, strings.ToUpper(o)); s > worst {
			worst = s
		}
	}
	return worst
}

// ScoreEndMatch slides the reverse complement of end along target and
// returns the worst alignment: 1 for a perfect match, 7/8 − w·p for a single
// mismatch (w = 1-based mismatch position / len(end), p = 1.0 when the
// mismatched end base is G/C and 0.5 otherwise), 0 for two or more.
func ScoreEndMatch(end, target string) float64 {
	n := len(end)
	if n == 0 || len(target) < n {
		return 0
	}
	rc := oligo.RevComp(end)
	worst := 0.0
	for i := 0; i+n <= len(target); i++ {
		w := target[i : i+n]
		mm, pos := 0, -1
		for p := 0; p < n; p++ {
			if rc[p] != w[p] {
				mm++
				pos = p + 1
				if mm > 1 {
					break
				}
			}
		}
		switch mm {
		case 0:
			return 1
		case 1:
			penalty := 0.5
			if b := rc[pos-1]; b == 'G' || b == 'C' {
				penalty = 1.0
			}
			if s := 7.0/8.0 - float64(pos)/float64(n)*penalty; s > worst {
				worst = s
			}
		}
	}
	return worst
}

// TrimHomopolymers shortens terminal runs of at least minRun identical
// bases so that one base of each run remains.
func TrimHomopolymers(seq string, minRun int) string {
	return trimRuns(seq, minRun, len(seq), len(seq))
}

// trimRuns is TrimHomopolymers with a per-side cap on removed bases.
func trimRuns(seq string, minRun, max5, max3 int) string {
	if r := oligo.HomopolymerRun(seq, false); r >= minRun && max5 > 0 {
		seq = seq[min(r-1, max5):]
	}
	if r := oligo.HomopolymerRun(seq, true); r >= minRun && max3 > 0 {
		seq = seq[:len(seq)-min(r-1, max3)]
	}
	return seq
}
