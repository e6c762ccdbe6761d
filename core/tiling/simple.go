package tiling

import (
	"oligotile/core/oligo"
	"oligotile/core/pool"
)

// Simple cuts the fragment into consecutive forward chunks and bridges each
// junction with a reverse-complement oligo that overlaps both neighbours.
type Simple struct {
	OligoLength   int
	OverlapLength int
}

func (Simple) Name() string { return "simple" }

// Tile emits FF_1..FF_n, then RC_1..RC_m.
//
// The final forward chunk is dropped when shorter than the overlap. Bridge i
// starts at i·L + (L − overlap); a terminal bridge covers the tail from
// n·L − overlap. Bridges shorter than the overlap are discarded.
func (s Simple) Tile(frag pool.Fragment) (pool.Pool, error) {
	L, O := s.OligoLength, s.OverlapLength
	if err := checkLengths(L, O); err != nil {
		return nil, err
	}
	seq := frag.Seq
	if seq == "" {
		return nil, ErrEmptySequence
	}

	var fwd []string
	for pos := 0; pos < len(seq); pos += L {
		fwd = append(fwd, window(seq, pos, L))
	}
	if n := len(fwd); n > 0 && len(fwd[n-1]) < O {
		fwd = fwd[:n-1]
	}

	var rev []string
	for i := 0; i+1 < len(fwd); i++ {
		start := i*L + (L - O)
		rev = append(rev, oligo.RevComp(window(seq, start, L)))
	}
	if term := max(0, len(fwd)*L-O); term < len(seq) {
		rev = append(rev, oligo.RevComp(seq[term:]))
	}

	out := make(pool.Pool, 0, len(fwd)+len(rev))
	for i, f := range fwd {
		out = append(out, pool.New(pool.Forward, i+1, f, frag.Name))
	}
	n := 0
	for _, r := range rev {
		if len(r) < O {
			continue
		}
		n++
		out = append(out, pool.New(pool.Reverse, n, r, frag.Name))
	}
	return out, nil
}
