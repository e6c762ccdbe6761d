package tiling

import (
	"fmt"

	"oligotile/core/oligo"
	"oligotile/core/pool"
)

// Gapped places forward tiles every L+gap bases from 0 and, independently,
// reverse-complement tiles every L+gap bases from L − overlap. Tiles shorter
// than MinSynthLength are not emitted.
type Gapped struct {
	OligoLength   int
	OverlapLength int
	GapLength     int
}

func (Gapped) Name() string { return "gapped" }

func (g Gapped) Tile(frag pool.Fragment) (pool.Pool, error) {
	L, O, G := g.OligoLength, g.OverlapLength, g.GapLength
	if err := checkLengths(L, O); err != nil {
		return nil, err
	}
	if G <= 0 {
		return nil, fmt.Errorf("%w: gap length must be > 0 (got %d)", ErrInvalidParams, G)
	}
	seq := frag.Seq
	if seq == "" {
		return nil, ErrEmptySequence
	}
	step := L + G

	var out pool.Pool
	for start, idx := 0, 1; start < len(seq); start, idx = start+step, idx+1 {
		w := window(seq, start, L)
		if len(w) < MinSynthLength {
			continue
		}
		out = append(out, pool.New(pool.Forward, idx, w, frag.Name))
	}
	for start, idx := L-O, 1; start+L <= len(seq); start, idx = start+step, idx+1 {
		w := oligo.RevComp(seq[start : start+L])
		if len(w) < MinSynthLength {
			continue
		}
		out = append(out, pool.New(pool.Reverse, idx, w, frag.Name))
	}
	return out, nil
}
