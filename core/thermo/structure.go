// core/thermo/structure.go
package thermo

import (
	"math"
	"strings"

	"oligotile/core/oligo"
)

const minHairpinLen = 8

// HairpinDG estimates the most stable intramolecular fold of seq.
//
// Every split (i, j) pairs stem1 = seq[i:j] against stem2 = rc(seq[j:]) over
// the shorter of the two (≥4 nt); the unpaired stretch between the stem end
// and j is the loop (≥3 nt). A stack contributes when both of its positions
// pair. The loop adds HLoop + R·T·ln(loop). Returns the minimum ΔG or 0.
func HairpinDG(seq string) float64 {
	s := strings.ToUpper(seq)
	n := len(s)
	if n < minHairpinLen {
		return 0
	}
	rc := oligo.RevComp(s)
	best := 0.0
	for i := 0; i < n-4; i++ {
		for j := i + 4; j < n; j++ {
			stem1 := s[i:j]
			stem2 := rc[:n-j] // rc(seq[j:])
			stem := min(len(stem1), len(stem2))
			if stem < 4 {
				continue
			}
			loop := j - i - stem
			if loop < 3 {
				continue
			}
			dh, ds, stacks := 0.0, 0.0, 0
			for k := 0; k+1 < stem; k++ {
				if stem1[k] != stem2[k] || stem1[k+1] != stem2[k+1] {
					continue
				}
				p, ok := Stack(stem1[k], stem1[k+1])
				if !ok {
					continue
				}
				dh += p.DH
				ds += p.DS
				stacks++
			}
			if stacks == 0 {
				continue
			}
			dg := DeltaG(dh, ds, T37) + HLoop + R*T37*math.Log(float64(loop))/1000.0
			if dg < best {
				best = dg
			}
		}
	}
	return best
}

// DuplexDG is the self-duplex proxy: the Tm sums (with initiation) as ΔG at
// 37 °C, no loop term.
func DuplexDG(seq string) float64 {
	s := strings.ToUpper(seq)
	if s == "" {
		return 0
	}
	dh, ds := Sum(s)
	return DeltaG(dh, ds, T37)
}

// CrossDG returns the most favorable ΔG of target hybridizing with any of
// others. Each partner's reverse complement is slid across target at every
// offset d in [-(len(partner)-1), len(target)-1], where partner position k
// sits under target position k+d. An alignment scores the NN stacks of every
// aligned 2-base window that pairs, summed over the whole overlap without
// initiation terms. Returns the minimum over offsets and partners, or 0.
func CrossDG(others []string, target string) float64 {
	t := strings.ToUpper(target)
	if len(t) < 2 {
		return 0
	}
	best := 0.0
	for _, o := range others {
		if len(o) < 2 {
			continue
		}
		rc := oligo.RevComp(strings.ToUpper(o))
		for d := -(len(rc) - 1); d <= len(t)-1; d++ {
			if dg := alignedDG(t, rc, d); dg < best {
				best = dg
			}
		}
	}
	return best
}

// alignedDG scores one alignment of rc under t at offset d.
func alignedDG(t, rc string, d int) float64 {
	lo := max(0, d)
	hi := min(len(t), len(rc)+d)

	dh, ds, stacks := 0.0, 0.0, 0
	for j := lo; j+1 < hi; j++ {
		k := j - d
		if t[j] != rc[k] || t[j+1] != rc[k+1] {
			continue
		}
		p, ok := Stack(t[j], t[j+1])
		if !ok {
			continue
		}
		dh += p.DH
		ds += p.DS
		stacks++
	}
	if stacks == 0 {
		return 0
	}
	return DeltaG(dh, ds, T37)
}
