// core/primer/primer.go
// Amplification primers for a fragment, picked at its two ends.
//
// The forward primer is the shortest 5' prefix of the fragment whose Wallace
// Tm and GC% fall inside the windows; the reverse primer is the shortest
// prefix of the reverse complement that does. When no length qualifies the
// pick falls back to the FallbackLength bases at that end.
package primer

import (
	"strings"

	"oligotile/core/oligo"
)

// FallbackLength is the primer length used when no candidate qualifies.
const FallbackLength = 60

// Options bounds the primer search. Lengths are inclusive.
type Options struct {
	MinLength int
	MaxLength int
	GCMin     float64 // %
	GCMax     float64 // %
	TmMin     float64 // °C, Wallace rule
	TmMax     float64 // °C, Wallace rule
}

// DefaultOptions is 20..60 nt, GC 40..60 %, Tm 55..65 °C.
func DefaultOptions() Options {
	return Options{
		MinLength: 20,
		MaxLength: 60,
		GCMin:     40,
		GCMax:     60,
		TmMin:     55,
		TmMax:     65,
	}
}

// Pair is the primer pair for one fragment. The Fallback flags report an
// end where no candidate met the windows.
type Pair struct {
	Forward         string
	Reverse         string
	ForwardFallback bool
	ReverseFallback bool
}

// WallaceTm is the 2·(A+T) + 4·(G+C) rule of thumb, in °C. Other letters
// are ignored.
func WallaceTm(seq string) float64 {
	at, gc := 0, 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T', 'a', 't':
			at++
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(2*at + 4*gc)
}

// Qualifies reports whether seq meets both windows of opt.
func Qualifies(seq string, opt Options) bool {
	tm := WallaceTm(seq)
	if tm < opt.TmMin || tm > opt.TmMax {
		return false
	}
	gc := oligo.GCContent(seq)
	return gc >= opt.GCMin && gc <= opt.GCMax
}

// Design picks a primer pair for seq.
func Design(seq string, opt Options) Pair {
	s := strings.ToUpper(seq)
	rc := oligo.RevComp(s)

	var p Pair
	var ok bool
	if p.Forward, ok = firstQualifying(s, opt); !ok {
		p.Forward = s[:min(len(s), FallbackLength)]
		p.ForwardFallback = true
	}
	if p.Reverse, ok = firstQualifying(rc, opt); !ok {
		p.Reverse = oligo.RevComp(s[max(0, len(s)-FallbackLength):])
		p.ReverseFallback = true
	}
	return p
}

// firstQualifying scans prefixes of s from MinLength to MaxLength.
func firstQualifying(s string, opt Options) (string, bool) {
	for n := max(opt.MinLength, 1); n <= opt.MaxLength && n <= len(s); n++ {
		if c := s[:n]; Qualifies(c, opt) {
			return c, true
		}
	}
	return "", false
}
