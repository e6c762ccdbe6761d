// Package optimizer trims oligos into thermodynamic acceptance windows with
// a bounded search over left/right end trims.
package optimizer

import (
	"golang.org/x/sync/errgroup"

	"oligotile/core/oligo"
	"oligotile/core/pool"
	"oligotile/core/thermo"
)

// Options hold the search bounds and the acceptance windows.
type Options struct {
	Conditions thermo.Conditions

	MaxTrim   int // per side
	MinLength int

	GCMin, GCMax float64 // %
	TmMin, TmMax float64 // °C
	HairpinMin   float64 // kcal/mol, hairpin ΔG must be >= this
	DuplexMax    float64 // kcal/mol, duplex ΔG must be <= this
	CrossMin     float64 // kcal/mol, cross ΔG must be >= this

	// Workers > 1 scores the left-trim rows of one oligo concurrently.
	Workers int
}

// DefaultOptions are the toolkit's standard design targets.
func DefaultOptions() Options {
	return Options{
		Conditions: thermo.DefaultConditions(),
		MaxTrim:    10,
		MinLength:  20,
		GCMin:      25,
		GCMax:      75,
		TmMin:      50,
		TmMax:      75,
		HairpinMin: -3,
		DuplexMax:  -20,
		CrossMin:   -5,
		Workers:    1,
	}
}

// Report is the full evaluation of one candidate sequence.
type Report struct {
	Sequence string  `json:"sequence"`
	GC       float64 `json:"gc"`
	Tm       float64 `json:"tm"`
	Hairpin  float64 `json:"hairpin_dg"`
	Duplex   float64 `json:"duplex_dg"`
	Cross    float64 `json:"cross_dg"`

	GCOK      bool `json:"gc_ok"`
	TmOK      bool `json:"tm_ok"`
	HairpinOK bool `json:"hairpin_ok"`
	DuplexOK  bool `json:"duplex_ok"`
	CrossOK   bool `json:"cross_ok"`
}

// Acceptable reports whether all five predicates hold.
func (r Report) Acceptable() bool {
	return r.GCOK && r.TmOK && r.HairpinOK && r.DuplexOK && r.CrossOK
}

// Evaluate scores seq against the acceptance windows; others are the pool
// members it must not cross-hybridize with.
func Evaluate(seq string, others []string, opt Options) Report {
	r := Report{
		Sequence: seq,
		GC:       oligo.GCContent(seq),
		Tm:       thermo.Tm(seq, opt.Conditions),
		Hairpin:  thermo.HairpinDG(seq),
		Duplex:   thermo.DuplexDG(seq),
		Cross:    thermo.CrossDG(others, seq),
	}
	r.GCOK = r.GC >= opt.GCMin && r.GC <= opt.GCMax
	r.TmOK = r.Tm >= opt.TmMin && r.Tm <= opt.TmMax
	r.HairpinOK = r.Hairpin >= opt.HairpinMin
	r.DuplexOK = r.Duplex <= opt.DuplexMax
	r.CrossOK = r.Cross >= opt.CrossMin
	return r
}

// acceptable short-circuits Evaluate, cheapest predicates first.
func acceptable(seq string, others []string, opt Options) bool {
	if gc := oligo.GCContent(seq); gc < opt.GCMin || gc > opt.GCMax {
		return false
	}
	if tm := thermo.Tm(seq, opt.Conditions); tm < opt.TmMin || tm > opt.TmMax {
		return false
	}
	if thermo.DuplexDG(seq) > opt.DuplexMax {
		return false
	}
	if thermo.HairpinDG(seq) < opt.HairpinMin {
		return false
	}
	return thermo.CrossDG(others, seq) >= opt.CrossMin
}

// Optimize processes p in emission order and returns the updated pool.
// Oligos already flagged invalid are passed through. Each result is
// published before the next oligo is scored.
func Optimize(p pool.Pool, opt Options) pool.Pool {
	out := p.Clone()
	for i := range out {
		if out[i].Invalid {
			continue
		}
		out[i] = optimizeOne(out, i, opt)
	}
	return out
}

func optimizeOne(cur pool.Pool, i int, opt Options) pool.Oligo {
	o := cur[i]
	others := cur.Others(i, true)
	if cand, ok := Search(o.Sequence, others, opt); ok {
		return o.WithSequence(cand)
	}
	return o.MarkInvalid()
}

// Search returns the first acceptable trim of seq, scanning leftTrim in
// [0, MaxTrim] and, within each, rightTrim in [0, MaxTrim]. Trims leaving
// fewer than MinLength bases are skipped.
func Search(seq string, others []string, opt Options) (string, bool) {
	if opt.Workers <= 1 {
		for left := 0; left <= opt.MaxTrim; left++ {
			if right := firstRight(seq, left, others, opt); right >= 0 {
				return seq[left : len(seq)-right], true
			}
		}
		return "", false
	}

	rows := make([]int, opt.MaxTrim+1)
	var g errgroup.Group
	g.SetLimit(opt.Workers)
	for left := range rows {
		left := left
		g.Go(func() error {
			rows[left] = firstRight(seq, left, others, opt)
			return nil
		})
	}
	_ = g.Wait()
	for left, right := range rows {
		if right >= 0 {
			return seq[left : len(seq)-right], true
		}
	}
	return "", false
}

// firstRight returns the smallest passing right trim for a given left trim,
// or -1.
func firstRight(seq string, left int, others []string, opt Options) int {
	for right := 0; right <= opt.MaxTrim; right++ {
		if n := len(seq) - left - right; n < 1 || n < opt.MinLength {
			continue
		}
		if acceptable(seq[left:len(seq)-right], others, opt) {
			return right
		}
	}
	return -1
}
