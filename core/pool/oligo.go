// Package pool holds the records that flow through a design batch: input
// fragments and the ordered oligo pool built from them.
package pool

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation of a tile relative to its fragment.
type Orientation int

const (
	Forward Orientation = iota // FF: forward tile
	Reverse                    // RC: reverse-complement tile
)

func (o Orientation) String() string {
	if o == Reverse {
		return "RC"
	}
	return "FF"
}

// Fragment is a named input sequence (uppercase, letters only).
type Fragment struct {
	Name string
	Seq  string
}

// Oligo is one designed oligo. Label and Fragment never change once the
// record is generated; later stages replace Sequence/Length/Invalid.
type Oligo struct {
	Label    string
	Sequence string
	Length   int
	Fragment string
	Invalid  bool
}

// Label builds "FF_<n>" / "RC_<n>".
func Label(o Orientation, ordinal int) string {
	return fmt.Sprintf("%s_%d", o, ordinal)
}

// ParseLabel splits a label into orientation and 1-based ordinal.
func ParseLabel(label string) (Orientation, int, bool) {
	prefix, num, ok := strings.Cut(label, "_")
	if !ok {
		return Forward, 0, false
	}
	var o Orientation
	switch prefix {
	case "FF":
		o = Forward
	case "RC":
		o = Reverse
	default:
		return Forward, 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return Forward, 0, false
	}
	return o, n, true
}

// New returns a freshly generated oligo.
func New(o Orientation, ordinal int, seq, fragment string) Oligo {
	return Oligo{
		Label:    Label(o, ordinal),
		Sequence: seq,
		Length:   len(seq),
		Fragment: fragment,
	}
}

// WithSequence returns a valid copy of o carrying seq.
func (o Oligo) WithSequence(seq string) Oligo {
	o.Sequence = seq
	o.Length = len(seq)
	o.Invalid = false
	return o
}

// MarkInvalid returns a copy of o flagged invalid; the sequence is kept.
func (o Oligo) MarkInvalid() Oligo {
	o.Invalid = true
	return o
}

// Orientation reports the tile orientation encoded in the label.
func (o Oligo) Orientation() Orientation {
	or, _, _ := ParseLabel(o.Label)
	return or
}

// IsIntendedPartner reports whether a and b are adjacent tiles designed to
// anneal: opposite orientation, same fragment, and FF_i pairs with RC_i or
// RC_{i-1} (RC_i pairs with FF_i or FF_{i+1}).
func IsIntendedPartner(a, b Oligo) bool {
	if a.Fragment != b.Fragment {
		return false
	}
	oa, i, okA := ParseLabel(a.Label)
	ob, j, okB := ParseLabel(b.Label)
	if !okA || !okB || oa == ob {
		return false
	}
	if oa == Forward {
		return j == i || j == i-1
	}
	return j == i || j == i+1
}
