// Package tiling cuts fragments into ordered forward and reverse-complement
// oligo tiles. Label ordinals follow generation order; downstream stages
// derive intended partners from them, so tiles are never re-sorted.
package tiling

import (
	"errors"
	"fmt"
	"strings"

	"oligotile/core/pool"
)

// MinSynthLength is the shortest oligo the gapped strategy keeps.
const MinSynthLength = 20

var (
	ErrInvalidParams = errors.New("tiling: invalid parameters")
	ErrNoFragments   = errors.New("tiling: no fragments")
	ErrEmptySequence = errors.New("tiling: empty sequence")
)

// Strategy tiles a single fragment.
type Strategy interface {
	Name() string
	Tile(frag pool.Fragment) (pool.Pool, error)
}

// Params are the knobs shared by both strategies.
type Params struct {
	OligoLength   int
	OverlapLength int
	GapLength     int // gapped only
}

// ByName returns the strategy called name ("simple" or "gapped").
func ByName(name string, p Params) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simple", "":
		return Simple{OligoLength: p.OligoLength, OverlapLength: p.OverlapLength}, nil
	case "gapped":
		return Gapped{OligoLength: p.OligoLength, OverlapLength: p.OverlapLength, GapLength: p.GapLength}, nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q (want simple|gapped)", ErrInvalidParams, name)
	}
}

// Generate tiles every fragment with s and concatenates the results in
// fragment order.
func Generate(frags []pool.Fragment, s Strategy) (pool.Pool, error) {
	if len(frags) == 0 {
		return nil, ErrNoFragments
	}
	var out pool.Pool
	for _, f := range frags {
		tiles, err := s.Tile(f)
		if err != nil {
			return nil, fmt.Errorf("fragment %q: %w", f.Name, err)
		}
		out = append(out, tiles...)
	}
	return out, nil
}

func checkLengths(oligoLen, overlap int) error {
	if oligoLen <= 0 {
		return fmt.Errorf("%w: oligo length must be > 0 (got %d)", ErrInvalidParams, oligoLen)
	}
	if overlap <= 0 {
		return fmt.Errorf("%w: overlap length must be > 0 (got %d)", ErrInvalidParams, overlap)
	}
	if overlap > oligoLen {
		return fmt.Errorf("%w: overlap length %d exceeds oligo length %d", ErrInvalidParams, overlap, oligoLen)
	}
	return nil
}

func window(seq string, start, width int) string {
	end := min(start+width, len(seq))
	return seq[start:end]
}
