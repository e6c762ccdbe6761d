// core/thermo/nn.go
// Nearest-neighbor thermodynamics for synthetic oligo design.
// Units: ΔH in kcal/mol, ΔS in cal/(K·mol), Tm in °C, ΔG in kcal/mol.
//
// Steps (Tm):
//  1. Sum per-stack ΔH/ΔS over every dinucleotide plus terminal initiation
//     for the first and last base.
//  2. Salt correction to ΔS: ΔS += 0.368*(N−1)*ln([Na+ + K+]).
//  3. Two-state Tm (K): Tm = ΔH*1000 / (ΔS + R ln(CT/2)) − 273.15 (°C).
//
// The tables are package-private and only read through functions, so they
// are safe to share between goroutines.

package thermo

import (
	"math"
	"strings"

	"oligotile/core/oligo"
)

const (
	// Gas constant in cal/(K·mol).
	R = 1.987
	// Simplified hairpin loop initiation penalty (kcal/mol).
	HLoop = 5.6
	// 37 °C in Kelvin; all ΔG values are reported at this temperature.
	T37 = 273.15 + 37
)

// NNParams holds nearest-neighbor propagation parameters.
type NNParams struct {
	DH float64 // kcal/mol
	DS float64 // cal/(K·mol)
}

// Dinucleotide stacks, 5'→3' top strand. CC has no entry and contributes
// nothing.
var stackParams = map[string]NNParams{
	"AA": {-7.9, -22.2},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7},
	"GT": {-8.4, -22.4},
	"CT": {-7.8, -21.0},
	"GA": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9},
	"TT": {-7.9, -22.2},
	"TG": {-8.2, -22.2},
	"TC": {-7.8, -21.0},
	"AG": {-8.4, -22.4},
	"AC": {-8.5, -22.7},
}

// Terminal initiation, applied once for each end base.
var initParams = map[byte]NNParams{
	'A': {2.3, 4.1},
	'T': {2.3, 4.1},
	'G': {0.1, -2.8},
	'C': {0.1, -2.8},
}

// Conditions describes the solution a Tm is computed for.
type Conditions struct {
	NaMM    float64 // monovalent Na+, mM
	KMM     float64 // K+, mM
	OligoNM float64 // oligo strand concentration, nM
}

// DefaultConditions is 50 mM Na+, no K+, 250 nM oligo.
func DefaultConditions() Conditions {
	return Conditions{NaMM: 50, KMM: 0, OligoNM: 250}
}

// Stack returns the stacking parameters for the dinucleotide a→b.
// ok is false when either base is not A/C/G/T; a valid pair without a table
// entry returns zero parameters with ok=true.
func Stack(a, b byte) (NNParams, bool) {
	if !oligo.IsACGT(a) || !oligo.IsACGT(b) {
		return NNParams{}, false
	}
	return stackParams[string([]byte{a, b})], true
}

// Sum adds up ΔH/ΔS over all dinucleotides of seq (already uppercased)
// plus terminal initiation. Non-ACGT dinucleotides are skipped.
func Sum(seq string) (dh, ds float64) {
	n := len(seq)
	for i := 0; i+1 < n; i++ {
		if p, ok := Stack(seq[i], seq[i+1]); ok {
			dh += p.DH
			ds += p.DS
		}
	}
	if n > 0 {
		first, last := initParams[seq[0]], initParams[seq[n-1]]
		dh += first.DH + last.DH
		ds += first.DS + last.DS
	}
	return dh, ds
}

// DeltaG converts ΔH (kcal/mol) and ΔS (cal/K·mol) to ΔG (kcal/mol) at tK.
func DeltaG(dh, ds, tK float64) float64 {
	return dh - tK*ds/1000.0
}

// Tm returns the nearest-neighbor melting temperature of seq in °C.
// Sequences shorter than 2 bases and degenerate denominators yield 0,
// and the result is never negative.
func Tm(seq string, c Conditions) float64 {
	s := strings.ToUpper(seq)
	n := len(s)
	if n < 2 {
		return 0
	}
	salt := math.Max(1, c.NaMM+c.KMM)     // mM
	ct := math.Max(1e-12, c.OligoNM*1e-9) // mol/L

	dh, ds := Sum(s)
	dh *= 1000.0
	ds += 0.368 * float64(n-1) * math.Log(salt/1000.0)

	den := ds + R*math.Log(ct/2.0)
	if math.Abs(den) < 1e-10 {
		return 0
	}
	tmC := dh/den - 273.15
	if tmC < 0 {
		return 0
	}
	return tmC
}
