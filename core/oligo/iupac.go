package oligo

import "fmt"

// iupacDNA marks the uppercase IUPAC nucleotide codes.
var iupacDNA = func() (t [256]bool) {
	for _, c := range []byte("ACGTRYSWKMBDHVN") {
		t[c] = true
	}
	return t
}()

// IsACGT reports whether b is one of the four unambiguous bases.
func IsACGT(b byte) bool { return b == 'A' || b == 'C' || b == 'G' || b == 'T' }

// IsIUPAC reports whether b is an uppercase IUPAC nucleotide code.
func IsIUPAC(b byte) bool { return iupacDNA[b] }

// CheckIUPAC returns an error naming the first non-IUPAC character of an
// uppercase sequence (1-based), or nil.
func CheckIUPAC(seq string) error {
	if seq == "" {
		return fmt.Errorf("empty sequence")
	}
	for i := 0; i < len(seq); i++ {
		if !iupacDNA[seq[i]] {
			return fmt.Errorf("invalid base %q at %d; allowed: A C G T R Y S W K M B D H V N", seq[i], i+1)
		}
	}
	return nil
}

// Ambiguous counts positions that are not A/C/G/T.
func Ambiguous(seq string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		if !IsACGT(seq[i]) {
			n++
		}
	}
	return n
}
