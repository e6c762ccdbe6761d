// core/oligo/rc.go
package oligo

var complement [256]byte

func init() {
	pairs := []string{"AT", "CG", "GC", "TA", "RY", "YR", "SS", "WW", "KM", "MK", "BV", "VB", "DH", "HD", "NN"}
	for _, p := range pairs {
		complement[p[0]] = p[1]
	}
}

// Comp returns the IUPAC complement of b, or b itself when it has none.
func Comp(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return b
}

// RevComp returns the reverse-complement of an IUPAC sequence.
// Characters outside the IUPAC alphabet are carried over as-is, so
// RevComp(RevComp(s)) == s for any input.
func RevComp(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Comp(seq[n-1-i])
	}
	return string(out)
}
