// core/oligo/oligo.go
package oligo

// GCContent returns the G+C percentage of seq (0..100). Lowercase bases
// count; an empty sequence yields 0.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}
	return float64(gc) / float64(len(seq)) * 100
}

// HomopolymerRun returns the length of the run of identical bases at the
// 5' end (fromEnd=false) or the 3' end (fromEnd=true).
func HomopolymerRun(seq string, fromEnd bool) int {
	n := len(seq)
	if n == 0 {
		return 0
	}
	if !fromEnd {
		k := 1
		for k < n && seq[k] == seq[0] {
			k++
		}
		return k
	}
	k := 1
	for k < n && seq[n-1-k] == seq[n-1] {
		k++
	}
	return k
}
