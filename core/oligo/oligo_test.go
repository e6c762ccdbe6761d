package oligo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevCompSimple(t *testing.T) {
	if got := RevComp("AGTC"); got != "GACT" {
		t.Errorf("RevComp(AGTC) = %s, want GACT", got)
	}
}

func TestRevCompAmbiguous(t *testing.T) {
	in := "RYSWKMBDHVN"
	want := "NBDHVKMWSRY"
	if got := RevComp(in); got != want {
		t.Errorf("RevComp(%s) = %s, want %s", in, got, want)
	}
}

func TestRevCompPassThrough(t *testing.T) {
	assert.Equal(t, "T-A", RevComp("T-A"))
	assert.Equal(t, "xT", RevComp("Ax"))
	assert.Equal(t, "", RevComp(""))
}

func TestRevCompInvolution(t *testing.T) {
	seqs := []string{
		"A", "ACGT", "GATTACA", "RYSWKMBDHVN",
		strings.Repeat("ACGTN", 13),
		"ATGCGATCGTAGCTAGCTAGCGATCGATCG",
	}
	for _, s := range seqs {
		assert.Equal(t, s, RevComp(RevComp(s)), "rc(rc(%s))", s)
	}
}

func TestGCContent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"GCGC", 100},
		{"ATAT", 0},
		{"", 0},
		{"ACGT", 50},
		{"acgt", 50},
		{"GNNN", 25},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.InDelta(t, c.want, GCContent(c.in), 1e-9)
		})
	}
}

func TestCheckIUPAC(t *testing.T) {
	assert.NoError(t, CheckIUPAC("ACGTRYSWKMBDHVN"))
	assert.Error(t, CheckIUPAC(""))

	err := CheckIUPAC("ACGX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at 4")
	assert.Error(t, CheckIUPAC("acgt"), "lowercase is not accepted")

	assert.True(t, IsIUPAC('N'))
	assert.False(t, IsIUPAC('U'))
}

func TestAmbiguous(t *testing.T) {
	assert.Equal(t, 0, Ambiguous("ACGT"))
	assert.Equal(t, 2, Ambiguous("ANGTR"))
	assert.Equal(t, 0, Ambiguous(""))
}

func TestHomopolymerRun(t *testing.T) {
	assert.Equal(t, 4, HomopolymerRun("AAAACGT", false))
	assert.Equal(t, 1, HomopolymerRun("AAAACGT", true))
	assert.Equal(t, 5, HomopolymerRun("ACGGGGG", true))
	assert.Equal(t, 3, HomopolymerRun("TTT", true))
	assert.Equal(t, 0, HomopolymerRun("", false))
}
