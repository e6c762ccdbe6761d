package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oligotile/core/pool"
)

const multi = `>frag A
acgt ACGT
nn-12

>
GGCC
>empty

>last
TTAA
`

func TestParse_Multi(t *testing.T) {
	got, err := ParseString(multi, "")
	require.NoError(t, err)
	assert.Equal(t, []pool.Fragment{
		{Name: "frag A", Seq: "ACGTACGTNN"},
		{Name: "fragment2", Seq: "GGCC"},
		{Name: "last", Seq: "TTAA"},
	}, got)
}

func TestParse_Raw(t *testing.T) {
	tests := []struct {
		name, in, raw string
		want          pool.Fragment
	}{
		{"default name", "acgt\n  gg cc\n", "", pool.Fragment{Name: DefaultRawName, Seq: "ACGTGGCC"}},
		{"caller name", "ACGT", "insert", pool.Fragment{Name: "insert", Seq: "ACGT"}},
		{"later header is text", "\n\nAC\n>GT\n", "", pool.Fragment{Name: DefaultRawName, Seq: "ACGT"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.in, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, []pool.Fragment{tt.want}, got)
		})
	}
}

func TestParse_NoRecords(t *testing.T) {
	for _, in := range []string{"", "   \n\n", ">a\n>b\n", "123 --"} {
		_, err := ParseString(in, "")
		assert.True(t, errors.Is(err, ErrNoRecords), "%q: %v", in, err)
	}
}

func TestParse_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Parse(ctx, strings.NewReader(multi), "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadPath_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(multi))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	got, err := ReadPath(context.Background(), path, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestReadPath_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("ACGTACGT\n"), 0o644))
	got, err := ReadPath(context.Background(), path, "x")
	require.NoError(t, err)
	assert.Equal(t, []pool.Fragment{{Name: "x", Seq: "ACGTACGT"}}, got)
}

func TestReadPath_Errors(t *testing.T) {
	_, err := ReadPath(context.Background(), filepath.Join(t.TempDir(), "missing.fa"), "")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.fa")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, err = ReadPath(context.Background(), path, "")
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestReadPath_Stdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, ">s\nACGT\n")
		_ = w.Close()
	}()
	got, err := ReadPath(context.Background(), "-", "")
	require.NoError(t, err)
	assert.Equal(t, []pool.Fragment{{Name: "s", Seq: "ACGT"}}, got)
}
