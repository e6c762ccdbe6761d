package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"oligotile/core/pool"
	"oligotile/pkg/api"
)

func sampleBatch() api.BatchV1 {
	p := pool.Pool{
		pool.New(pool.Forward, 1, "ACGTACGG", "frag"),
		pool.New(pool.Reverse, 1, "TTGCA", "frag").MarkInvalid(),
	}
	return NewBatch("run-1", p, api.ParametersV1{Strategy: "simple", OligoLength: 8, OverlapLength: 4})
}

func TestNewBatch(t *testing.T) {
	b := sampleBatch()
	assert.Equal(t, 2, b.TotalCount)
	assert.Equal(t, 1, b.InvalidCount)
	assert.Equal(t, api.OligoV1{Label: "FF_1", Sequence: "ACGTACGG", Length: 8, Fragment: "frag"}, b.Oligos[0])
	assert.True(t, b.Oligos[1].Invalid)
}

func TestRegisteredFormats(t *testing.T) {
	assert.Equal(t, []string{"fasta", "json", "jsonl", "text", "yaml"}, BatchFormats())
	assert.Equal(t, []string{"json", "jsonl", "text", "yaml"}, AnalysisFormats())
	assert.Equal(t, []string{"fasta", "json", "jsonl", "text", "yaml"}, PrimerFormats())
}

func TestUnknownFormat(t *testing.T) {
	var b bytes.Buffer
	err := WriteBatch("csv", &b, sampleBatch(), Options{})
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	err = WriteAnalysis("fasta", &b, nil, Options{})
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	err = WritePrimers("csv", &b, nil, Options{})
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Zero(t, b.Len())
}

func TestText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteBatch("text", &b, sampleBatch(), Options{Header: true}))
	assert.Equal(t, OligoTSVHeader+"\n"+
		"FF_1\tfrag\t8\tfalse\tACGTACGG\n"+
		"RC_1\tfrag\t5\ttrue\tTTGCA\n", b.String())

	b.Reset()
	require.NoError(t, WriteBatch("text", &b, sampleBatch(), Options{Pretty: true}))
	assert.Equal(t,
		"FF_1\tfrag\t8\tfalse\tACGTACGG\n"+
			"# 5'-ACGTACGG-3'  gc=62.5%\n"+
			"RC_1\tfrag\t5\ttrue\tTTGCA\n"+
			"# 3'-ACGTT-5'  gc=40.0%  INVALID\n", b.String())
}

func TestJSONAndJSONL(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteBatch("json", &b, sampleBatch(), Options{}))
	var got api.BatchV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, sampleBatch(), got)
	assert.Contains(t, b.String(), `"total_count": 2`)

	b.Reset()
	require.NoError(t, WriteBatch("jsonl", &b, sampleBatch(), Options{}))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `{"label":"FF_1","sequence":"ACGTACGG","length":8,"fragment":"frag","invalid":false}`, lines[0])
}

func TestFASTA(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteBatch("fasta", &b, sampleBatch(), Options{}))
	assert.Equal(t,
		">FF_1 fragment=frag len=8 invalid=false\nACGTACGG\n"+
			">RC_1 fragment=frag len=5 invalid=true\nTTGCA\n", b.String())
}

func TestYAML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteBatch("yaml", &b, sampleBatch(), Options{}))
	var got api.BatchV1
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, sampleBatch(), got)
	assert.Contains(t, b.String(), "run_id: run-1")
}

func TestAnalysisText(t *testing.T) {
	rows := []api.AnalysisV1{{Name: "x", Length: 20, GC: 50, Tm: 56.1582, Hairpin: -4.2918, Duplex: -25.6992}}
	var b bytes.Buffer
	require.NoError(t, WriteAnalysis("text", &b, rows, Options{Header: true}))
	assert.Equal(t, AnalysisTSVHeader+"\nx\t20\t50.00\t56.16\t-4.29\t-25.70\tfalse\n", b.String())

	b.Reset()
	require.NoError(t, WriteAnalysis("jsonl", &b, rows, Options{}))
	assert.Contains(t, b.String(), `"hairpin_dg":-4.2918`)
	assert.NotContains(t, b.String(), "reverse_complement")

	rows[0].ReverseComplement = "ACGT"
	b.Reset()
	require.NoError(t, WriteAnalysis("json", &b, rows, Options{}))
	assert.Contains(t, b.String(), `"reverse_complement": "ACGT"`)
}

func samplePrimers() []api.PrimerPairV1 {
	return []api.PrimerPairV1{{
		Name:            "frag",
		Forward:         "ACGTACGTACGTACGTACGT",
		Reverse:         "TTTTTTTTTT",
		ForwardTm:       60,
		ReverseTm:       20,
		ForwardGC:       50,
		ReverseGC:       0,
		ReverseFallback: true,
	}}
}

func TestPrimersText(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WritePrimers("text", &b, samplePrimers(), Options{Header: true}))
	assert.Equal(t, PrimerTSVHeader+"\n"+
		"frag\tACGTACGTACGTACGTACGT\t60\t50.0\tTTTTTTTTTT*\t20\t0.0\n", b.String())
}

func TestPrimersFASTA(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WritePrimers("fasta", &b, samplePrimers(), Options{}))
	assert.Equal(t,
		">frag_F tm=60 fallback=false\nACGTACGTACGTACGTACGT\n"+
			">frag_R tm=20 fallback=true\nTTTTTTTTTT\n", b.String())
}

func TestPrimersStructured(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WritePrimers("json", &b, samplePrimers(), Options{}))
	var got []api.PrimerPairV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, samplePrimers(), got)
	assert.NotContains(t, b.String(), "forward_fallback")

	b.Reset()
	require.NoError(t, WritePrimers("yaml", &b, samplePrimers(), Options{}))
	got = nil
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, samplePrimers(), got)

	b.Reset()
	require.NoError(t, WritePrimers("jsonl", &b, samplePrimers(), Options{}))
	assert.Contains(t, b.String(), `"forward_primer":"ACGTACGTACGTACGTACGT"`)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
