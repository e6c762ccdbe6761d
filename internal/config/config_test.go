package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oligotile/core/primer"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c)
	assert.Equal(t, 60, c.OligoLength)
	assert.Equal(t, 30, c.OverlapLength)
	assert.Equal(t, 20, c.GapLength)
	assert.Equal(t, 50.0, c.Na)
	assert.Equal(t, 0.0, c.K)
	assert.Equal(t, 250.0, c.OligoConc)
	assert.Equal(t, 0.75, c.ScoreThreshold)
	assert.Equal(t, 8, c.TrimLimit)
	assert.Equal(t, 8, c.EndLength)
	assert.Equal(t, 10, c.MaxTrim)
	assert.Equal(t, 20, c.MinLength)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "oligotile.yaml")
	require.NoError(t, os.WriteFile(file, []byte("oligo-length: 80\noverlap-length: 40\nstrategy: gapped\nna: 100\n"), 0o644))
	t.Setenv("OLIGOTILE_OVERLAP_LENGTH", "35")

	v := NewViper()
	fs := pflag.NewFlagSet("t", pflag.ContinueOnError)
	fs.Float64("na", 50, "")
	require.NoError(t, v.BindPFlags(fs))
	require.NoError(t, fs.Parse([]string{"--na", "75"}))

	c, err := Load(v, file)
	require.NoError(t, err)
	assert.Equal(t, 80, c.OligoLength, "file beats default")
	assert.Equal(t, 35, c.OverlapLength, "env beats file")
	assert.Equal(t, 75.0, c.Na, "flag beats file")
	assert.Equal(t, "gapped", c.Strategy)
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"strategy", func(c *Config) { c.Strategy = "random" }},
		{"oligo-length", func(c *Config) { c.OligoLength = 0 }},
		{"overlap-length", func(c *Config) { c.OverlapLength = 61 }},
		{"gap-length", func(c *Config) { c.Strategy = "gapped"; c.GapLength = 0 }},
		{"na/k", func(c *Config) { c.K = -1 }},
		{"oligo-conc", func(c *Config) { c.OligoConc = 0 }},
		{"score-threshold", func(c *Config) { c.ScoreThreshold = 1.5 }},
		{"trim-limit", func(c *Config) { c.TrimLimit = -1 }},
		{"end-length", func(c *Config) { c.EndLength = 0 }},
		{"max-trim", func(c *Config) { c.MaxTrim = -2 }},
		{"min-length", func(c *Config) { c.MinLength = 0 }},
		{"workers", func(c *Config) { c.Workers = 0 }},
		{"primer-min-length", func(c *Config) { c.PrimerMinLength = 0 }},
		{"primer-max-length", func(c *Config) { c.PrimerMaxLength = 10 }},
		{"primer-gc-max", func(c *Config) { c.PrimerGCMax = 101 }},
		{"primer-gc-min", func(c *Config) { c.PrimerGCMin = 70 }},
		{"primer-tm-min", func(c *Config) { c.PrimerTmMin = 80 }},
		{"log-format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mut(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.name)
		})
	}

	c := Defaults()
	c.GapLength = 0 // ignored for simple tiling
	assert.NoError(t, c.Validate())
}

func TestOptionMapping(t *testing.T) {
	c := Defaults()
	c.Na, c.K, c.OligoConc = 100, 20, 500
	c.TrimLimit = 3
	c.Workers = 4

	o := c.OptimizerOptions()
	assert.Equal(t, 100.0, o.Conditions.NaMM)
	assert.Equal(t, 20.0, o.Conditions.KMM)
	assert.Equal(t, 500.0, o.Conditions.OligoNM)
	assert.Equal(t, 4, o.Workers)
	assert.Equal(t, -5.0, o.CrossMin)

	cl := c.CleanerOptions()
	assert.Equal(t, 3, cl.TrimLimit)
	assert.Equal(t, 4, cl.MinRun)

	p := c.TilingParams()
	assert.Equal(t, 60, p.OligoLength)
	assert.Equal(t, 30, p.OverlapLength)

	c.PrimerTmMax = 70
	assert.Equal(t, primer.Options{MinLength: 20, MaxLength: 60, GCMin: 40, GCMax: 60, TmMin: 55, TmMax: 70}, c.PrimerOptions())
	assert.Equal(t, primer.DefaultOptions(), Defaults().PrimerOptions())
}
