// Package config holds the run-wide settings, unmarshalled from viper
// (defaults, an optional YAML file, OLIGOTILE_* environment variables and
// command-line flags, lowest to highest precedence).
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"oligotile/core/cleaner"
	"oligotile/core/optimizer"
	"oligotile/core/primer"
	"oligotile/core/thermo"
	"oligotile/core/tiling"
)

// EnvPrefix is prepended to every environment override, e.g.
// OLIGOTILE_OLIGO_LENGTH.
const EnvPrefix = "OLIGOTILE"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the flat settings struct; keys match the CLI flag names.
type Config struct {
	// input
	Input string `mapstructure:"input"`
	Name  string `mapstructure:"name"`

	// tiling
	Strategy      string `mapstructure:"strategy"`
	OligoLength   int    `mapstructure:"oligo-length"`
	OverlapLength int    `mapstructure:"overlap-length"`
	GapLength     int    `mapstructure:"gap-length"`

	// stages
	Clean    bool `mapstructure:"clean"`
	Optimize bool `mapstructure:"optimize"`

	// reaction conditions
	Na        float64 `mapstructure:"na"`
	K         float64 `mapstructure:"k"`
	OligoConc float64 `mapstructure:"oligo-conc"`

	// cleaner
	ScoreThreshold float64 `mapstructure:"score-threshold"`
	TrimLimit      int     `mapstructure:"trim-limit"`
	EndLength      int     `mapstructure:"end-length"`

	// optimizer
	MaxTrim   int `mapstructure:"max-trim"`
	MinLength int `mapstructure:"min-length"`
	Workers   int `mapstructure:"workers"`

	// primers
	PrimerMinLength int     `mapstructure:"primer-min-length"`
	PrimerMaxLength int     `mapstructure:"primer-max-length"`
	PrimerGCMin     float64 `mapstructure:"primer-gc-min"`
	PrimerGCMax     float64 `mapstructure:"primer-gc-max"`
	PrimerTmMin     float64 `mapstructure:"primer-tm-min"`
	PrimerTmMax     float64 `mapstructure:"primer-tm-max"`

	// output
	Output        string `mapstructure:"output"`
	Header        bool   `mapstructure:"header"`
	Pretty        bool   `mapstructure:"pretty"`
	FailOnInvalid bool   `mapstructure:"fail-on-invalid"`
	MetricsFile   string `mapstructure:"metrics-file"`

	// logging
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	Quiet     bool   `mapstructure:"quiet"`
}

// Defaults returns the stock design parameters.
func Defaults() Config {
	c := cleaner.DefaultOptions()
	o := optimizer.DefaultOptions()
	pr := primer.DefaultOptions()
	return Config{
		Input:           "-",
		Strategy:        "simple",
		OligoLength:     60,
		OverlapLength:   30,
		GapLength:       20,
		Na:              o.Conditions.NaMM,
		K:               o.Conditions.KMM,
		OligoConc:       o.Conditions.OligoNM,
		ScoreThreshold:  c.ScoreThreshold,
		TrimLimit:       c.TrimLimit,
		EndLength:       c.EndLength,
		MaxTrim:         o.MaxTrim,
		MinLength:       o.MinLength,
		Workers:         1,
		PrimerMinLength: pr.MinLength,
		PrimerMaxLength: pr.MaxLength,
		PrimerGCMin:     pr.GCMin,
		PrimerGCMax:     pr.GCMax,
		PrimerTmMin:     pr.TmMin,
		PrimerTmMax:     pr.TmMax,
		Output:          "text",
		Header:          true,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// SetDefaults registers every key of Defaults on v so that environment
// variables resolve for all of them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	for k, val := range map[string]any{
		"input":             d.Input,
		"name":              d.Name,
		"strategy":          d.Strategy,
		"oligo-length":      d.OligoLength,
		"overlap-length":    d.OverlapLength,
		"gap-length":        d.GapLength,
		"clean":             d.Clean,
		"optimize":          d.Optimize,
		"na":                d.Na,
		"k":                 d.K,
		"oligo-conc":        d.OligoConc,
		"score-threshold":   d.ScoreThreshold,
		"trim-limit":        d.TrimLimit,
		"end-length":        d.EndLength,
		"max-trim":          d.MaxTrim,
		"min-length":        d.MinLength,
		"workers":           d.Workers,
		"primer-min-length": d.PrimerMinLength,
		"primer-max-length": d.PrimerMaxLength,
		"primer-gc-min":     d.PrimerGCMin,
		"primer-gc-max":     d.PrimerGCMax,
		"primer-tm-min":     d.PrimerTmMin,
		"primer-tm-max":     d.PrimerTmMax,
		"output":            d.Output,
		"header":            d.Header,
		"pretty":            d.Pretty,
		"fail-on-invalid":   d.FailOnInvalid,
		"metrics-file":      d.MetricsFile,
		"log-level":         d.LogLevel,
		"log-format":        d.LogFormat,
		"quiet":             d.Quiet,
	} {
		v.SetDefault(k, val)
	}
}

// NewViper returns a viper instance with defaults and environment lookup
// wired. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file (if non-empty) into v, then unmarshals and validates.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if filepath.Ext(file) == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges that the core packages would otherwise reject late
// or silently clamp.
func (c Config) Validate() error {
	bad := func(key string, format string, a ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalid, key, fmt.Sprintf(format, a...))
	}
	switch c.Strategy {
	case "simple", "gapped":
	default:
		return bad("strategy", "want simple or gapped, got %q", c.Strategy)
	}
	if c.OligoLength <= 0 {
		return bad("oligo-length", "must be > 0")
	}
	if c.OverlapLength <= 0 || c.OverlapLength > c.OligoLength {
		return bad("overlap-length", "must be in (0, oligo-length]")
	}
	if c.Strategy == "gapped" && c.GapLength <= 0 {
		return bad("gap-length", "must be > 0")
	}
	if c.Na < 0 || c.K < 0 {
		return bad("na/k", "must be >= 0")
	}
	if c.OligoConc <= 0 {
		return bad("oligo-conc", "must be > 0")
	}
	if c.ScoreThreshold <= 0 || c.ScoreThreshold > 1 {
		return bad("score-threshold", "must be in (0, 1]")
	}
	if c.TrimLimit < 0 {
		return bad("trim-limit", "must be >= 0")
	}
	if c.EndLength <= 0 {
		return bad("end-length", "must be > 0")
	}
	if c.MaxTrim < 0 {
		return bad("max-trim", "must be >= 0")
	}
	if c.MinLength < 1 {
		return bad("min-length", "must be >= 1")
	}
	if c.Workers < 1 {
		return bad("workers", "must be >= 1")
	}
	if c.PrimerMinLength < 1 || c.PrimerMaxLength < c.PrimerMinLength {
		return bad("primer-min-length/primer-max-length", "want 1 <= min <= max")
	}
	if c.PrimerGCMin < 0 || c.PrimerGCMax > 100 || c.PrimerGCMin > c.PrimerGCMax {
		return bad("primer-gc-min/primer-gc-max", "want 0 <= min <= max <= 100")
	}
	if c.PrimerTmMin > c.PrimerTmMax {
		return bad("primer-tm-min/primer-tm-max", "want min <= max")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return bad("log-format", "want text or json, got %q", c.LogFormat)
	}
	return nil
}

// TilingParams maps the tiling keys.
func (c Config) TilingParams() tiling.Params {
	return tiling.Params{OligoLength: c.OligoLength, OverlapLength: c.OverlapLength, GapLength: c.GapLength}
}

// Conditions maps the reaction keys.
func (c Config) Conditions() thermo.Conditions {
	return thermo.Conditions{NaMM: c.Na, KMM: c.K, OligoNM: c.OligoConc}
}

// CleanerOptions maps the cleaner keys onto the package defaults.
func (c Config) CleanerOptions() cleaner.Options {
	o := cleaner.DefaultOptions()
	o.EndLength = c.EndLength
	o.ScoreThreshold = c.ScoreThreshold
	o.TrimLimit = c.TrimLimit
	return o
}

// OptimizerOptions maps the optimizer keys onto the package defaults.
func (c Config) OptimizerOptions() optimizer.Options {
	o := optimizer.DefaultOptions()
	o.Conditions = c.Conditions()
	o.MaxTrim = c.MaxTrim
	o.MinLength = c.MinLength
	o.Workers = c.Workers
	return o
}

// PrimerOptions maps the primer keys.
func (c Config) PrimerOptions() primer.Options {
	return primer.Options{
		MinLength: c.PrimerMinLength,
		MaxLength: c.PrimerMaxLength,
		GCMin:     c.PrimerGCMin,
		GCMax:     c.PrimerGCMax,
		TmMin:     c.PrimerTmMin,
		TmMax:     c.PrimerTmMax,
	}
}
