// Package metrics counts what a design run produced and can dump the
// counters in the node-exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"oligotile/core/pool"
)

// Stage names used as label values.
const (
	StageTile     = "tile"
	StageClean    = "clean"
	StageOptimize = "optimize"
)

// Metrics is one registry worth of run counters.
type Metrics struct {
	reg *prometheus.Registry

	Fragments     prometheus.Counter
	Oligos        *prometheus.CounterVec   // stage, status
	TrimmedBases  *prometheus.CounterVec   // stage
	StageDuration *prometheus.HistogramVec // stage
}

// New registers a fresh set of collectors on their own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		Fragments: f.NewCounter(prometheus.CounterOpts{
			Name: "oligotile_fragments_total",
			Help: "Input fragments tiled",
		}),
		Oligos: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oligotile_oligos_total",
			Help: "Oligos leaving each stage by status",
		}, []string{"stage", "status"}),
		TrimmedBases: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oligotile_trimmed_bases_total",
			Help: "Bases removed from valid oligos by each stage",
		}, []string{"stage"}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oligotile_stage_duration_seconds",
			Help:    "Wall time per pipeline stage",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"stage"}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// ObserveStage records the stage output against its input and the elapsed
// time since start. before may be nil for the tiling stage.
func (m *Metrics) ObserveStage(stage string, before, after pool.Pool, start time.Time) {
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	invalid := after.InvalidCount()
	m.Oligos.WithLabelValues(stage, "valid").Add(float64(len(after) - invalid))
	m.Oligos.WithLabelValues(stage, "invalid").Add(float64(invalid))
	if len(before) != len(after) {
		return
	}
	trimmed := 0
	for i := range after {
		if !after[i].Invalid {
			trimmed += before[i].Length - after[i].Length
		}
	}
	m.TrimmedBases.WithLabelValues(stage).Add(float64(trimmed))
}

// WriteTextfile atomically writes the registry to path.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
