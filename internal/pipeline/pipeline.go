// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"oligotile/core/cleaner"
	"oligotile/core/oligo"
	"oligotile/core/optimizer"
	"oligotile/core/pool"
	"oligotile/core/tiling"
	"oligotile/internal/logging"
	"oligotile/internal/metrics"
)

// Config selects the stages of a design run.
type Config struct {
	Strategy tiling.Strategy

	Clean        bool
	CleanOptions cleaner.Options

	Optimize        bool
	OptimizeOptions optimizer.Options
}

// Result is the final pool of one run.
type Result struct {
	RunID     string
	Fragments int
	Pool      pool.Pool
}

// Design runs tile → clean → optimize over frags. log and m may be nil.
func Design(ctx context.Context, cfg Config, frags []pool.Fragment, log *logging.Logger, m *metrics.Metrics) (Result, error) {
	if log == nil {
		log = logging.Nop()
	}
	if m == nil {
		m = metrics.New()
	}
	if cfg.Strategy == nil {
		return Result{}, fmt.Errorf("%w: no tiling strategy", tiling.ErrInvalidParams)
	}
	res := Result{RunID: uuid.NewString(), Fragments: len(frags)}
	log = log.With("run_id", res.RunID)
	log.Info("design started", "fragments", len(frags), "strategy", cfg.Strategy.Name(),
		"clean", cfg.Clean, "optimize", cfg.Optimize)

	for _, f := range frags {
		if err := oligo.CheckIUPAC(f.Seq); err != nil {
			log.Warn("fragment has non-IUPAC letters", "fragment", f.Name, "err", err)
		} else if n := oligo.Ambiguous(f.Seq); n > 0 {
			log.Debug("fragment has ambiguous bases", "fragment", f.Name, "count", n)
		}
	}

	start := time.Now()
	p, err := tiling.Generate(frags, cfg.Strategy)
	if err != nil {
		return res, err
	}
	m.Fragments.Add(float64(len(frags)))
	m.ObserveStage(metrics.StageTile, nil, p, start)
	log.Debug("tiled", "oligos", len(p))

	if cfg.Clean {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		start = time.Now()
		next := cleaner.Clean(p, cfg.CleanOptions)
		m.ObserveStage(metrics.StageClean, p, next, start)
		log.Debug("cleaned", "oligos", len(next), "invalid", next.InvalidCount())
		p = next
	}

	if cfg.Optimize {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		start = time.Now()
		next := optimizer.Optimize(p, cfg.OptimizeOptions)
		m.ObserveStage(metrics.StageOptimize, p, next, start)
		log.Debug("optimized", "oligos", len(next), "invalid", next.InvalidCount())
		p = next
	}

	res.Pool = p
	log.Info("design finished", "oligos", len(p), "invalid", p.InvalidCount())
	return res, nil
}
