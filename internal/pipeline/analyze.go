// internal/pipeline/analyze.go
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"oligotile/core/oligo"
	"oligotile/core/optimizer"
	"oligotile/core/pool"
	"oligotile/pkg/api"
)

// Analyze scores each fragment on its own against the design windows of
// opt, in input order, using up to threads goroutines.
func Analyze(ctx context.Context, frags []pool.Fragment, opt optimizer.Options, threads int) ([]api.AnalysisV1, error) {
	if threads < 1 {
		threads = 1
	}
	out := make([]api.AnalysisV1, len(frags))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, f := range frags {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := optimizer.Evaluate(f.Seq, nil, opt)
			out[i] = api.AnalysisV1{
				Name:              f.Name,
				Length:            len(f.Seq),
				GC:                r.GC,
				Tm:                r.Tm,
				Hairpin:           r.Hairpin,
				Duplex:            r.Duplex,
				Acceptable:        r.Acceptable(),
				Sequence:          f.Seq,
				ReverseComplement: oligo.RevComp(f.Seq),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
