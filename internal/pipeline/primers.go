package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"oligotile/core/oligo"
	"oligotile/core/pool"
	"oligotile/core/primer"
	"oligotile/pkg/api"
)

// Primers designs one primer pair per fragment, in input order, using up
// to threads goroutines.
func Primers(ctx context.Context, frags []pool.Fragment, opt primer.Options, threads int) ([]api.PrimerPairV1, error) {
	if threads < 1 {
		threads = 1
	}
	out := make([]api.PrimerPairV1, len(frags))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, f := range frags {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := primer.Design(f.Seq, opt)
			out[i] = api.PrimerPairV1{
				Name:            f.Name,
				Forward:         p.Forward,
				Reverse:         p.Reverse,
				ForwardTm:       primer.WallaceTm(p.Forward),
				ReverseTm:       primer.WallaceTm(p.Reverse),
				ForwardGC:       oligo.GCContent(p.Forward),
				ReverseGC:       oligo.GCContent(p.Reverse),
				ForwardFallback: p.ForwardFallback,
				ReverseFallback: p.ReverseFallback,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
