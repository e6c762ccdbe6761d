package writers

import (
	"oligotile/core/pool"
	"oligotile/pkg/api"
)

// ToAPIOligos converts a pool to its wire form, keeping order.
func ToAPIOligos(p pool.Pool) []api.OligoV1 {
	out := make([]api.OligoV1, len(p))
	for i, o := range p {
		out[i] = api.OligoV1{
			Label:    o.Label,
			Sequence: o.Sequence,
			Length:   o.Length,
			Fragment: o.Fragment,
			Invalid:  o.Invalid,
		}
	}
	return out
}

// NewBatch wraps a pool with its run ID and parameters.
func NewBatch(runID string, p pool.Pool, params api.ParametersV1) api.BatchV1 {
	return api.BatchV1{
		RunID:        runID,
		Oligos:       ToAPIOligos(p),
		TotalCount:   len(p),
		InvalidCount: p.InvalidCount(),
		Parameters:   params,
	}
}
