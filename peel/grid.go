package peel

import "github.com/katalvlaran/lvpeel/gridgraph"

// Peel returns how many cells of grid a cascading peel at threshold removes.
// It works on a copy; grid itself is not modified. The threshold argument
// overrides any WithThreshold in opts.
func Peel(grid *gridgraph.Grid, threshold int, opts ...Option) (int, error) {
	if grid == nil {
		return 0, ErrNilGraph
	}
	res, err := Run[gridgraph.Point](grid.Clone(), withThreshold(opts, threshold)...)
	if err != nil {
		return 0, err
	}

	return res.Removed, nil
}

// PeelInPlace runs the same cascade directly on grid, leaving only the
// surviving cells active, and returns the full Result.
func PeelInPlace(grid *gridgraph.Grid, threshold int, opts ...Option) (*Result[gridgraph.Point], error) {
	if grid == nil {
		return nil, ErrNilGraph
	}

	return Run[gridgraph.Point](grid, withThreshold(opts, threshold)...)
}

// withThreshold appends WithThreshold(t) without writing into the caller's slice.
func withThreshold(opts []Option, t int) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)

	return append(out, WithThreshold(t))
}

// CountEligible counts active cells whose active-neighbour count is at most
// threshold, without removing anything. It is the first wave of Peel: no
// cascade, so the result never exceeds Peel's.
func CountEligible(grid *gridgraph.Grid, threshold int) int {
	if grid == nil {
		return 0
	}
	n := 0
	for _, p := range grid.ActivePoints() {
		if grid.ActiveNeighbourCount(p) <= threshold {
			n++
		}
	}

	return n
}
