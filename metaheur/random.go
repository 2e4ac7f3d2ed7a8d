package metaheur

import "context"

// Sample is the random-search driver: every iteration draws a fresh candidate
// from Generate and keeps the highest-ranked one.
func Sample[T any](ctx context.Context, p Problem[T], opts Options) (T, Stats) {
	b := newBudget(ctx, opts)

	best := p.Generate()
	bestRank := p.Rank(best)
	st := Stats{}

	var (
		cand     T
		candRank float64
	)
	for !b.expired() {
		st.Iterations++
		cand = p.Generate()
		candRank = p.Rank(cand)
		if candRank > bestRank {
			best, bestRank = cand, candRank
			st.Improvements++
			if opts.Hook != nil {
				opts.Hook(st.Iterations, bestRank)
			}
		}
	}

	st.BestRank = bestRank
	st.Elapsed = b.elapsed()

	return p.Clone(best), st
}
