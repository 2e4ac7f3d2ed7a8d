package metaheur

import "context"

// HillClimb starts from Generate and moves to each neighbour whose rank is at
// least the current rank. Accepting equal ranks lets the walk cross plateaus.
// Returns a clone of the best candidate.
func HillClimb[T any](ctx context.Context, p Problem[T], opts Options) (T, Stats) {
	b := newBudget(ctx, opts)

	current := p.Generate()
	currentRank := p.Rank(current)
	st := Stats{BestRank: currentRank}

	var (
		next     T
		nextRank float64
	)
	for !b.expired() {
		st.Iterations++
		next = p.Tweak(current)
		nextRank = p.Rank(next)
		if nextRank < currentRank {
			continue
		}
		if nextRank > currentRank {
			st.Improvements++
			if opts.Hook != nil {
				opts.Hook(st.Iterations, nextRank)
			}
		}
		current, currentRank = next, nextRank
	}

	st.BestRank = currentRank
	st.Elapsed = b.elapsed()

	return p.Clone(current), st
}
