package metaheur

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// calibrationSamples is how many neighbours are drawn to size the default
// starting temperature.
const calibrationSamples = 32

// calibrationShare bounds calibration to budget/calibrationShare of wall time.
const calibrationShare = 10

// Anneal runs simulated annealing. A neighbour ranking at least as high as
// the current candidate is always accepted; a worse one with probability
// exp((nextRank − currentRank) / T). T follows opts.Schedule over the elapsed
// fraction of the budget. Returns a clone of the best candidate seen.
func Anneal[T any](ctx context.Context, p Problem[T], opts Options) (T, Stats) {
	b := newBudget(ctx, opts)

	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	current := p.Generate()
	currentRank := p.Rank(current)
	best, bestRank := current, currentRank
	st := Stats{}

	schedule := opts.Schedule
	if schedule == nil {
		schedule = ExponentialSchedule{}
	}
	if exp, ok := schedule.(ExponentialSchedule); ok && exp.Start <= 0 {
		exp.Start = calibrate(p, current, currentRank, b.start.Add(b.total/calibrationShare))
		schedule = exp
	}
	temp := schedule.Temperature(0)

	var (
		next     T
		nextRank float64
	)
	for !b.expired() {
		st.Iterations++
		if b.checked {
			temp = schedule.Temperature(b.fraction())
		}

		next = p.Tweak(current)
		nextRank = p.Rank(next)
		if !accept(currentRank, nextRank, temp, rng) {
			continue
		}
		current, currentRank = next, nextRank

		if currentRank > bestRank {
			best, bestRank = current, currentRank
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

// accept decides whether to move from a candidate ranked cur to one ranked next.
func accept(cur, next, temp float64, rng *rand.Rand) bool {
	if next >= cur {
		return true
	}
	if temp <= 0 {
		return false
	}

	return rng.Float64() < math.Exp((next-cur)/temp)
}

// calibrate returns the mean absolute rank change over a few sampled
// neighbours of seed, or 1 when every sample is flat. Sampling stops early
// once until has passed; at least one neighbour is always drawn.
func calibrate[T any](p Problem[T], seed T, seedRank float64, until time.Time) float64 {
	var (
		sum   float64
		count int
		i     int
		d     float64
	)
	for i = 0; i < calibrationSamples; i++ {
		if d = math.Abs(p.Rank(p.Tweak(seed)) - seedRank); d > 0 {
			sum += d
			count++
		}
		if !time.Now().Before(until) {
			break
		}
	}
	if count == 0 {
		return 1
	}

	return sum / float64(count)
}
