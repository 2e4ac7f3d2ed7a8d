package batch

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/tspsolver/tsp"
)

// Result is the outcome of one run. Exactly one of Tour and Err is set.
type Result struct {
	Run        int   // 0-based position in the batch
	Seed       int64 // seed of the run's private RNG
	Tour       *tsp.Candidate
	Length     float64
	Iterations int
	Elapsed    time.Duration
	Err        error
}

// OK reports whether the run produced a tour.
func (r Result) OK() bool { return r.Err == nil && r.Tour != nil }

// Report aggregates the results of one batch, in run order.
type Report struct {
	ID      uuid.UUID
	Seed    int64
	Results []Result
	Bound   float64 // minimum spanning tree lower bound of the instance
}

// NewReport wraps results under a fresh batch ID.
func NewReport(seed int64, results []Result, bound float64) *Report {
	return &Report{ID: uuid.New(), Seed: seed, Results: results, Bound: bound}
}

// Best returns the successful run with the shortest tour, or nil when no run
// succeeded. Ties go to the lower run number.
func (r *Report) Best() *Result {
	var best *Result
	for i := range r.Results {
		res := &r.Results[i]
		if !res.OK() {
			continue
		}
		if best == nil || res.Length < best.Length {
			best = res
		}
	}
	return best
}

// Successes returns the successful results in run order.
func (r *Report) Successes() []Result {
	out := make([]Result, 0, len(r.Results))
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Failures returns the failed results in run order.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Err is nil when at least one run succeeded, ErrNoSolution otherwise.
func (r *Report) Err() error {
	if r.Best() != nil {
		return nil
	}
	return fmt.Errorf("%d of %d runs failed: %w", len(r.Failures()), len(r.Results), ErrNoSolution)
}

// Summary describes the distribution of successful tour lengths.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary computes statistics over the successful runs. A single run has
// zero spread; no successful run yields the zero Summary.
func (r *Report) Summary() Summary {
	ok := r.Successes()
	if len(ok) == 0 {
		return Summary{}
	}
	lengths := make([]float64, len(ok))
	for i, res := range ok {
		lengths[i] = res.Length
	}

	s := Summary{Count: len(lengths), Min: floats.Min(lengths), Max: floats.Max(lengths)}
	if len(lengths) == 1 {
		s.Mean = lengths[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(lengths, nil)
	return s
}

// Gap returns best/bound − 1, the relative distance of the best tour from
// the lower bound. ok is false without a best tour or a positive bound.
func (r *Report) Gap() (gap float64, ok bool) {
	best := r.Best()
	if best == nil || r.Bound <= 0 || math.IsInf(r.Bound, 0) {
		return 0, false
	}
	return best.Length/r.Bound - 1, true
}
