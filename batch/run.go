package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspsolver/common"
	"github.com/katalvlaran/tspsolver/metaheur"
	"github.com/katalvlaran/tspsolver/tsp"
)

// SolveFunc runs one search driver for run number run.
type SolveFunc func(ctx context.Context, run int, alg metaheur.Algorithm,
	p metaheur.Problem[*tsp.Candidate], opts metaheur.Options) (*tsp.Candidate, metaheur.Stats, error)

// DefaultSolve dispatches to metaheur.Solve.
func DefaultSolve(ctx context.Context, _ int, alg metaheur.Algorithm,
	p metaheur.Problem[*tsp.Candidate], opts metaheur.Options) (*tsp.Candidate, metaheur.Stats, error) {
	return metaheur.Solve(ctx, alg, p, opts)
}

// Runner executes batches. The zero value uses DefaultSolve.
type Runner struct {
	Solve SolveFunc
}

// Run executes a batch with the default Runner.
func Run(ctx context.Context, in *tsp.Instance, cfg Config) (*Report, error) {
	return Runner{}.Run(ctx, in, cfg)
}

// Run executes cfg.Runs independent runs over in and returns their results
// in run order. The error is non-nil only for batch-level problems; per-run
// failures live in the report.
func (r Runner) Run(ctx context.Context, in *tsp.Instance, cfg Config) (*Report, error) {
	if in == nil {
		return nil, tsp.ErrNilInstance
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r.Solve == nil {
		r.Solve = DefaultSolve
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	report := NewReport(seed, make([]Result, cfg.Runs), tsp.SpanningTreeBound(in))

	logger := common.Logger(ctx).WithFields(logrus.Fields{
		"batch":     report.ID.String(),
		"algorithm": string(cfg.Algorithm),
	})
	logger.WithFields(logrus.Fields{
		"seed":     seed,
		"runs":     cfg.Runs,
		"parallel": cfg.Parallel,
		"points":   in.Len(),
	}).Debug("starting batch")
	ctx = common.WithLogger(ctx, logger)

	if !cfg.Parallel {
		for i := range report.Results {
			report.Results[i] = r.runOne(ctx, in, cfg, seed, i)
		}
	} else {
		workers := cfg.Workers
		if workers == 0 {
			workers = runtime.NumCPU()
		}
		next := 0
		for _, size := range Partition(cfg.Runs, workers) {
			// Failures stay in each Result, so the group only joins the batch.
			var g errgroup.Group
			for run := next; run < next+size; run++ {
				g.Go(func() error {
					report.Results[run] = r.runOne(ctx, in, cfg, seed, run)
					return nil
				})
			}
			_ = g.Wait()
			next += size
		}
	}

	if best := report.Best(); best != nil {
		bestLength.Set(best.Length)
	}
	return report, nil
}

// runOne executes a single run. It never panics: a panic inside the driver
// or the adapter becomes the run's error.
func (r Runner) runOne(ctx context.Context, in *tsp.Instance, cfg Config, batchSeed int64, run int) (res Result) {
	res = Result{Run: run, Seed: tsp.DeriveSeed(batchSeed, uint64(run))}
	logger := common.Logger(ctx).WithField("run", run+1)
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			res.Tour, res.Length = nil, 0
			res.Err = fmt.Errorf("%w: panic: %v", ErrRunFailure, p)
		}
		res.Elapsed = time.Since(start)
		observeRun(res, string(cfg.Algorithm))

		if res.Err != nil {
			logger.WithError(res.Err).Warn("run failed")
			return
		}
		logger.WithFields(logrus.Fields{
			"length":     res.Length,
			"iterations": res.Iterations,
			"elapsed":    res.Elapsed,
		}).Info("run finished")
	}()

	logger.WithField("seed", res.Seed).Debug("starting run")

	kind, err := tsp.ParseConstruction(cfg.Construction)
	if err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrRunFailure, err)
		return res
	}
	rng := tsp.NewRand(res.Seed)
	adapter, err := tsp.NewAdapter(in, kind, rng)
	if err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrRunFailure, err)
		return res
	}

	best, st, err := r.Solve(ctx, run, cfg.Algorithm, adapter, metaheur.Options{
		Budget:   cfg.Budget,
		RNG:      rng,
		Schedule: cfg.Schedule,
		Hook: func(iter int, rank float64) {
			logger.WithFields(logrus.Fields{"iteration": iter, "length": tsp.RankCeiling - rank}).Trace("improved")
		},
	})
	if err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrRunFailure, err)
		return res
	}
	if best == nil {
		res.Err = fmt.Errorf("%w: driver returned no candidate", ErrRunFailure)
		return res
	}

	// Drop drift accumulated by incremental length updates.
	best.Recompute(in)
	if err = best.Validate(in); err != nil {
		res.Err = fmt.Errorf("%w: %w", ErrRunFailure, err)
		return res
	}

	res.Tour, res.Length, res.Iterations = best, best.Length, st.Iterations
	return res
}
