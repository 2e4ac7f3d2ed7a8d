package batch

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/tspsolver/metaheur"
)

var (
	// ErrInvalidConfig is returned by Config.Validate and Run for unusable batch settings.
	ErrInvalidConfig = errors.New("batch: invalid config")

	// ErrRunFailure marks a single failed run. Siblings are unaffected.
	ErrRunFailure = errors.New("batch: run failed")

	// ErrNoSolution is reported when no run of a batch succeeded.
	ErrNoSolution = errors.New("batch: no successful run")
)

// Config describes one batch of runs.
//
// Algorithm and Construction are resolved inside each run: an unknown name
// fails the runs, not the batch.
type Config struct {
	Algorithm    metaheur.Algorithm
	Runs         int
	Budget       time.Duration // per run
	Parallel     bool
	Workers      int // parallel width; 0 = runtime.NumCPU()
	Construction string
	Seed         int64             // 0 = derived from the clock
	Schedule     metaheur.Schedule // simulated annealing only; nil = calibrated
}

// Validate checks the batch-level settings.
func (c Config) Validate() error {
	switch {
	case c.Runs < 0:
		return fmt.Errorf("runs %d: %w", c.Runs, ErrInvalidConfig)
	case c.Budget <= 0:
		return fmt.Errorf("budget %v: %w", c.Budget, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}
	return nil
}
