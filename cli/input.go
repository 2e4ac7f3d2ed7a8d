package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/tspsolver/config"
	"github.com/katalvlaran/tspsolver/metaheur"
)

// Input holds the raw command-line values.
type Input struct {
	file         string
	configPath   string
	duration     float64
	algorithm    string
	runs         int
	parallel     bool
	workers      int
	construction string
	seed         int64
	verbose      bool
	metricsAddr  string
}

func (i *Input) addFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringVarP(&i.file, "file", "f", "", "problem instance file")
	fs.StringVarP(&i.configPath, "config", "c", "", "YAML settings file; flags override its values")
	fs.Float64VarP(&i.duration, "duration", "d", def.Duration, "computation time per run in seconds")
	fs.StringVarP(&i.algorithm, "algorithm", "a", def.Algorithm, "meta-heuristic: "+algorithmNames())
	fs.IntVarP(&i.runs, "runs", "r", def.Runs, "number of algorithm runs")
	fs.BoolVarP(&i.parallel, "parallel", "p", def.Parallel, "run in parallel batches")
	fs.IntVarP(&i.workers, "workers", "w", def.Workers, "parallel batch width (0 = number of CPUs)")
	fs.StringVarP(&i.construction, "init", "i", def.Construction, "initial tour: random or greedy")
	fs.Int64Var(&i.seed, "seed", def.Seed, "batch seed (0 = time based)")
	fs.BoolVarP(&i.verbose, "verbose", "v", false, "verbose output")
	fs.StringVar(&i.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while solving")
}

// apply copies every explicitly set flag over cfg.
func (i *Input) apply(fs *pflag.FlagSet, cfg *config.File) {
	if fs.Changed("duration") {
		cfg.Duration = i.duration
	}
	if fs.Changed("algorithm") {
		cfg.Algorithm = i.algorithm
	}
	if fs.Changed("runs") {
		cfg.Runs = i.runs
	}
	if fs.Changed("parallel") {
		cfg.Parallel = i.parallel
	}
	if fs.Changed("workers") {
		cfg.Workers = i.workers
	}
	if fs.Changed("init") {
		cfg.Construction = i.construction
	}
	if fs.Changed("seed") {
		cfg.Seed = i.seed
	}
}

func algorithmNames() string {
	names := make([]string, 0, 3)
	for _, a := range metaheur.Algorithms() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}
