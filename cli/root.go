// Package cli implements the tspsolver command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspsolver/batch"
	"github.com/katalvlaran/tspsolver/common"
	"github.com/katalvlaran/tspsolver/config"
	"github.com/katalvlaran/tspsolver/metaheur"
	"github.com/katalvlaran/tspsolver/reader"
	"github.com/katalvlaran/tspsolver/tsp"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the tspsolver command.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	input := new(Input)
	rootCmd := &cobra.Command{
		Use:          "tspsolver -f FILE",
		Short:        "Helps salesman find the shortest route!",
		Args:         cobra.NoArgs,
		RunE:         newRunSolver(ctx, input),
		Version:      version,
		SilenceUsage: true,
	}
	input.addFlags(rootCmd.Flags())
	_ = rootCmd.MarkFlagRequired("file")
	return rootCmd
}

func newRunSolver(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if input.configPath != "" {
			var err error
			if cfg, err = config.Load(input.configPath); err != nil {
				return err
			}
		}
		input.apply(cmd.Flags(), &cfg)

		logger, err := newLogger(cmd.ErrOrStderr(), cfg, input.verbose)
		if err != nil {
			return err
		}
		ctx := common.WithLogger(ctx, logger)

		if input.metricsAddr != "" {
			stop := serveMetrics(ctx, input.metricsAddr)
			defer stop()
		}

		points, err := reader.Read(input.file)
		if err != nil {
			return err
		}
		inst, err := tsp.NewInstance(points)
		if err != nil {
			return errors.Wrapf(err, "load %s", input.file)
		}
		logger.Debugf("Loaded %d points from %s", inst.Len(), input.file)

		report, err := batch.Run(ctx, inst, batchConfig(cfg))
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report, inst, input.verbose)
		return report.Err()
	}
}

func newLogger(w io.Writer, cfg config.File, verbose bool) (*log.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = log.DebugLevel
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return logger, nil
}

// batchConfig resolves file settings into a batch configuration. Unknown
// algorithm and construction names are passed through: they fail each run.
func batchConfig(cfg config.File) batch.Config {
	alg := metaheur.Algorithm(cfg.Algorithm)
	if parsed, err := metaheur.ParseAlgorithm(cfg.Algorithm); err == nil {
		alg = parsed
	}

	var schedule metaheur.Schedule
	if alg == metaheur.SimulatedAnnealing {
		schedule = metaheur.ExponentialSchedule{
			Start:    cfg.Annealing.StartTemperature,
			EndRatio: cfg.Annealing.EndRatio,
		}
	}

	return batch.Config{
		Algorithm:    alg,
		Runs:         cfg.Runs,
		Budget:       cfg.Budget(),
		Parallel:     cfg.Parallel,
		Workers:      cfg.Workers,
		Construction: cfg.Construction,
		Seed:         cfg.Seed,
		Schedule:     schedule,
	}
}

// printReport writes one line per run (1-based) and a closing summary line.
// With verbose set it also lists the best tour by point ID.
func printReport(w io.Writer, report *batch.Report, inst *tsp.Instance, verbose bool) {
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(w, "#%d could not solve problem, error: %v\n", res.Run+1, res.Err)
			continue
		}
		fmt.Fprintf(w, "#%d score %s\n", res.Run+1, formatLength(res.Length))
	}

	best := report.Best()
	if best == nil {
		fmt.Fprintln(w, "No successful run")
		return
	}
	if gap, ok := report.Gap(); ok {
		fmt.Fprintf(w, "Best score %s (lower bound %s, gap %.2f%%)\n",
			formatLength(best.Length), formatLength(report.Bound), 100*gap)
	} else {
		fmt.Fprintf(w, "Best score %s\n", formatLength(best.Length))
	}
	if verbose {
		fmt.Fprintf(w, "Best tour %s\n", tourIDs(inst, best.Tour.Order))
	}
}

// tourIDs renders order as point IDs, falling back to the 1-based index for
// instances without points.
func tourIDs(inst *tsp.Instance, order []int) string {
	ids := make([]string, len(order))
	for k, idx := range order {
		id := idx + 1
		if inst != nil {
			if p, ok := inst.Point(idx); ok {
				id = p.ID
			}
		}
		ids[k] = strconv.Itoa(id)
	}

	return strings.Join(ids, " ")
}

func formatLength(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// serveMetrics exposes the default Prometheus registry until stop is called.
func serveMetrics(ctx context.Context, addr string) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	logger := common.Logger(ctx)
	go func() {
		logger.Infof("Serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("metrics server stopped")
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
