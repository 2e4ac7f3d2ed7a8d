package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// runsTotal counts finished runs by algorithm and outcome
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tspsolver_runs_total",
		Help: "Total finished search runs by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	// runDuration tracks wall-clock time per run
	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tspsolver_run_duration_seconds",
		Help:    "Search run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms to ~80s
	}, []string{"algorithm"})

	// runIterations tracks driver iterations per run
	runIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tspsolver_run_iterations",
		Help:    "Driver iterations per search run",
		Buckets: prometheus.ExponentialBuckets(100, 4, 12),
	}, []string{"algorithm"})

	// bestLength is the best tour length of the latest batch
	bestLength = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tspsolver_best_length",
		Help: "Best tour length found by the most recent batch",
	})
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

func observeRun(res Result, alg string) {
	outcome := outcomeSuccess
	if res.Err != nil {
		outcome = outcomeFailure
	}
	runsTotal.WithLabelValues(alg, outcome).Inc()
	runDuration.WithLabelValues(alg).Observe(res.Elapsed.Seconds())
	if res.Err == nil {
		runIterations.WithLabelValues(alg).Observe(float64(res.Iterations))
	}
}
