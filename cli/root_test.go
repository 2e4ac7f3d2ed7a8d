package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolver/batch"
	"github.com/katalvlaran/tspsolver/config"
	"github.com/katalvlaran/tspsolver/metaheur"
	"github.com/katalvlaran/tspsolver/reader"
	"github.com/katalvlaran/tspsolver/tsp"
)

const square = `NODE_COORD_SECTION
1 0 0
2 10 0
3 10 10
4 0 10
EOF
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(context.Background(), "test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestSolveSquare(t *testing.T) {
	path := writeFile(t, "square.tsp", square)

	out, err := execute(t, "-f", path, "-d", "0.05", "-r", "2", "-i", "greedy", "--seed", "9")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "#1 score 40", lines[0])
	assert.Equal(t, "#2 score 40", lines[1])
	assert.Equal(t, "Best score 40 (lower bound 30, gap 33.33%)", lines[2])
}

func TestSolveParallelAnnealing(t *testing.T) {
	path := writeFile(t, "square.tsp", square)

	out, err := execute(t, "-f", path, "-d", "0.05", "-r", "3", "-p", "-w", "2", "-a", "simulated-annealing")
	require.NoError(t, err)
	assert.Contains(t, out, "#3 score")
	assert.Contains(t, out, "Best score 40")
}

func TestSolveUnknownAlgorithm(t *testing.T) {
	path := writeFile(t, "square.tsp", square)

	out, err := execute(t, "-f", path, "-d", "0.01", "-a", "tabu")
	require.ErrorIs(t, err, batch.ErrNoSolution)
	assert.Contains(t, out, "#1 could not solve problem, error: ")
	assert.Contains(t, out, "unknown algorithm")
	assert.Contains(t, out, "No successful run")
}

func TestSolveMissingFile(t *testing.T) {
	_, err := execute(t, "-f", filepath.Join(t.TempDir(), "nope.tsp"))
	require.ErrorIs(t, err, reader.ErrInstanceNotFound)
}

func TestSolveRequiresFile(t *testing.T) {
	_, err := execute(t, "-d", "1")
	require.Error(t, err)
}

func TestSolveBadInstance(t *testing.T) {
	path := writeFile(t, "dup.txt", "1 0 0\n1 2 2\n")
	_, err := execute(t, "-f", path)
	require.ErrorIs(t, err, tsp.ErrDuplicateID)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := writeFile(t, "square.tsp", square)
	cfgPath := writeFile(t, "solver.yaml", "runs: 3\nduration: 0.02\nconstruction: greedy\n")

	out, err := execute(t, "-f", path, "-c", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "#3 score 40")

	out, err = execute(t, "-f", path, "-c", cfgPath, "-r", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "#2")
}

func TestBatchConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = " Simulated-Annealing"
	cfg.Annealing.StartTemperature = 3

	bc := batchConfig(cfg)
	assert.Equal(t, metaheur.SimulatedAnnealing, bc.Algorithm)
	assert.Equal(t, metaheur.ExponentialSchedule{Start: 3, EndRatio: 1e-3}, bc.Schedule)
	assert.Equal(t, cfg.Budget(), bc.Budget)

	cfg.Algorithm = "hill-climbing"
	assert.Nil(t, batchConfig(cfg).Schedule)

	cfg.Algorithm = "tabu"
	assert.Equal(t, metaheur.Algorithm("tabu"), batchConfig(cfg).Algorithm)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	report := batch.NewReport(1, []batch.Result{
		{Run: 0, Tour: &tsp.Candidate{}, Length: 120.5},
		{Run: 1, Tour: &tsp.Candidate{}, Length: 98.2},
		{Run: 2, Err: batch.ErrRunFailure},
	}, 0)
	printReport(&buf, report, nil, false)

	assert.Equal(t, "#1 score 120.5\n#2 score 98.2\n"+
		"#3 could not solve problem, error: batch: run failed\n"+
		"Best score 98.2\n", buf.String())
}

func TestPrintReportVerboseListsBestTour(t *testing.T) {
	inst, err := tsp.NewInstance([]tsp.Point{{ID: 10, X: 0, Y: 0}, {ID: 20, X: 3, Y: 0}, {ID: 30, X: 3, Y: 4}})
	require.NoError(t, err)
	report := batch.NewReport(1, []batch.Result{
		{Run: 0, Tour: &tsp.Candidate{Order: []int{0, 2, 1}}, Length: 12},
		{Run: 1, Err: batch.ErrRunFailure},
	}, 0)

	var buf bytes.Buffer
	printReport(&buf, report, inst, true)
	assert.Equal(t, "#1 score 12\n"+
		"#2 could not solve problem, error: batch: run failed\n"+
		"Best score 12\nBest tour 10 30 20\n", buf.String())

	// Matrix-only instances fall back to 1-based indices.
	assert.Equal(t, "3 1 2", tourIDs(nil, []int{2, 0, 1}))

	buf.Reset()
	printReport(&buf, batch.NewReport(1, []batch.Result{{Run: 0, Err: batch.ErrRunFailure}}, 0), inst, true)
	assert.NotContains(t, buf.String(), "Best tour")
}
