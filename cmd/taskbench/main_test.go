package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taskbench/internal/config"
	"github.com/katalvlaran/taskbench/internal/suite"
	"github.com/katalvlaran/taskbench/perf"
)

const smallSuite = `
log:
  level: warn
perf:
  iterations: 3
  max_time: 5
  modes: [pipeline, task_run]
parallel:
  workers: 2
  grain: 32
tasks:
  - name: graph
    kind: dijkstra
    algorithm: heap
    strategies: [sequential, static]
    seed: 42
    size: 30
  - name: pair
    kind: sorting
    algorithm: batcher
    strategies: [forkjoin]
    seed: 5
    size: 200
    arrays: 2
  - name: ccs
    kind: matrix
    p: 9
    q: 8
    r: 9
    stride: 4
`

func writeSuite(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestList_DefaultSuite(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 24)
	require.Equal(t, "dijkstra_5000\tdijkstra\tdense\tsequential\tpipeline", lines[0])
	require.Equal(t, "ccs_501x500x501\tmatrix\tgustavson\tforkjoin\ttask_run", lines[23])
}

func TestRun_PlainReport(t *testing.T) {
	path := writeSuite(t, smallSuite)
	out, _, err := execute(t, "run", "--config", path, "--metrics", "-n", "2")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	var report []string
	for _, l := range lines {
		if l != "" && !strings.HasPrefix(l, "#") && !strings.HasPrefix(l, "taskbench_") {
			report = append(report, l)
		}
	}
	// graph: 2 strategies, pair: 1, ccs: 1; two modes each.
	require.Len(t, report, 8)
	require.True(t, strings.HasPrefix(report[0], "graph/sequential:pipeline:"), report[0])
	require.True(t, strings.HasPrefix(report[7], "ccs/sequential:task_run:"), report[7])
	require.Contains(t, out, `taskbench_perf_runs_total{mode="task_run",task="pair",valid="true"} 1`)
	require.Contains(t, out, "taskbench_perf_sample_seconds_count")
}

func TestRun_LogOverride(t *testing.T) {
	path := writeSuite(t, smallSuite)
	_, stderr, err := execute(t, "run", "--config", path, "--log-level", "info", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, stderr, `"msg":"suite: done"`)
	require.Contains(t, stderr, `"run_id":`)
}

func TestRun_TimeLimitFails(t *testing.T) {
	path := writeSuite(t, strings.Replace(smallSuite, "max_time: 5", "max_time: 0.000000000001", 1))
	out, _, err := execute(t, "run", "--config", path)
	require.ErrorIs(t, err, perf.ErrTimeLimit)
	require.Contains(t, out, "  slow: ")
}

func TestRun_BadInput(t *testing.T) {
	_, _, err := execute(t, "run", "--config", writeSuite(t, "perf:\n  bogus: 1\n"))
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "run", "--config", writeSuite(t, smallSuite), "-n", "0")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "list", "--log-format", "xml")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "run", "extra")
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	valid := &perf.Results{Mode: perf.ModePipeline, Valid: true, Samples: []float64{1}, TimeSec: 1}
	cases := []struct {
		o    suite.Outcome
		want string
	}{
		{suite.Outcome{Results: valid}, statusOK},
		{suite.Outcome{}, statusInvalid},
		{suite.Outcome{Results: &perf.Results{Mode: perf.ModeTaskRun}}, statusInvalid},
		{suite.Outcome{Results: valid, Parity: suite.ErrParity}, statusMismatch},
		{suite.Outcome{Results: valid, Err: perf.ErrTimeLimit}, statusSlow},
		{suite.Outcome{Results: valid, Err: errors.New("x")}, statusError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, status(tc.o))
	}
}

func TestRenderTable(t *testing.T) {
	valid := &perf.Results{Mode: perf.ModeTaskRun, Valid: true, Samples: []float64{0.5, 1.5}, TimeSec: 1}
	outcomes := []suite.Outcome{
		{Variant: suite.Variant{Task: config.Task{Name: "radix", Kind: config.KindSorting, Algorithm: "radix"}, Strategy: "static", Mode: perf.ModeTaskRun}, Results: valid},
		{Variant: suite.Variant{Task: config.Task{Name: "g", Kind: config.KindDijkstra}, Strategy: "sequential", Mode: perf.ModePipeline}, Results: &perf.Results{Mode: perf.ModePipeline}},
	}
	s := renderTable(outcomes)
	for _, want := range []string{"TASK", "STATUS", "radix", "static", "task_run", "1.000000", "dense", statusOK, statusInvalid} {
		require.Contains(t, s, want)
	}
}
