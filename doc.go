// SPDX-License-Identifier: MIT

// Package taskbench is a harness for timing parallel computational tasks
// behind a strict four-stage lifecycle.
//
// 🚀 What is taskbench?
//
//	A small, dependency-light toolkit that brings together:
//		• Typed task descriptors: ordered input/output buffers + scalar metadata
//		• Lifecycle guard: Validate → Prepare → Run → Finalize, enforced at runtime
//		• Perf driver: whole-pipeline and run-only timing with per-sample reports
//		• Strategies: sequential, static worker split, fork/join with a grain
//		• Workloads: dense & heap Dijkstra, Shell/Batcher/radix sorts, sparse CCS product
//
// ✨ Why taskbench?
//
//   - Reproducible – seeded MT19937 fixtures match the reference generators bit for bit
//   - Checked – every variant's output is compared with the sequential result
//   - Observable – slog logging and Prometheus metrics for every report
//
// Layout:
//
//	taskdata/  — typed buffers and the task descriptor
//	task/      — lifecycle states, Guard, Task and stage errors
//	perf/      — Perf driver, Results, summaries and report lines
//	parallel/  — Strategy implementations, chunking and ordered reductions
//	builder/   — MT19937, bounded draws and fixtures
//	dijkstra/  — single-source shortest paths over dense matrices
//	sorting/   — Shell, Batcher odd–even merge and LSD radix sorts
//	matrix/    — complex CCS matrices and their product
//	metrics/   — Prometheus recorder for perf reports
//	cmd/taskbench — CLI: run a YAML suite, list its variants
//
// A task is driven like this:
//
//	d := taskdata.New().
//		AddInput(taskdata.Slice(xs)).
//		AddOutput(taskdata.Slice(make([]int32, len(xs))))
//	t := sorting.NewTask(d, sorting.WithAlgorithm(sorting.AlgoRadix),
//		sorting.WithStrategy(parallel.Static(4)))
//	res, err := perf.New(t).TaskRun(perf.DefaultAttr())
//
//	go install github.com/katalvlaran/taskbench/cmd/taskbench@latest
package taskbench
