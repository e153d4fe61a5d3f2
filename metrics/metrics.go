// SPDX-License-Identifier: MIT

// Package metrics exports perf.Results as Prometheus metrics.
//
// A Recorder registers its collectors on a caller-supplied registry, so tests
// and the CLI each get an isolated set. Observe is called once per finished
// report, never from inside a timed region.
//
// Metrics (namespace "taskbench", subsystem "perf"):
//
//   - sample_seconds        histogram  {task, mode}        one observation per timed iteration
//   - mean_seconds          gauge      {task, mode}        arithmetic mean of the last valid report
//   - runs_total            counter    {task, mode, valid} reports observed
//   - limit_exceeded_total  counter    {task, mode}        valid reports over the time limit
package metrics

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/taskbench/perf"
)

const (
	namespace = "taskbench"
	subsystem = "perf"
)

// SampleBuckets spans 10µs to roughly 40s in powers of four.
var SampleBuckets = prometheus.ExponentialBuckets(1e-5, 4, 12)

// Recorder holds the collectors for one registry.
type Recorder struct {
	Samples       *prometheus.HistogramVec
	Mean          *prometheus.GaugeVec
	Runs          *prometheus.CounterVec
	LimitExceeded *prometheus.CounterVec

	limit float64
}

// NewRecorder registers the collectors on reg. limit is the per-report time
// limit in seconds checked by Observe; 0 disables the check.
func NewRecorder(reg prometheus.Registerer, limit float64) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		Samples: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sample_seconds",
			Help:      "Duration of each timed iteration in seconds.",
			Buckets:   SampleBuckets,
		}, []string{"task", "mode"}),
		Mean: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "mean_seconds",
			Help:      "Mean iteration time of the last valid report in seconds.",
		}, []string{"task", "mode"}),
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "runs_total",
			Help:      "Performance reports observed, by validity.",
		}, []string{"task", "mode", "valid"}),
		LimitExceeded: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "limit_exceeded_total",
			Help:      "Valid reports whose mean exceeded the time limit.",
		}, []string{"task", "mode"}),
		limit: limit,
	}
}

// Observe records r under task. It returns the limit check result of
// r.CheckLimit so callers can surface it; a nil r is ignored.
func (rec *Recorder) Observe(task string, r *perf.Results) error {
	if r == nil {
		return nil
	}
	mode := r.Mode.String()
	rec.Runs.WithLabelValues(task, mode, strconv.FormatBool(r.Valid)).Inc()
	if !r.Valid {
		return nil
	}

	h := rec.Samples.WithLabelValues(task, mode)
	for _, s := range r.Samples {
		h.Observe(s)
	}
	rec.Mean.WithLabelValues(task, mode).Set(r.TimeSec)

	err := r.CheckLimit(rec.limit)
	if errors.Is(err, perf.ErrTimeLimit) {
		rec.LimitExceeded.WithLabelValues(task, mode).Inc()
	}
	return err
}

// Families gathers g and keeps only this package's metric families.
func Families(g prometheus.Gatherer) ([]*dto.MetricFamily, error) {
	all, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	out := all[:0]
	for _, mf := range all {
		if strings.HasPrefix(mf.GetName(), namespace+"_") {
			out = append(out, mf)
		}
	}
	return out, nil
}

// WriteText writes this package's families from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := Families(g)
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
