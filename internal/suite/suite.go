// SPDX-License-Identifier: MIT

// Package suite runs a configured set of benchmark tasks.
//
// For every task in the configuration the suite generates the inputs once,
// then measures each (strategy, mode) variant on a fresh descriptor and
// compares the output with the sequential reference. Results are recorded on
// an optional metrics.Recorder and returned as Outcomes.
package suite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/taskbench/internal/config"
	"github.com/katalvlaran/taskbench/internal/logging"
	"github.com/katalvlaran/taskbench/metrics"
	"github.com/katalvlaran/taskbench/parallel"
	"github.com/katalvlaran/taskbench/perf"
)

// Variant is one measurement the suite will perform.
type Variant struct {
	Task     config.Task
	Strategy string
	Mode     perf.Mode
}

// Outcome is the result of one Variant.
type Outcome struct {
	Variant
	Results *perf.Results
	Parity  error // non-nil when the output differs from the reference
	Err     error // stage failure or time limit
}

// OK reports whether the variant produced a valid, matching, in-time report.
func (o Outcome) OK() bool {
	return o.Results != nil && o.Results.Valid && o.Parity == nil && o.Err == nil
}

// Plan expands cfg into its variants in configuration order: tasks, then
// strategies, then modes. Unknown mode names are skipped; config validation
// rejects them earlier.
func Plan(cfg config.Config) []Variant {
	var out []Variant
	for _, t := range cfg.Tasks {
		for _, s := range t.StrategyNames() {
			for _, name := range cfg.Perf.Modes {
				m, ok := perf.ParseMode(name)
				if !ok {
					continue
				}
				out = append(out, Variant{Task: t, Strategy: s, Mode: m})
			}
		}
	}
	return out
}

// Options configures a Runner.
type Options struct {
	Logger   *slog.Logger      // never nil after New
	Recorder *metrics.Recorder // optional
	RunID    string            // generated when empty
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder records every outcome on rec. When set, the time limit is
// checked by rec with its own limit.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(o *Options) {
		o.Recorder = rec
	}
}

// WithRunID fixes the run identifier attached to every log line.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// Runner executes the plan of one configuration.
type Runner struct {
	cfg  config.Config
	opts Options
	log  *slog.Logger
}

// New returns a Runner for cfg. cfg is assumed to be validated.
func New(cfg config.Config, opts ...Option) *Runner {
	o := Options{Logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}
	return &Runner{cfg: cfg, opts: o, log: o.Logger.With("run_id", o.RunID)}
}

// RunID returns the identifier tagging this run's log lines.
func (r *Runner) RunID() string { return r.opts.RunID }

// Run measures every variant of the plan. Per-variant failures are reported
// in the returned Outcomes; the error is non-nil only when a fixture cannot
// be generated, a strategy name is unknown, or ctx is cancelled. Outcomes
// gathered before such an error are still returned.
func (r *Runner) Run(ctx context.Context) ([]Outcome, error) {
	r.log.Info("suite: start", "tasks", len(r.cfg.Tasks), "iterations", r.cfg.Perf.Iterations)

	var outcomes []Outcome
	for _, t := range r.cfg.Tasks {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		fx, err := newFixture(t)
		if err != nil {
			return outcomes, err
		}
		r.log.Debug("suite: fixture ready", "task", t.Name, "kind", t.Kind)

		for _, v := range Plan(config.Config{Perf: r.cfg.Perf, Tasks: []config.Task{t}}) {
			if err := ctx.Err(); err != nil {
				return outcomes, err
			}
			o, err := r.measure(fx, v)
			if err != nil {
				return outcomes, err
			}
			outcomes = append(outcomes, o)
		}
	}

	r.log.Info("suite: done", "variants", len(outcomes), "failed", len(Failed(outcomes)))
	return outcomes, nil
}

func (r *Runner) measure(fx fixture, v Variant) (Outcome, error) {
	s, err := parallel.Parse(v.Strategy, r.cfg.Parallel.Workers, r.cfg.Parallel.Grain)
	if err != nil {
		return Outcome{}, fmt.Errorf("suite: %s: %w", v.Task.Name, err)
	}
	t, d := fx.build(s)
	log := r.log.With("task", v.Task.Name, "strategy", s.Name(), "workers", s.Workers(), "mode", v.Mode.String())

	p := perf.New(t, perf.WithLogger(log))
	attr := perf.Attr{Iterations: r.cfg.Perf.Iterations, Timer: perf.WallClock()}
	var res *perf.Results
	switch v.Mode {
	case perf.ModeTaskRun:
		res, err = p.TaskRun(attr)
	default:
		res, err = p.PipelineRun(attr)
	}

	o := Outcome{Variant: v, Results: res, Err: err}
	switch {
	case res == nil:
	case res.Valid:
		o.Parity = fx.check(d)
		o.Err = r.observe(v.Task.Name, res)
	default:
		_ = r.observe(v.Task.Name, res)
		o.Err = res.Err
	}

	if o.OK() {
		log.Info("suite: measured", "mean_sec", res.TimeSec, "samples", len(res.Samples))
	} else {
		log.Warn("suite: variant failed", "parity", o.Parity, "error", o.Err)
	}
	return o, nil
}

// observe records res and applies the time limit to valid reports.
func (r *Runner) observe(name string, res *perf.Results) error {
	if r.opts.Recorder != nil {
		return r.opts.Recorder.Observe(name, res)
	}
	if !res.Valid {
		return nil
	}
	return res.CheckLimit(r.cfg.Perf.MaxTime)
}

// Failed returns the outcomes that are not OK.
func Failed(outcomes []Outcome) []Outcome {
	var out []Outcome
	for _, o := range outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Err joins the failures of outcomes into one error, or nil.
func Err(outcomes []Outcome) error {
	var errs []error
	for _, o := range Failed(outcomes) {
		cause := errors.Join(o.Err, o.Parity)
		if cause == nil {
			cause = perf.ErrInvalidResults
		}
		errs = append(errs, fmt.Errorf("%s/%s/%s: %w", o.Task.Name, o.Strategy, o.Mode, cause))
	}
	return errors.Join(errs...)
}
