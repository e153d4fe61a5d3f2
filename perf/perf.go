// SPDX-License-Identifier: MIT

package perf

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/taskbench/task"
)

// Perf drives one Target for its whole lifetime. Apart from the target and
// its options it keeps no state: each measurement call starts from scratch
// and returns its own Results.
type Perf struct {
	target Target
	opts   Options
}

// New returns a Perf around target. It panics with ErrNilTarget on nil.
func New(target Target, opts ...Option) *Perf {
	if target == nil {
		panic(ErrNilTarget)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Perf{target: target, opts: cfg}
}

// PipelineRun times attr.Iterations full Validate→Prepare→Run→Finalize cycles.
func (p *Perf) PipelineRun(attr Attr) (*Results, error) {
	if err := attr.validate(); err != nil {
		return nil, err
	}
	res := &Results{Mode: ModePipeline}
	log := p.opts.Logger.With("mode", res.Mode.String())
	log.Debug("perf: start", "iterations", attr.Iterations)

	samples := make([]float64, 0, attr.Iterations)
	for i := 0; i < attr.Iterations; i++ {
		begin := attr.Timer()
		if err := p.target.Validate(); err != nil {
			log.Debug("perf: validation failed", "iteration", i, "error", err)
			return invalid(res, err), nil
		}
		if err := p.cycle(); err != nil {
			log.Debug("perf: stage failed", "iteration", i, "error", err)
			return invalid(res, err), err
		}
		samples = append(samples, attr.Timer()-begin)
	}
	return p.done(log, res, samples), nil
}

// TaskRun times attr.Iterations Run calls between a single untimed
// Validate/Prepare and a single untimed Finalize.
func (p *Perf) TaskRun(attr Attr) (*Results, error) {
	if err := attr.validate(); err != nil {
		return nil, err
	}
	res := &Results{Mode: ModeTaskRun}
	log := p.opts.Logger.With("mode", res.Mode.String())
	log.Debug("perf: start", "iterations", attr.Iterations)

	if err := p.target.Validate(); err != nil {
		log.Debug("perf: validation failed", "error", err)
		return invalid(res, err), nil
	}
	if err := p.target.Prepare(); err != nil {
		return invalid(res, err), err
	}
	if b, ok := p.target.(runBatcher); ok {
		b.BeginRunBatch()
	}

	samples := make([]float64, 0, attr.Iterations)
	for i := 0; i < attr.Iterations; i++ {
		begin := attr.Timer()
		if err := p.target.Run(); err != nil {
			log.Debug("perf: run failed", "iteration", i, "error", err)
			return invalid(res, err), err
		}
		samples = append(samples, attr.Timer()-begin)
	}

	if err := p.target.Finalize(); err != nil {
		return invalid(res, err), err
	}
	return p.done(log, res, samples), nil
}

// cycle runs the three stages that follow a successful Validate.
func (p *Perf) cycle() error {
	if err := p.target.Prepare(); err != nil {
		return err
	}
	if err := p.target.Run(); err != nil {
		return err
	}
	return p.target.Finalize()
}

func (p *Perf) done(log *slog.Logger, res *Results, samples []float64) *Results {
	res.Valid = true
	res.Samples = samples
	res.TimeSec = mean(samples)
	log.Debug("perf: done", "samples", len(samples), "mean_sec", res.TimeSec)
	return res
}

// invalid marks res failed. Samples gathered before the failure are dropped:
// they do not describe a complete measurement.
func invalid(res *Results, err error) *Results {
	res.Valid = false
	res.Samples = nil
	res.TimeSec = 0
	res.Err = err
	return res
}

// IsValidationFailure reports whether a report was invalidated by validation
// rather than by a stage failure.
func IsValidationFailure(r *Results) bool {
	return r != nil && !r.Valid && errors.Is(r.Err, task.ErrValidationFailed)
}
