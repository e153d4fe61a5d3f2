// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/taskbench/parallel"
	"github.com/katalvlaran/taskbench/task"
	"github.com/katalvlaran/taskbench/taskdata"
)

// Options configures a multiplication task.
type Options struct {
	Strategy parallel.Strategy // default Sequential
}

// Option represents a functional option for configuring a task.
type Option func(*Options)

// WithStrategy sets the parallel strategy. Panics on nil.
func WithStrategy(s parallel.Strategy) Option {
	if s == nil {
		panic("matrix: WithStrategy(nil)")
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns the sequential configuration.
func DefaultOptions() Options {
	return Options{Strategy: parallel.Sequential()}
}

// NewTask wraps d in a lifecycle-guarded sparse multiplication task.
func NewTask(d *taskdata.TaskData, opts ...Option) *task.Task {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return task.New(d, &stages{opts: cfg})
}

type stages struct {
	opts Options

	lhs, rhs *CCS
	product  *CCS
}

// shape is the decoded slot layout.
type shape struct {
	p, q, r  int
	lhs, rhs []complex128
}

func decode(d *taskdata.TaskData) (shape, error) {
	var sh shape
	if d == nil {
		return sh, taskdata.ErrNilData
	}
	if len(d.InputsMeta) != 4 {
		return sh, fmt.Errorf("%w: %d input meta values, want 4", ErrMetaLayout, len(d.InputsMeta))
	}
	p, q, q2, r := d.InputsMeta[0], d.InputsMeta[1], d.InputsMeta[2], d.InputsMeta[3]
	if p <= 0 || q <= 0 || q2 <= 0 || r <= 0 {
		return sh, fmt.Errorf("%w: p=%d q=%d q=%d r=%d", ErrBadShape, p, q, q2, r)
	}
	if q != q2 {
		return sh, fmt.Errorf("%w: lhs has %d columns, rhs has %d rows", ErrDimensionMismatch, q, q2)
	}
	if p > math.MaxInt || q > math.MaxInt || r > math.MaxInt {
		return sh, fmt.Errorf("%w: p=%d q=%d r=%d exceeds int", ErrBadShape, p, q, r)
	}
	sh.p, sh.q, sh.r = int(p), int(q), int(r)
	// every product below is used as a length; none may wrap
	if !cellsFit(sh.p, sh.q) || !cellsFit(sh.q, sh.r) || !cellsFit(sh.p, sh.r) {
		return sh, fmt.Errorf("%w: p=%d q=%d r=%d overflows int", ErrBadShape, p, q, r)
	}

	var err error
	if sh.lhs, err = taskdata.InputAs[complex128](d, 0); err != nil {
		return sh, err
	}
	if sh.rhs, err = taskdata.InputAs[complex128](d, 1); err != nil {
		return sh, err
	}
	if len(sh.lhs) != sh.p*sh.q || len(sh.rhs) != sh.q*sh.r {
		return sh, fmt.Errorf("%w: len(lhs)=%d len(rhs)=%d", ErrDimensionMismatch, len(sh.lhs), len(sh.rhs))
	}
	return sh, nil
}

// Validate checks the metadata layout, operand lengths and output slot.
func (t *stages) Validate(d *taskdata.TaskData) error {
	sh, err := decode(d)
	if err != nil {
		return err
	}
	if len(d.OutputsMeta) != 2 {
		return fmt.Errorf("%w: %d output meta values, want 2", ErrMetaLayout, len(d.OutputsMeta))
	}
	if d.OutputsMeta[0] != int64(sh.p) || d.OutputsMeta[1] != int64(sh.r) {
		return fmt.Errorf("%w: output declared %dx%d, product is %dx%d",
			ErrDimensionMismatch, d.OutputsMeta[0], d.OutputsMeta[1], sh.p, sh.r)
	}
	_, err = taskdata.OutputAs[complex128](d, 0)
	return err
}

// Prepare compresses both operands.
func (t *stages) Prepare(d *taskdata.TaskData) error {
	sh, err := decode(d)
	if err != nil {
		return err
	}
	if t.lhs, err = FromDense(sh.lhs, sh.p, sh.q); err != nil {
		return err
	}
	if t.rhs, err = FromDense(sh.rhs, sh.q, sh.r); err != nil {
		return err
	}
	t.product = nil
	return nil
}

func (t *stages) Run() error {
	prod, err := MulWith(t.opts.Strategy, t.lhs, t.rhs)
	if err != nil {
		return err
	}
	t.product = prod
	return nil
}

// Finalize expands the product row-major into output 0.
func (t *stages) Finalize(d *taskdata.TaskData) error {
	out, err := taskdata.OutputAs[complex128](d, 0)
	if err != nil {
		return err
	}
	if need := t.product.Rows() * t.product.Cols(); len(out) < need {
		return fmt.Errorf("matrix: output holds %d, need %d: %w", len(out), need, task.ErrInsufficientOutput)
	}
	return t.product.ToDenseInto(out)
}
