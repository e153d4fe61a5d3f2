// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/taskbench/task"
	"github.com/katalvlaran/taskbench/taskdata"
)

// NewTask wraps d in a lifecycle-guarded sorting task.
func NewTask(d *taskdata.TaskData, opts ...Option) *task.Task {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return task.New(d, &stages{opts: cfg})
}

type stages struct {
	opts Options

	n       int     // total input length
	work    []int32 // len n, or PaddedLen(n) for Batcher
	scratch []int32 // Radix only
}

// inputs returns input 0 and, when present, input 1.
func inputs(d *taskdata.TaskData) (first, second []int32, err error) {
	if first, err = taskdata.InputAs[int32](d, 0); err != nil {
		return nil, nil, err
	}
	second, err = taskdata.InputAs[int32](d, 1)
	if errors.Is(err, taskdata.ErrSlotMissing) {
		return first, nil, nil
	}
	return first, second, err
}

func (t *stages) Validate(d *taskdata.TaskData) error {
	if _, _, err := inputs(d); err != nil {
		return err
	}
	if _, err := taskdata.OutputAs[int32](d, 0); err != nil {
		return err
	}
	if !t.opts.Algorithm.valid() {
		return fmt.Errorf("sorting: unknown algorithm %d", t.opts.Algorithm)
	}
	return nil
}

// Prepare concatenates the inputs into private storage.
func (t *stages) Prepare(d *taskdata.TaskData) error {
	first, second, err := inputs(d)
	if err != nil {
		return err
	}
	t.n = len(first) + len(second)

	size := t.n
	if t.opts.Algorithm == AlgoBatcher {
		size = PaddedLen(t.n)
	}
	t.work = make([]int32, size)
	copy(t.work, first)
	copy(t.work[len(first):], second)
	for i := t.n; i < size; i++ {
		t.work[i] = math.MaxInt32
	}

	t.scratch = nil
	if t.opts.Algorithm == AlgoRadix {
		t.scratch = make([]int32, t.n)
	}
	return nil
}

// Run sorts the private buffer; sorting it again is a no-op.
func (t *stages) Run() error {
	switch t.opts.Algorithm {
	case AlgoShell:
		Shell(t.work)
	case AlgoBatcher:
		return Batcher(t.opts.Strategy, t.work)
	case AlgoRadix:
		Radix(t.opts.Strategy, t.work, t.scratch)
	}
	return nil
}

func (t *stages) Finalize(d *taskdata.TaskData) error {
	out, err := taskdata.OutputAs[int32](d, 0)
	if err != nil {
		return err
	}
	if len(out) < t.n {
		return fmt.Errorf("sorting: output holds %d, need %d: %w", len(out), t.n, task.ErrInsufficientOutput)
	}
	copy(out, t.work[:t.n])
	return nil
}
