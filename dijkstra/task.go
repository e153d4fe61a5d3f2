// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/taskbench/task"
	"github.com/katalvlaran/taskbench/taskdata"
)

// NewTask wraps d in a lifecycle-guarded shortest-path task.
func NewTask(d *taskdata.TaskData, opts ...Option) *task.Task {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return task.New(d, &stages{opts: cfg})
}

// stages is the private state of one shortest-path task.
type stages struct {
	opts Options

	w    []int32 // private copy of input 0
	n    int
	src  int
	csr  *CSR // AlgoHeap only
	dist []int64
}

// inspect decodes the input slots without touching private state.
func inspect(d *taskdata.TaskData) (w []int32, n, src int, err error) {
	if w, err = taskdata.InputAs[int32](d, 0); err != nil {
		return nil, 0, 0, err
	}
	if len(w) == 0 {
		return nil, 0, 0, ErrEmptyGraph
	}
	n = int(math.Sqrt(float64(len(w))))
	for n*n > len(w) {
		n--
	}
	for (n+1)*(n+1) <= len(w) {
		n++
	}
	if n*n != len(w) {
		return nil, 0, 0, fmt.Errorf("%w: len=%d", ErrNotSquare, len(w))
	}

	s, err := d.InputMeta(0)
	switch {
	case errors.Is(err, taskdata.ErrSlotMissing):
		s = 0
	case err != nil:
		return nil, 0, 0, err
	}
	if s < 0 || s >= int64(n) {
		return nil, 0, 0, fmt.Errorf("%w: source=%d n=%d", ErrBadSource, s, n)
	}
	return w, n, int(s), nil
}

// Validate checks shape, source range, the output slot type and that no
// weight is below NoEdge. The weight scan is spread over the strategy and
// stops early once any worker finds a bad cell.
func (t *stages) Validate(d *taskdata.TaskData) error {
	w, _, _, err := inspect(d)
	if err != nil {
		return err
	}
	if _, err = taskdata.OutputAs[int64](d, 0); err != nil {
		return err
	}

	var bad atomic.Bool
	t.opts.Strategy.For(len(w), func(lo, hi int) {
		for i := lo; i < hi && !bad.Load(); i++ {
			if w[i] < NoEdge {
				bad.Store(true)
			}
		}
	})
	if bad.Load() {
		return ErrBadWeight
	}
	return nil
}

func (t *stages) Prepare(d *taskdata.TaskData) error {
	w, n, src, err := inspect(d)
	if err != nil {
		return err
	}
	t.w = append(t.w[:0], w...) // private copy, reused across cycles
	t.n, t.src = n, src
	t.dist = make([]int64, n)
	t.csr = nil
	if t.opts.Algorithm == AlgoHeap {
		t.csr = NewCSR(t.opts.Strategy, w, n)
	}
	return nil
}

func (t *stages) Run() error {
	switch t.opts.Algorithm {
	case AlgoDense:
		Dense(t.opts.Strategy, t.w, t.n, t.src, t.dist)
	case AlgoHeap:
		Heap(t.csr, t.src, t.dist)
	default:
		return fmt.Errorf("dijkstra: unknown algorithm %v", t.opts.Algorithm)
	}
	return nil
}

func (t *stages) Finalize(d *taskdata.TaskData) error {
	out, err := taskdata.OutputAs[int64](d, 0)
	if err != nil {
		return err
	}
	if len(out) < t.n {
		return fmt.Errorf("dijkstra: output holds %d, need %d: %w", len(out), t.n, task.ErrInsufficientOutput)
	}
	copy(out, t.dist)
	return nil
}
