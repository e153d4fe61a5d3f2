// SPDX-License-Identifier: MIT

package suite

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/taskbench/builder"
	"github.com/katalvlaran/taskbench/dijkstra"
	"github.com/katalvlaran/taskbench/internal/config"
	"github.com/katalvlaran/taskbench/matrix"
	"github.com/katalvlaran/taskbench/parallel"
	"github.com/katalvlaran/taskbench/sorting"
	"github.com/katalvlaran/taskbench/task"
	"github.com/katalvlaran/taskbench/taskdata"
)

var (
	// ErrParity indicates a task output that differs from the sequential reference.
	ErrParity = errors.New("suite: output differs from reference")

	// ErrUnknownKind indicates a task kind with no fixture.
	ErrUnknownKind = errors.New("suite: unknown task kind")
)

// fixture holds the generated inputs of one configured task and its expected
// output. Inputs are shared read-only by every variant; each variant gets a
// fresh descriptor and output slot from build.
type fixture interface {
	// build returns a new task running under s and the descriptor it owns.
	build(s parallel.Strategy) (*task.Task, *taskdata.TaskData)
	// check compares output 0 of d with the reference.
	check(d *taskdata.TaskData) error
}

func newFixture(t config.Task) (fixture, error) {
	switch t.Kind {
	case config.KindDijkstra:
		return newGraphFixture(t)
	case config.KindSorting:
		return newSortFixture(t)
	case config.KindMatrix:
		return newMatrixFixture(t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, t.Kind)
	}
}

type graphFixture struct {
	w    []int32
	n    int
	src  int
	algo dijkstra.Algorithm
	want []int64
}

func newGraphFixture(t config.Task) (*graphFixture, error) {
	algo, ok := dijkstra.ParseAlgorithm(t.Algorithm)
	if !ok {
		return nil, fmt.Errorf("suite: %s: unknown dijkstra algorithm %q", t.Name, t.Algorithm)
	}
	w, err := builder.DenseGraph(t.Size, builder.WithSeed(t.Seed))
	if err != nil {
		return nil, fmt.Errorf("suite: %s: %w", t.Name, err)
	}
	want := make([]int64, t.Size)
	dijkstra.Dense(parallel.Sequential(), w, t.Size, t.Source, want)
	return &graphFixture{w: w, n: t.Size, src: t.Source, algo: algo, want: want}, nil
}

func (f *graphFixture) build(s parallel.Strategy) (*task.Task, *taskdata.TaskData) {
	d := taskdata.New().
		AddInput(taskdata.Slice(f.w)).
		AddInputMeta(int64(f.src)).
		AddOutput(taskdata.Slice(make([]int64, f.n)))
	return dijkstra.NewTask(d, dijkstra.WithStrategy(s), dijkstra.WithAlgorithm(f.algo)), d
}

func (f *graphFixture) check(d *taskdata.TaskData) error {
	got, err := taskdata.OutputAs[int64](d, 0)
	if err != nil {
		return err
	}
	return compare(got, f.want)
}

type sortFixture struct {
	arrays [][]int32
	algo   sorting.Algorithm
	want   []int32
}

func newSortFixture(t config.Task) (*sortFixture, error) {
	algo := sorting.DefaultOptions().Algorithm
	if t.Algorithm != "" {
		var ok bool
		if algo, ok = sorting.ParseAlgorithm(t.Algorithm); !ok {
			return nil, fmt.Errorf("suite: %s: unknown sorting algorithm %q", t.Name, t.Algorithm)
		}
	}
	count := max(t.Arrays, 1)
	f := &sortFixture{algo: algo, arrays: make([][]int32, count)}
	for i := range count {
		xs, err := builder.RandomInts(t.Size, builder.WithSeed(t.Seed+uint32(i)))
		if err != nil {
			return nil, fmt.Errorf("suite: %s: %w", t.Name, err)
		}
		f.arrays[i] = xs
		f.want = append(f.want, xs...)
	}
	slices.Sort(f.want)
	return f, nil
}

func (f *sortFixture) build(s parallel.Strategy) (*task.Task, *taskdata.TaskData) {
	d := taskdata.New()
	for _, xs := range f.arrays {
		d.AddInput(taskdata.Slice(xs))
	}
	d.AddOutput(taskdata.Slice(make([]int32, len(f.want))))
	return sorting.NewTask(d, sorting.WithStrategy(s), sorting.WithAlgorithm(f.algo)), d
}

func (f *sortFixture) check(d *taskdata.TaskData) error {
	got, err := taskdata.OutputAs[int32](d, 0)
	if err != nil {
		return err
	}
	return compare(got, f.want)
}

type matrixFixture struct {
	p, q, r  int
	lhs, rhs []complex128
	want     []complex128
}

func newMatrixFixture(t config.Task) (*matrixFixture, error) {
	lhs, rhs, want, err := builder.StripedComplex(t.P, t.Q, t.R, t.Stride)
	if err != nil {
		return nil, fmt.Errorf("suite: %s: %w", t.Name, err)
	}
	return &matrixFixture{p: t.P, q: t.Q, r: t.R, lhs: lhs, rhs: rhs, want: want}, nil
}

func (f *matrixFixture) build(s parallel.Strategy) (*task.Task, *taskdata.TaskData) {
	d := taskdata.New().
		AddInput(taskdata.Slice(f.lhs)).
		AddInput(taskdata.Slice(f.rhs)).
		AddInputMeta(int64(f.p), int64(f.q), int64(f.q), int64(f.r)).
		AddOutput(taskdata.Slice(make([]complex128, f.p*f.r))).
		AddOutputMeta(int64(f.p), int64(f.r))
	return matrix.NewTask(d, matrix.WithStrategy(s)), d
}

func (f *matrixFixture) check(d *taskdata.TaskData) error {
	got, err := taskdata.OutputAs[complex128](d, 0)
	if err != nil {
		return err
	}
	return compare(got, f.want)
}

// compare reports the first differing index, if any.
func compare[T comparable](got, want []T) error {
	if len(got) != len(want) {
		return fmt.Errorf("%w: len %d, want %d", ErrParity, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: [%d] = %v, want %v", ErrParity, i, got[i], want[i])
		}
	}
	return nil
}
