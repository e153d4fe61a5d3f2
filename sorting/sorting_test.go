package sorting_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/taskbench/builder"
	"github.com/katalvlaran/taskbench/parallel"
	"github.com/katalvlaran/taskbench/perf"
	"github.com/katalvlaran/taskbench/sorting"
	"github.com/katalvlaran/taskbench/task"
	"github.com/katalvlaran/taskbench/taskdata"
	"github.com/stretchr/testify/require"
)

func strategies() []parallel.Strategy {
	return []parallel.Strategy{parallel.Sequential(), parallel.Static(4), parallel.ForkJoin(3, 64)}
}

func randomInts(t *testing.T, n int, seed uint32) []int32 {
	t.Helper()
	xs, err := builder.RandomInts(n, builder.WithSeed(seed))
	require.NoError(t, err)
	return xs
}

func sortedCopy(xs []int32) []int32 {
	c := slices.Clone(xs)
	slices.Sort(c)
	return c
}

// sortTask runs one full cycle over one or two inputs.
func sortTask(t *testing.T, a, b []int32, opts ...sorting.Option) []int32 {
	t.Helper()
	out := make([]int32, len(a)+len(b))
	d := taskdata.New().AddInput(taskdata.Slice(a)).AddOutput(taskdata.Slice(out))
	if b != nil {
		d.AddInput(taskdata.Slice(b))
	}
	tk := sorting.NewTask(d, opts...)
	require.NoError(t, tk.Validate())
	require.NoError(t, tk.Prepare())
	require.NoError(t, tk.Run())
	require.NoError(t, tk.Finalize())
	return out
}

func TestShell(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17, 1000} {
		xs := randomInts(t, n, uint32(n)+1)
		want := sortedCopy(xs)
		sorting.Shell(xs)
		require.Equal(t, want, xs)
	}
}

func TestBatcher(t *testing.T) {
	for _, s := range strategies() {
		for _, n := range []int{0, 1, 2, 4, 64, 1 << 13} {
			xs := randomInts(t, n, 7)
			want := sortedCopy(xs)
			require.NoError(t, sorting.Batcher(s, xs))
			require.Equal(t, want, xs, "%s n=%d", s.Name(), n)
		}
	}
	require.ErrorIs(t, sorting.Batcher(parallel.Sequential(), make([]int32, 6)), sorting.ErrNotPowerOfTwo)
}

func TestPaddedLen(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 2: 2, 3: 4, 5: 8, 1024: 1024, 1025: 2048} {
		require.Equal(t, want, sorting.PaddedLen(n), "n=%d", n)
	}
}

func TestRadix(t *testing.T) {
	edge := []int32{0, -1, math.MaxInt32, math.MinInt32, 1, -1, math.MinInt32 + 1, 256, -256}
	for _, s := range strategies() {
		xs := slices.Clone(edge)
		sorting.Radix(s, xs, nil)
		require.Equal(t, sortedCopy(edge), xs, s.Name())

		big := randomInts(t, 10_001, 3)
		want := sortedCopy(big)
		sorting.Radix(s, big, make([]int32, len(big)))
		require.Equal(t, want, big, s.Name())
	}
	sorting.Radix(parallel.Static(2), nil, nil)
}

func TestIsSorted(t *testing.T) {
	for _, s := range strategies() {
		require.True(t, sorting.IsSorted(s, nil))
		require.True(t, sorting.IsSorted(s, []int32{1, 1, 2, 9}))
		xs := sortedCopy(randomInts(t, 5000, 11))
		require.True(t, sorting.IsSorted(s, xs))
		xs[4000], xs[4001] = xs[4001]+1, xs[4000]
		require.False(t, sorting.IsSorted(s, xs), s.Name())
	}
}

// TestTask_ConcatenatesAndSorts sorts two N-arrays into one sorted 2N array,
// then feeds the result back in to check re-sorting changes nothing.
func TestTask_ConcatenatesAndSorts(t *testing.T) {
	const n = 3000
	a, b := randomInts(t, n, 1), randomInts(t, n, 2)
	want := sortedCopy(append(slices.Clone(a), b...))

	for _, algo := range []sorting.Algorithm{sorting.AlgoShell, sorting.AlgoBatcher, sorting.AlgoRadix} {
		for _, s := range strategies() {
			name := algo.String() + "/" + s.Name()
			out := sortTask(t, a, b, sorting.WithAlgorithm(algo), sorting.WithStrategy(s))
			require.Len(t, out, 2*n, name)
			require.Equal(t, want, out, name)

			again := sortTask(t, out, nil, sorting.WithAlgorithm(algo), sorting.WithStrategy(s))
			require.Equal(t, out, again, name)
		}
	}
}

func TestTask_TaskRunMatchesSingleCycle(t *testing.T) {
	a := randomInts(t, 777, 5)
	want := sortedCopy(a)
	out := make([]int32, len(a))
	d := taskdata.New().AddInput(taskdata.Slice(a)).AddOutput(taskdata.Slice(out))
	res, err := perf.New(sorting.NewTask(d, sorting.WithAlgorithm(sorting.AlgoBatcher), sorting.WithStrategy(parallel.Static(2)))).
		TaskRun(perf.Attr{Iterations: 3, Timer: perf.WallClock()})
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.Equal(t, want, out)
	require.NotEqual(t, want, a) // inputs are never written
}

func TestTask_Failures(t *testing.T) {
	noOut := taskdata.New().AddInput(taskdata.Slice([]int32{3, 1}))
	err := sorting.NewTask(noOut).Validate()
	require.ErrorIs(t, err, task.ErrValidationFailed)
	require.ErrorIs(t, err, taskdata.ErrSlotMissing)

	badSecond := taskdata.New().AddInput(taskdata.Slice([]int32{3})).AddInput(taskdata.Slice([]float64{1})).
		AddOutput(taskdata.Slice(make([]int32, 2)))
	require.ErrorIs(t, sorting.NewTask(badSecond).Validate(), taskdata.ErrKindMismatch)

	badAlgo := taskdata.New().AddInput(taskdata.Slice([]int32{3})).AddOutput(taskdata.Slice(make([]int32, 1)))
	require.ErrorIs(t, sorting.NewTask(badAlgo, sorting.WithAlgorithm(9)).Validate(), task.ErrValidationFailed)

	out := []int32{0}
	short := taskdata.New().AddInput(taskdata.Slice([]int32{3, 1})).AddOutput(taskdata.Slice(out))
	tk := sorting.NewTask(short)
	require.NoError(t, tk.Validate())
	require.NoError(t, tk.Prepare())
	require.NoError(t, tk.Run())
	require.ErrorIs(t, tk.Finalize(), task.ErrInsufficientOutput)
	require.Equal(t, []int32{0}, out)
}

func TestAlgorithmNames(t *testing.T) {
	for _, a := range []sorting.Algorithm{sorting.AlgoShell, sorting.AlgoBatcher, sorting.AlgoRadix} {
		got, ok := sorting.ParseAlgorithm(a.String())
		require.True(t, ok)
		require.Equal(t, a, got)
	}
	_, ok := sorting.ParseAlgorithm("bogo")
	require.False(t, ok)
	require.Equal(t, "unknown", sorting.Algorithm(-1).String())
	require.Panics(t, func() { sorting.WithStrategy(nil) })
}
