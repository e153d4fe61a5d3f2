package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/taskbench/builder"
	"github.com/katalvlaran/taskbench/matrix"
	"github.com/katalvlaran/taskbench/parallel"
	"github.com/katalvlaran/taskbench/perf"
	"github.com/katalvlaran/taskbench/task"
	"github.com/katalvlaran/taskbench/taskdata"
	"github.com/stretchr/testify/require"
)

func strategies() []parallel.Strategy {
	return []parallel.Strategy{parallel.Sequential(), parallel.Static(4), parallel.ForkJoin(3, 8)}
}

// randomSparse returns a row-major rows×cols matrix with roughly one cell in
// density non-zero, small integer parts so sums stay exact.
func randomSparse(t *testing.T, rows, cols, density int, seed uint32) []complex128 {
	t.Helper()
	rng := builder.NewMT19937(seed)
	out := make([]complex128, rows*cols)
	for i := range out {
		if builder.UniformInt(rng, 0, int32(density-1)) != 0 {
			continue
		}
		re := builder.UniformInt(rng, -5, 5)
		im := builder.UniformInt(rng, -5, 5)
		out[i] = complex(float64(re), float64(im))
	}
	return out
}

func TestCCS_RoundTrip(t *testing.T) {
	dense := []complex128{
		1, 0, 2i,
		0, 0, 0,
		3 - 1i, 4, 0,
	}
	m, err := matrix.FromDense(dense, 3, 3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 4, m.NNZ())
	require.Equal(t, []int{0, 2, 3, 4}, m.ColPtr)
	require.Equal(t, []int{0, 2, 2, 0}, m.RowIdx)
	require.Equal(t, dense, m.ToDense())

	v, err := m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 3-1i, v)
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, complex128(0), v)
	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	dst := []complex128{9, 9, 9, 9, 9, 9, 9, 9, 9, 7}
	require.NoError(t, m.ToDenseInto(dst))
	require.Equal(t, append(dense, 7), dst)
	require.ErrorIs(t, m.ToDenseInto(make([]complex128, 8)), matrix.ErrDimensionMismatch)
}

func TestCCS_Errors(t *testing.T) {
	_, err := matrix.NewCCS(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromDense(make([]complex128, 5), 2, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	// 2^62 × 4 wraps to 0, which must not pass for an empty slice.
	_, err = matrix.FromDense(nil, 1<<62, 4)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewCCS(math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.MulDense(nil, nil, 1<<62, 4, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	a, _ := matrix.NewCCS(2, 3)
	b, _ := matrix.NewCCS(2, 3)
	_, err = matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MulDense(make([]complex128, 4), make([]complex128, 4), 2, 2, 3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulDense(nil, nil, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestTranspose(t *testing.T) {
	const rows, cols = 7, 5
	dense := randomSparse(t, rows, cols, 3, 4)
	m, err := matrix.FromDense(dense, rows, cols)
	require.NoError(t, err)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, cols, tr.Rows())
	require.Equal(t, rows, tr.Cols())
	got := tr.ToDense()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.Equal(t, dense[i*cols+j], got[j*rows+i])
		}
	}
	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.Equal(t, m, back)
}

// TestMul_MatchesDense checks the sparse product against the dense
// reference for every strategy; integer parts keep the sums exact.
func TestMul_MatchesDense(t *testing.T) {
	const p, q, r = 23, 31, 19
	a := randomSparse(t, p, q, 4, 1)
	b := randomSparse(t, q, r, 3, 2)
	want, err := matrix.MulDense(a, b, p, q, r)
	require.NoError(t, err)

	ca, err := matrix.FromDense(a, p, q)
	require.NoError(t, err)
	cb, err := matrix.FromDense(b, q, r)
	require.NoError(t, err)

	seq, err := matrix.Mul(ca, cb)
	require.NoError(t, err)
	require.Equal(t, want, seq.ToDense())
	for _, s := range strategies() {
		got, err := matrix.MulWith(s, ca, cb)
		require.NoError(t, err)
		require.Equal(t, seq, got, s.Name())
	}
}

func TestMul_DropsCancellation(t *testing.T) {
	a, _ := matrix.FromDense([]complex128{1, 1}, 1, 2)
	b, _ := matrix.FromDense([]complex128{1i, -1i}, 2, 1)
	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, prod.NNZ())
}

func stripedData(t *testing.T, p, q, r, stride int) (*taskdata.TaskData, []complex128, []complex128) {
	t.Helper()
	lhs, rhs, want, err := builder.StripedComplex(p, q, r, stride)
	require.NoError(t, err)
	out := make([]complex128, p*r)
	d := taskdata.New().
		AddInput(taskdata.Slice(lhs)).AddInputMeta(int64(p), int64(q)).
		AddInput(taskdata.Slice(rhs)).AddInputMeta(int64(q), int64(r)).
		AddOutput(taskdata.Slice(out)).AddOutputMeta(int64(p), int64(r))
	return d, out, want
}

// TestTask_StripedProduct multiplies the 501×500 by 500×501 striped operands:
// 2q at every (4i, 4j), zero elsewhere, for both timing modes.
func TestTask_StripedProduct(t *testing.T) {
	const p, q, r, stride = 501, 500, 501, 4
	for _, s := range strategies() {
		d, out, want := stripedData(t, p, q, r, stride)
		res, err := perf.New(matrix.NewTask(d, matrix.WithStrategy(s))).
			PipelineRun(perf.Attr{Iterations: 2, Timer: perf.WallClock()})
		require.NoError(t, err)
		require.True(t, res.Valid)
		require.Equal(t, want, out, s.Name())
		require.Equal(t, complex(2*q, 0), out[4*r+8])
		require.Equal(t, complex128(0), out[4*r+9])

		d, out, _ = stripedData(t, p, q, r, stride)
		res, err = perf.New(matrix.NewTask(d, matrix.WithStrategy(s))).
			TaskRun(perf.Attr{Iterations: 2, Timer: perf.WallClock()})
		require.NoError(t, err)
		require.True(t, res.Valid)
		require.Equal(t, want, out, s.Name())
	}
}

func TestTask_ValidationFailures(t *testing.T) {
	base := func() *taskdata.TaskData {
		d, _, _ := stripedData(t, 3, 2, 4, 2)
		return d
	}
	cases := map[string]struct {
		mutate func(d *taskdata.TaskData)
		want   error
	}{
		"meta count":    {func(d *taskdata.TaskData) { d.InputsMeta = d.InputsMeta[:3] }, matrix.ErrMetaLayout},
		"inner dims":    {func(d *taskdata.TaskData) { d.InputsMeta[2] = 3 }, matrix.ErrDimensionMismatch},
		"zero dim":      {func(d *taskdata.TaskData) { d.InputsMeta[0] = 0 }, matrix.ErrBadShape},
		"lhs length":    {func(d *taskdata.TaskData) { d.InputsMeta[0] = 4 }, matrix.ErrDimensionMismatch},
		"out meta":      {func(d *taskdata.TaskData) { d.OutputsMeta = nil }, matrix.ErrMetaLayout},
		"out shape":     {func(d *taskdata.TaskData) { d.OutputsMeta[1] = 5 }, matrix.ErrDimensionMismatch},
		"rhs kind":      {func(d *taskdata.TaskData) { d.Inputs[1] = taskdata.Slice(make([]float64, 8)) }, taskdata.ErrKindMismatch},
		"missing input": {func(d *taskdata.TaskData) { d.Inputs = d.Inputs[:1] }, taskdata.ErrSlotMissing},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := base()
			tc.mutate(d)
			err := matrix.NewTask(d).Validate()
			require.ErrorIs(t, err, task.ErrValidationFailed)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestTask_OverflowingShapeFailsValidation declares dimensions whose products
// wrap to zero next to empty operands; Validate must reject them so Prepare is
// never reached.
func TestTask_OverflowingShapeFailsValidation(t *testing.T) {
	d := taskdata.New().
		AddInput(taskdata.Slice([]complex128{})).
		AddInput(taskdata.Slice([]complex128{})).
		AddInputMeta(1<<62, 4, 4, 1<<62).
		AddOutput(taskdata.Slice([]complex128{})).
		AddOutputMeta(1<<62, 1<<62)
	tk := matrix.NewTask(d)
	err := tk.Validate()
	require.ErrorIs(t, err, task.ErrValidationFailed)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Equal(t, task.Failed, tk.State())
}

func TestTask_InsufficientOutput(t *testing.T) {
	d, _, _ := stripedData(t, 3, 2, 4, 2)
	short := make([]complex128, 11)
	d.Outputs[0] = taskdata.Slice(short)
	tk := matrix.NewTask(d)
	require.NoError(t, tk.Validate())
	require.NoError(t, tk.Prepare())
	require.NoError(t, tk.Run())
	require.ErrorIs(t, tk.Finalize(), task.ErrInsufficientOutput)
	require.Equal(t, make([]complex128, 11), short)
}
