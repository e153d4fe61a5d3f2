// SPDX-License-Identifier: MIT

package taskdata

import "fmt"

// TaskData is the caller-populated bundle of input/output slots and scalar
// metadata that a task operates on. Fields are exported so callers can build
// descriptors literally; the Add* helpers are a chainable alternative.
type TaskData struct {
	Inputs      []Buffer // ordered input slots
	InputsMeta  []int64  // ordered input scalars (sizes, source index, ...)
	Outputs     []Buffer // ordered output slots, pre-sized by the caller
	OutputsMeta []int64  // ordered output scalars
}

// New returns an empty descriptor.
func New() *TaskData { return &TaskData{} }

// AddInput appends an input slot and returns d for chaining.
func (d *TaskData) AddInput(b Buffer) *TaskData {
	d.Inputs = append(d.Inputs, b)
	return d
}

// AddInputMeta appends input metadata scalars in order.
func (d *TaskData) AddInputMeta(v ...int64) *TaskData {
	d.InputsMeta = append(d.InputsMeta, v...)
	return d
}

// AddOutput appends an output slot and returns d for chaining.
func (d *TaskData) AddOutput(b Buffer) *TaskData {
	d.Outputs = append(d.Outputs, b)
	return d
}

// AddOutputMeta appends output metadata scalars in order.
func (d *TaskData) AddOutputMeta(v ...int64) *TaskData {
	d.OutputsMeta = append(d.OutputsMeta, v...)
	return d
}

// Input returns input slot i.
func (d *TaskData) Input(i int) (Buffer, error) {
	if d == nil {
		return Buffer{}, ErrNilData
	}
	if i < 0 || i >= len(d.Inputs) {
		return Buffer{}, slotErrorf("input", i, len(d.Inputs))
	}
	return d.Inputs[i], nil
}

// Output returns output slot i.
func (d *TaskData) Output(i int) (Buffer, error) {
	if d == nil {
		return Buffer{}, ErrNilData
	}
	if i < 0 || i >= len(d.Outputs) {
		return Buffer{}, slotErrorf("output", i, len(d.Outputs))
	}
	return d.Outputs[i], nil
}

// InputMeta returns input metadata scalar i.
func (d *TaskData) InputMeta(i int) (int64, error) {
	if d == nil {
		return 0, ErrNilData
	}
	if i < 0 || i >= len(d.InputsMeta) {
		return 0, slotErrorf("input meta", i, len(d.InputsMeta))
	}
	return d.InputsMeta[i], nil
}

// OutputMeta returns output metadata scalar i.
func (d *TaskData) OutputMeta(i int) (int64, error) {
	if d == nil {
		return 0, ErrNilData
	}
	if i < 0 || i >= len(d.OutputsMeta) {
		return 0, slotErrorf("output meta", i, len(d.OutputsMeta))
	}
	return d.OutputsMeta[i], nil
}

// InputAs returns input slot i viewed as []T.
func InputAs[T Element](d *TaskData, i int) ([]T, error) {
	b, err := d.Input(i)
	if err != nil {
		return nil, err
	}
	s, err := View[T](b)
	if err != nil {
		return nil, fmt.Errorf("input %d: %w", i, err)
	}
	return s, nil
}

// OutputAs returns output slot i viewed as []T.
func OutputAs[T Element](d *TaskData, i int) ([]T, error) {
	b, err := d.Output(i)
	if err != nil {
		return nil, err
	}
	s, err := View[T](b)
	if err != nil {
		return nil, fmt.Errorf("output %d: %w", i, err)
	}
	return s, nil
}

func slotErrorf(what string, i, n int) error {
	return fmt.Errorf("%s slot %d of %d: %w", what, i, n, ErrSlotMissing)
}
