// SPDX-License-Identifier: MIT

package task

import "github.com/katalvlaran/taskbench/taskdata"

// Stages is the capability set an algorithm implements. Implementations own
// their private working state; Run never receives the descriptor.
type Stages interface {
	Validate(d *taskdata.TaskData) error
	Prepare(d *taskdata.TaskData) error
	Run() error
	Finalize(d *taskdata.TaskData) error
}

// Task binds Stages to a shared descriptor behind a Guard.
type Task struct {
	data   *taskdata.TaskData // non-owning; caller keeps buffers alive
	stages Stages
	guard  Guard
}

// New returns a Fresh task. It panics with ErrNilStages if stages is nil.
func New(d *taskdata.TaskData, stages Stages) *Task {
	if stages == nil {
		panic(ErrNilStages)
	}
	return &Task{data: d, stages: stages}
}

// Validate runs the validation stage.
func (t *Task) Validate() error {
	return t.step(StageValidate, func() error { return t.stages.Validate(t.data) })
}

// Prepare runs the preparation stage.
func (t *Task) Prepare() error {
	return t.step(StagePrepare, func() error { return t.stages.Prepare(t.data) })
}

// Run runs the compute stage.
func (t *Task) Run() error {
	return t.step(StageRun, t.stages.Run)
}

// Finalize writes results into the descriptor's outputs.
func (t *Task) Finalize() error {
	return t.step(StageFinalize, func() error { return t.stages.Finalize(t.data) })
}

// BeginRunBatch permits repeated Run calls until Finalize. Legal only right
// after a successful Prepare; panics with *OrderError otherwise.
func (t *Task) BeginRunBatch() { t.guard.BeginBatch() }

// State reports the lifecycle state.
func (t *Task) State() State { return t.guard.State() }

// Data returns the descriptor the task was built on.
func (t *Task) Data() *taskdata.TaskData { return t.data }

func (t *Task) step(stage Stage, fn func() error) error {
	next := t.guard.Enter(stage)
	if err := fn(); err != nil {
		t.guard.Fail()
		return &StageError{Stage: stage, Err: err}
	}
	t.guard.Commit(next)
	return nil
}
