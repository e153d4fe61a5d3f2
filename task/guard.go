// SPDX-License-Identifier: MIT

package task

// Guard enforces the stage order of one Task. The zero Guard is Fresh.
//
// Guard is not safe for concurrent use; the harness drives one task from one
// goroutine.
type Guard struct {
	state State
	batch bool // repeated Run permitted until Finalize
}

// State reports the current lifecycle state.
func (g *Guard) State() State { return g.state }

// Enter checks that stage may be called now and returns the state the task
// moves to once the stage succeeds. It panics with *OrderError otherwise.
func (g *Guard) Enter(stage Stage) State {
	next, ok := transitions[edge{g.state, stage}]
	if !ok || (g.state == Ran && stage == StageRun && !g.batch) {
		panic(&OrderError{Stage: stage, State: g.state})
	}
	return next
}

// Commit records a successful stage.
func (g *Guard) Commit(next State) {
	g.state = next
	if next == Finalized {
		g.batch = false
	}
}

// Fail records a failed stage; the task accepts no further calls.
func (g *Guard) Fail() {
	g.state = Failed
	g.batch = false
}

// BeginBatch opens a run batch. Legal only in Prepared.
func (g *Guard) BeginBatch() {
	if g.state != Prepared {
		panic(&OrderError{Stage: StageRun, State: g.state})
	}
	g.batch = true
}
