// SPDX-License-Identifier: MIT

package task

// State is the lifecycle position of a Task.
type State uint8

const (
	Fresh State = iota
	Validated
	Prepared
	Ran
	Finalized
	Failed
)

var stateNames = [...]string{
	Fresh:     "fresh",
	Validated: "validated",
	Prepared:  "prepared",
	Ran:       "ran",
	Finalized: "finalized",
	Failed:    "failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Stage names one of the four lifecycle calls.
type Stage uint8

const (
	StageValidate Stage = iota
	StagePrepare
	StageRun
	StageFinalize
)

var stageNames = [...]string{
	StageValidate: "validate",
	StagePrepare:  "prepare",
	StageRun:      "run",
	StageFinalize: "finalize",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// edge is one row of the transition table.
type edge struct {
	from  State
	stage Stage
}

// transitions lists every legal (state, call) pair and the resulting state.
// Ran+Run is legal only inside a run batch; Guard checks that separately.
var transitions = map[edge]State{
	{Fresh, StageValidate}:     Validated,
	{Finalized, StageValidate}: Validated,
	{Validated, StagePrepare}:  Prepared,
	{Prepared, StageRun}:       Ran,
	{Ran, StageRun}:            Ran,
	{Ran, StageFinalize}:       Finalized,
}
