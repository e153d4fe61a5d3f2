// SPDX-License-Identifier: MIT

// Package task defines the four-stage unit of computation driven by the
// performance harness, and the lifecycle guard that keeps its stages in order.
//
// Algorithm packages implement Stages:
//
//	Validate(d)  – inspect the descriptor for well-formedness; no mutation.
//	Prepare(d)   – copy/transform inputs into private working state.
//	Run()        – compute from private state only (no descriptor access).
//	Finalize(d)  – write private results into the descriptor's output slots.
//
// New wraps a Stages implementation and a *taskdata.TaskData into a *Task whose
// argument-less methods are what the harness calls. Every call first passes the
// Guard, an explicit state machine:
//
//	Fresh ─Validate→ Validated ─Prepare→ Prepared ─Run→ Ran ─Finalize→ Finalized
//	                     ↑                                              │
//	                     └──────────────────Validate────────────────────┘
//
// Run may repeat in Ran only inside a run batch (BeginRunBatch), which the
// task-only timing mode opens after Prepare. A stage returning an error moves
// the task to Failed, from which nothing is permitted.
//
// Errors:
//
//   - ErrValidationFailed    Validate rejected the descriptor (recoverable).
//   - ErrStageFailed         Prepare, Run or Finalize failed (run failure).
//   - ErrInsufficientOutput  Finalize found an output slot too small; reported as
//     a stage failure.
//   - ErrOutOfOrder          a stage was called from the wrong state. This is a
//     programming error: the guard panics with *OrderError before the stage
//     body runs, so outputs are never touched.
package task
