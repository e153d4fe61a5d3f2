// SPDX-License-Identifier: MIT

package task

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed marks a Validate rejection.
	ErrValidationFailed = errors.New("task: validation failed")

	// ErrStageFailed marks a Prepare, Run or Finalize failure.
	ErrStageFailed = errors.New("task: stage failed")

	// ErrInsufficientOutput is returned by Finalize implementations when a
	// caller-provided output slot cannot hold the result.
	ErrInsufficientOutput = errors.New("task: insufficient output capacity")

	// ErrOutOfOrder is the kind of every *OrderError.
	ErrOutOfOrder = errors.New("task: stage called out of order")

	// ErrNilStages is the panic value of New when given nil stages.
	ErrNilStages = errors.New("task: stages are nil")
)

// StageError carries the stage that failed and the implementation's cause.
// errors.Is matches both the stage class (ErrValidationFailed or
// ErrStageFailed) and anything the cause matches.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.kind().Error(), e.Stage, e.Err)
}

// Unwrap exposes the stage class and the cause.
func (e *StageError) Unwrap() []error { return []error{e.kind(), e.Err} }

func (e *StageError) kind() error {
	if e.Stage == StageValidate {
		return ErrValidationFailed
	}
	return ErrStageFailed
}

// OrderError describes a rejected transition. The guard panics with it.
type OrderError struct {
	Stage Stage // the call that was attempted
	State State // the state the task was in
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("task: %s called in state %s: out of order", e.Stage, e.State)
}

// Unwrap returns ErrOutOfOrder.
func (e *OrderError) Unwrap() error { return ErrOutOfOrder }
