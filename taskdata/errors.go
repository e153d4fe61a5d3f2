// SPDX-License-Identifier: MIT

package taskdata

import "errors"

var (
	// ErrSlotMissing indicates that a slot index is outside the populated range.
	ErrSlotMissing = errors.New("taskdata: slot not populated")

	// ErrKindMismatch indicates that a slot was viewed as an element type other
	// than the one it was wrapped with.
	ErrKindMismatch = errors.New("taskdata: element kind mismatch")

	// ErrNilData indicates that a nil *TaskData was supplied.
	ErrNilData = errors.New("taskdata: descriptor is nil")
)
