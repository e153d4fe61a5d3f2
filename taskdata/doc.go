// SPDX-License-Identifier: MIT

// Package taskdata defines the data buffer descriptor shared by a caller and the
// tasks it builds: ordered input and output slots plus scalar metadata.
//
// Overview:
//
//   - A Buffer is a typed, length-tagged view over a caller-owned slice. Wrapping
//     never copies; a task that writes into an output view writes into the
//     caller's memory.
//   - TaskData bundles four ordered sequences: Inputs, InputsMeta, Outputs and
//     OutputsMeta. Slot meaning is a convention published by each task package
//     (e.g. dijkstra: input 0 is the flattened adjacency matrix, input meta 0 is
//     the source vertex).
//   - Each slot carries its element type. A task asks for the exact type it
//     expects through View/InputAs/OutputAs and gets ErrKindMismatch otherwise,
//     instead of reinterpreting raw memory.
//
// Ownership:
//
//   - The descriptor never allocates, grows or frees caller slices. The caller
//     keeps every wrapped slice alive and correctly sized for as long as any
//     task built on the descriptor is in use.
//
// Errors (sentinel):
//
//   - ErrSlotMissing   the requested slot index is not populated.
//   - ErrKindMismatch  the slot holds a different element type.
//   - ErrNilData       a nil *TaskData was passed where one is required.
//
// Example:
//
//	adj := make([]int32, n*n)
//	dist := make([]int64, n)
//	d := taskdata.New().
//		AddInput(taskdata.Slice(adj)).
//		AddInputMeta(0).
//		AddOutput(taskdata.Slice(dist))
package taskdata
