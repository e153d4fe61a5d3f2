// SPDX-License-Identifier: MIT

// Package parallel provides the execution strategies that task Run stages use
// to spread work across goroutines.
//
//   - Sequential: a plain loop on the calling goroutine.
//   - Static: shared-memory parallel-for. The index range is cut into one
//     contiguous chunk per worker (OpenMP "static" scheduling).
//   - ForkJoin: task-parallel fork/join on errgroup. Ranges are split into
//     grain-sized chunks that the caller and its helpers pull dynamically, and
//     Invoke runs independent closures concurrently (parallel_invoke).
//
// Each Static or ForkJoin value owns a budget of Workers-1 helper slots shared
// by every For and Invoke made through it, nested calls included. The caller
// always takes part, and work that finds no free slot runs inline, so at most
// Workers goroutines execute bodies at once and nesting never deadlocks.
//
// Bodies passed to For receive disjoint [lo, hi) ranges and must only write to
// indices inside their range. Anything shared across chunks is merged with
// Reduce: every chunk accumulates into its own local value and the partials
// are combined once, in chunk order, after the parallel region. That keeps
// results identical across strategies for associative combines, and makes the
// combine order fixed for floating-point ones.
package parallel
