// SPDX-License-Identifier: MIT

// Package perf measures tasks. A Perf drives a Target's lifecycle under one of
// two timing modes and aggregates per-iteration elapsed times into Results.
//
// Modes:
//
//   - PipelineRun: every iteration runs Validate → Prepare → Run → Finalize and
//     is timed from just before Validate to just after Finalize. This is the
//     end-to-end cost, conversion and validation included.
//   - TaskRun: Validate and Prepare run once, untimed; then each of the
//     requested iterations times a single Run call; Finalize runs once at the
//     end, untimed. This isolates the computational core from fixed setup cost,
//     which is what matters when comparing parallel strategies.
//
// Time comes from Attr.Timer, a callback returning seconds since a fixed
// reference instant. WallClock builds one from the monotonic clock.
//
// Failures:
//
//   - Validation failure stops the measurement: Results.Valid is false,
//     Results.Err holds the cause, no samples are kept, and the returned error
//     is nil. Output slots are never written.
//   - A Prepare/Run/Finalize failure stops the measurement as well and is
//     returned as the error (for *task.Task targets it wraps
//     task.ErrStageFailed), with Results marked invalid.
//   - Out-of-order calls are not caught here; they panic in the task guard.
//
// Perf is synchronous and not safe for concurrent use. Nothing is logged inside
// a timed region.
package perf
