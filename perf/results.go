// SPDX-License-Identifier: MIT

package perf

import "fmt"

// Results is the report of one measurement. The driver fills it once; treat it
// as read-only afterwards.
type Results struct {
	Mode    Mode      // timing mode used
	Valid   bool      // false if validation or a stage failed
	Samples []float64 // seconds, one per completed timed iteration
	TimeSec float64   // arithmetic mean of Samples
	Err     error     // cause when Valid is false
}

// Summary aggregates Samples. It is zero for an empty report.
func (r *Results) Summary() Summary {
	if r == nil {
		return Summary{}
	}
	return Summarize(r.Samples)
}

// CheckLimit returns ErrTimeLimit when the mean exceeds limit seconds. A
// non-positive limit disables the check. Invalid reports fail with
// ErrInvalidResults.
func (r *Results) CheckLimit(limit float64) error {
	if r == nil || !r.Valid {
		return ErrInvalidResults
	}
	if limit > 0 && r.TimeSec > limit {
		return fmt.Errorf("%s mean %.6fs > %.6fs: %w", r.Mode, r.TimeSec, limit, ErrTimeLimit)
	}
	return nil
}
