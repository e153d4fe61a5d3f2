// SPDX-License-Identifier: MIT

package perf

import (
	"fmt"
	"io"
	"strings"
)

// Print writes one line describing r:
//
//	name:pipeline:0.0123456789
//	name:task_run:invalid (task: validation failed: validate: ...)
//
// The statistic is the mean sample in seconds. Print has no effect on the
// measurement; it only renders it.
func Print(w io.Writer, name string, r *Results) error {
	_, err := io.WriteString(w, Format(name, r)+"\n")
	return err
}

// Format renders the Print line without the trailing newline.
func Format(name string, r *Results) string {
	if r == nil {
		return name + ":none:invalid"
	}
	if !r.Valid {
		if r.Err != nil {
			return fmt.Sprintf("%s:%s:invalid (%v)", name, r.Mode, r.Err)
		}
		return fmt.Sprintf("%s:%s:invalid", name, r.Mode)
	}
	return fmt.Sprintf("%s:%s:%.10f", name, r.Mode, r.TimeSec)
}

// PrintSummary writes a multi-line breakdown of a valid report.
func PrintSummary(w io.Writer, name string, r *Results) error {
	if r == nil || !r.Valid {
		return Print(w, name, r)
	}
	s := r.Summary()
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", name, r.Mode)
	fmt.Fprintf(&b, "  samples: %d\n", s.Count)
	fmt.Fprintf(&b, "  mean:    %.9fs\n", s.Mean)
	fmt.Fprintf(&b, "  median:  %.9fs\n", s.Median)
	fmt.Fprintf(&b, "  min/max: %.9fs / %.9fs\n", s.Min, s.Max)
	fmt.Fprintf(&b, "  stddev:  %.9fs\n", s.StdDev)
	fmt.Fprintf(&b, "  p95:     %.9fs\n", s.P95)
	_, err := io.WriteString(w, b.String())
	return err
}
