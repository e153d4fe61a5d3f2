// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/taskbench/internal/config"
	"github.com/katalvlaran/taskbench/internal/suite"
	"github.com/katalvlaran/taskbench/perf"
)

// Outcome statuses shown in the report.
const (
	statusOK       = "ok"
	statusSlow     = "slow"
	statusMismatch = "mismatch"
	statusInvalid  = "invalid"
	statusError    = "error"
)

var (
	colorOK    = lipgloss.Color("#2CD7C7")
	colorWarn  = lipgloss.Color("#F4D03F")
	colorError = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#2C4A54")

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

func status(o suite.Outcome) string {
	switch {
	case o.Results == nil || !o.Results.Valid:
		return statusInvalid
	case o.Parity != nil:
		return statusMismatch
	case errors.Is(o.Err, perf.ErrTimeLimit):
		return statusSlow
	case o.Err != nil:
		return statusError
	default:
		return statusOK
	}
}

// algorithmName shows the variant a task runs, including defaults.
func algorithmName(t config.Task) string {
	if t.Algorithm != "" {
		return t.Algorithm
	}
	switch t.Kind {
	case config.KindDijkstra:
		return "dense"
	case config.KindSorting:
		return "shell"
	case config.KindMatrix:
		return "gustavson"
	}
	return ""
}

func seconds(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// renderTable renders outcomes as a bordered terminal table.
func renderTable(outcomes []suite.Outcome) string {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		mean, median, p95 := "-", "-", "-"
		if o.Results != nil && o.Results.Valid {
			s := o.Results.Summary()
			mean, median, p95 = seconds(s.Mean), seconds(s.Median), seconds(s.P95)
		}
		rows = append(rows, []string{
			o.Task.Name, algorithmName(o.Task), o.Strategy, o.Mode.String(),
			mean, median, p95, status(o),
		})
	}

	const statusCol = 7
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("TASK", "ALGORITHM", "STRATEGY", "MODE", "MEAN s", "MEDIAN s", "P95 s", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 4 && col < statusCol:
				return numberStyle
			case col == statusCol && row >= 0 && row < len(rows):
				return cellStyle.Foreground(statusColor(rows[row][statusCol]))
			default:
				return cellStyle
			}
		})
	return t.String()
}

func statusColor(s string) lipgloss.Color {
	switch s {
	case statusOK:
		return colorOK
	case statusSlow:
		return colorWarn
	default:
		return colorError
	}
}

// renderPlain writes one perf.Print line per outcome, followed by the reason
// for every outcome that is not ok.
func renderPlain(w io.Writer, outcomes []suite.Outcome) error {
	for _, o := range outcomes {
		name := o.Task.Name + "/" + o.Strategy
		if err := perf.Print(w, name, o.Results); err != nil {
			return err
		}
		if o.OK() || o.Results == nil || !o.Results.Valid {
			continue
		}
		cause := errors.Join(o.Parity, o.Err)
		if _, err := fmt.Fprintf(w, "  %s: %v\n", status(o), cause); err != nil {
			return err
		}
	}
	return nil
}

// renderPlan writes one line per variant.
func renderPlan(w io.Writer, plan []suite.Variant) error {
	for _, v := range plan {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			v.Task.Name, v.Task.Kind, algorithmName(v.Task), v.Strategy, v.Mode)
		if err != nil {
			return err
		}
	}
	return nil
}
