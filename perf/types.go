// SPDX-License-Identifier: MIT

package perf

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

var (
	// ErrBadIterations indicates Attr.Iterations <= 0.
	ErrBadIterations = errors.New("perf: iterations must be positive")

	// ErrNilTimer indicates Attr.Timer is nil.
	ErrNilTimer = errors.New("perf: timer is nil")

	// ErrNilTarget indicates a nil Target was given to New.
	ErrNilTarget = errors.New("perf: target is nil")

	// ErrTimeLimit indicates the mean sample exceeded the allowed time.
	ErrTimeLimit = errors.New("perf: time limit exceeded")

	// ErrInvalidResults indicates an operation that needs a valid report got an
	// invalid or empty one.
	ErrInvalidResults = errors.New("perf: results are invalid")
)

// DefaultIterations is the coursework default for num_running.
const DefaultIterations = 10

// DefaultMaxTime is the coursework per-task limit in seconds.
const DefaultMaxTime = 10.0

// Target is the lifecycle a Perf drives. *task.Task satisfies it.
//
// A Target that also has a BeginRunBatch() method gets it called by TaskRun
// after Prepare, so that repeated Run calls pass its guard.
type Target interface {
	Validate() error
	Prepare() error
	Run() error
	Finalize() error
}

type runBatcher interface {
	BeginRunBatch()
}

// Timer returns seconds elapsed since a fixed reference instant and never
// decreases between calls. It must be cheap and non-blocking.
type Timer func() float64

// WallClock returns a Timer anchored at the moment of the call, backed by the
// monotonic clock.
func WallClock() Timer {
	t0 := time.Now()
	return func() float64 {
		return time.Since(t0).Seconds()
	}
}

// Attr is one measurement request.
type Attr struct {
	Iterations int   // timed repetitions, > 0
	Timer      Timer // time source
}

// DefaultAttr returns DefaultIterations with a fresh WallClock.
func DefaultAttr() Attr {
	return Attr{Iterations: DefaultIterations, Timer: WallClock()}
}

func (a Attr) validate() error {
	if a.Iterations <= 0 {
		return ErrBadIterations
	}
	if a.Timer == nil {
		return ErrNilTimer
	}
	return nil
}

// Mode names the timing mode that produced a report.
type Mode uint8

const (
	ModeNone Mode = iota
	ModePipeline
	ModeTaskRun
)

func (m Mode) String() string {
	switch m {
	case ModePipeline:
		return "pipeline"
	case ModeTaskRun:
		return "task_run"
	default:
		return "none"
	}
}

// ParseMode maps "pipeline" and "task_run" back to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "pipeline":
		return ModePipeline, true
	case "task_run":
		return ModeTaskRun, true
	default:
		return ModeNone, false
	}
}

// Options configures a Perf.
type Options struct {
	Logger *slog.Logger // debug lines outside timed regions; never nil after New
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
