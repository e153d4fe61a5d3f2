// SPDX-License-Identifier: MIT

package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Strategy names.
const (
	NameSequential = "sequential"
	NameStatic     = "static"
	NameForkJoin   = "forkjoin"
)

// DefaultGrain is the smallest chunk ForkJoin hands to a goroutine when no
// grain is configured.
const DefaultGrain = 1024

// ErrUnknownStrategy is returned by Parse for an unrecognised name.
var ErrUnknownStrategy = errors.New("parallel: unknown strategy")

// Strategy executes loop bodies and independent closures.
type Strategy interface {
	// Name reports the strategy name (see Name* constants).
	Name() string

	// Workers reports the maximum number of goroutines running bodies or fns
	// at once, counting the calling goroutine. Nested For and Invoke calls
	// share the same bound.
	Workers() int

	// For calls body over disjoint ranges covering [0, n) and returns when all
	// calls have returned.
	For(n int, body func(lo, hi int))

	// Invoke runs fns, possibly concurrently, and returns when all have returned.
	Invoke(fns ...func())
}

// slots is the helper budget shared by every call on one strategy value. The
// calling goroutine always works, so n workers get n-1 slots. Acquisition
// never blocks: a call that finds no free slot runs the work inline, which
// keeps nested calls from deadlocking.
type slots struct{ sem *semaphore.Weighted }

func newSlots(workers int) slots {
	return slots{sem: semaphore.NewWeighted(int64(workers - 1))}
}

func (s slots) tryAcquire() bool { return s.sem.TryAcquire(1) }

func (s slots) release() { s.sem.Release(1) }

// Sequential returns the single-goroutine strategy.
func Sequential() Strategy { return sequential{} }

type sequential struct{}

func (sequential) Name() string { return NameSequential }
func (sequential) Workers() int { return 1 }

func (sequential) For(n int, body func(lo, hi int)) {
	if n > 0 {
		body(0, n)
	}
}

func (sequential) Invoke(fns ...func()) {
	for _, fn := range fns {
		fn()
	}
}

// Static returns a parallel-for with one contiguous chunk per worker.
// workers <= 0 means runtime.GOMAXPROCS(0).
func Static(workers int) Strategy {
	w := resolveWorkers(workers)
	return static{workers: w, slots: newSlots(w)}
}

type static struct {
	workers int
	slots   slots
}

func (s static) Name() string { return NameStatic }
func (s static) Workers() int { return s.workers }

func (s static) For(n int, body func(lo, hi int)) {
	chunks := Chunks(n, s.workers)
	fns := make([]func(), len(chunks))
	for i, c := range chunks {
		fns[i] = func() { body(c.Lo, c.Hi) }
	}
	s.Invoke(fns...)
}

// Invoke hands each fn but the last to a helper goroutine while slots are
// free and runs the rest on the caller.
func (s static) Invoke(fns ...func()) {
	var wg sync.WaitGroup
	for i, fn := range fns {
		if i < len(fns)-1 && s.slots.tryAcquire() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer s.slots.release()
				fn()
			}()
			continue
		}
		fn()
	}
	wg.Wait()
}

// ForkJoin returns an errgroup-backed fork/join strategy. workers <= 0 means
// runtime.GOMAXPROCS(0); grain <= 0 means DefaultGrain.
func ForkJoin(workers, grain int) Strategy {
	if grain <= 0 {
		grain = DefaultGrain
	}
	w := resolveWorkers(workers)
	return forkJoin{workers: w, grain: grain, slots: newSlots(w)}
}

type forkJoin struct {
	workers int
	grain   int
	slots   slots
}

func (f forkJoin) Name() string { return NameForkJoin }
func (f forkJoin) Workers() int { return f.workers }

// For splits [0, n) into grain-sized ranges that the caller and every helper
// it can get pull from a shared cursor until none are left.
func (f forkJoin) For(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if n <= f.grain || f.workers == 1 {
		body(0, n)
		return
	}

	var next atomic.Int64
	work := func() {
		for {
			lo := int(next.Add(int64(f.grain))) - f.grain
			if lo >= n {
				return
			}
			body(lo, min(lo+f.grain, n))
		}
	}

	var g errgroup.Group
	chunks := (n + f.grain - 1) / f.grain
	for i := 1; i < min(f.workers, chunks) && f.slots.tryAcquire(); i++ {
		g.Go(func() error {
			defer f.slots.release()
			work()
			return nil
		})
	}
	work()
	_ = g.Wait() // bodies never fail
}

// Invoke forks fns onto free slots and runs the remainder on the caller.
func (f forkJoin) Invoke(fns ...func()) {
	var g errgroup.Group
	for i, fn := range fns {
		if i < len(fns)-1 && f.slots.tryAcquire() {
			g.Go(func() error {
				defer f.slots.release()
				fn()
				return nil
			})
			continue
		}
		fn()
	}
	_ = g.Wait()
}

// Parse builds a strategy from its name.
func Parse(name string, workers, grain int) (Strategy, error) {
	switch name {
	case NameSequential, "seq", "":
		return Sequential(), nil
	case NameStatic, "omp", "threads":
		return Static(workers), nil
	case NameForkJoin, "tbb", "tasks":
		return ForkJoin(workers, grain), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

func resolveWorkers(w int) int {
	if w <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return w
}
