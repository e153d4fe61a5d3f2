// SPDX-License-Identifier: MIT

// Package config loads the taskbench suite description from YAML.
//
// Decoding is strict: unknown keys are errors. After decoding, the result is
// checked with struct tags and one struct-level rule per task kind; any
// failure is reported as ErrInvalid wrapping the validator's field errors.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/taskbench/dijkstra"
	"github.com/katalvlaran/taskbench/sorting"
)

// Task kinds.
const (
	KindDijkstra = "dijkstra"
	KindSorting  = "sorting"
	KindMatrix   = "matrix"
)

var (
	// ErrInvalid wraps every decoding or validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the root of a suite file.
type Config struct {
	Log      Log      `yaml:"log"`
	Perf     Perf     `yaml:"perf"`
	Parallel Parallel `yaml:"parallel"`
	Tasks    []Task   `yaml:"tasks" validate:"required,min=1,unique=Name,dive"`
}

// Log selects the logger.
type Log struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// Perf holds the timing attributes shared by every task.
type Perf struct {
	Iterations int      `yaml:"iterations" validate:"gt=0"`
	MaxTime    float64  `yaml:"max_time" validate:"gte=0"` // seconds; 0 disables the check
	Modes      []string `yaml:"modes" validate:"required,min=1,dive,oneof=pipeline task_run"`
}

// Parallel sizes the strategies. Zero workers means GOMAXPROCS, zero grain
// means parallel.DefaultGrain.
type Parallel struct {
	Workers int `yaml:"workers" validate:"gte=0"`
	Grain   int `yaml:"grain" validate:"gte=0"`
}

// Task describes one benchmark input and the variants to run over it.
// Which size fields apply depends on Kind:
//
//	dijkstra: Size (vertices), Source, Seed
//	sorting:  Size (per array), Arrays (1 or 2), Seed
//	matrix:   P, Q, R, Stride
type Task struct {
	Name       string   `yaml:"name" validate:"required"`
	Kind       string   `yaml:"kind" validate:"required,oneof=dijkstra sorting matrix"`
	Algorithm  string   `yaml:"algorithm"`
	Strategies []string `yaml:"strategies" validate:"omitempty,dive,oneof=sequential static forkjoin"`

	Seed   uint32 `yaml:"seed"`
	Size   int    `yaml:"size" validate:"gte=0"`
	Source int    `yaml:"source" validate:"gte=0"`
	Arrays int    `yaml:"arrays" validate:"omitempty,oneof=1 2"`

	P      int `yaml:"p" validate:"gte=0"`
	Q      int `yaml:"q" validate:"gte=0"`
	R      int `yaml:"r" validate:"gte=0"`
	Stride int `yaml:"stride" validate:"gte=0"`
}

// StrategyNames returns the configured strategies, or sequential alone.
func (t Task) StrategyNames() []string {
	if len(t.Strategies) == 0 {
		return []string{"sequential"}
	}
	return t.Strategies
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateTask, Task{})
	return v
}

// validateTask applies the per-kind rules the tags cannot express.
func validateTask(sl validator.StructLevel) {
	t := sl.Current().Interface().(Task)
	switch t.Kind {
	case KindDijkstra:
		if t.Size < 1 {
			sl.ReportError(t.Size, "Size", "size", "dijkstra_size", "")
		}
		if t.Source >= t.Size && t.Size > 0 {
			sl.ReportError(t.Source, "Source", "source", "ltfield", "Size")
		}
		if _, ok := dijkstra.ParseAlgorithm(t.Algorithm); !ok {
			sl.ReportError(t.Algorithm, "Algorithm", "algorithm", "dijkstra_algorithm", "")
		}
	case KindSorting:
		if t.Algorithm != "" {
			if _, ok := sorting.ParseAlgorithm(t.Algorithm); !ok {
				sl.ReportError(t.Algorithm, "Algorithm", "algorithm", "sorting_algorithm", "")
			}
		}
	case KindMatrix:
		dims := []struct {
			name string
			v    int
		}{{"P", t.P}, {"Q", t.Q}, {"R", t.R}, {"Stride", t.Stride}}
		for _, d := range dims {
			if d.v < 1 {
				sl.ReportError(d.v, d.name, d.name, "matrix_dim", "")
			}
		}
		if t.Algorithm != "" {
			sl.ReportError(t.Algorithm, "Algorithm", "algorithm", "matrix_algorithm", "")
		}
	}
}

// Default returns the three reference workloads: a 5000-vertex seeded graph,
// two 100000-element arrays and the striped 501×500·500×501 product.
func Default() Config {
	all := []string{"sequential", "static", "forkjoin"}
	return Config{
		Log:      Log{Level: "info", Format: "text"},
		Perf:     Perf{Iterations: 10, MaxTime: 10, Modes: []string{"pipeline", "task_run"}},
		Parallel: Parallel{},
		Tasks: []Task{
			{Name: "dijkstra_5000", Kind: KindDijkstra, Algorithm: "dense", Strategies: all, Seed: 42, Size: 5000},
			{Name: "batcher_2x100k", Kind: KindSorting, Algorithm: "batcher", Strategies: all, Seed: 1, Size: 100_000, Arrays: 2},
			{Name: "radix_2x100k", Kind: KindSorting, Algorithm: "radix", Strategies: all, Seed: 1, Size: 100_000, Arrays: 2},
			{Name: "ccs_501x500x501", Kind: KindMatrix, Strategies: all, P: 501, Q: 500, R: 501, Stride: 4},
		},
	}
}

// Load reads and validates the suite file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(bytes.NewReader(raw))
}

// Parse decodes YAML from r over Default and validates the result. Keys
// absent from the document keep their default; a tasks list replaces the
// default list entirely.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its tags and per-kind rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
