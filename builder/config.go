// SPDX-License-Identifier: MIT
// Package: taskbench/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil        (stochastic builders require WithSeed/WithRand)
//   • weights     = [1, 100]
//   • edgeOdds    = 2          (one edge in three absent)
//   • values      = [-1e6, 1e6]

package builder

const (
	DefaultWeightMin int32 = 1
	DefaultWeightMax int32 = 100
	DefaultEdgeOdds  int32 = 2
	DefaultValueMin  int32 = -1_000_000
	DefaultValueMax  int32 = 1_000_000
)

// builderConfig aggregates all knobs; passed by value to builders.
type builderConfig struct {
	rng      Source32
	weightLo int32
	weightHi int32
	edgeOdds int32
	valueLo  int32
	valueHi  int32
}

// newBuilderConfig applies opts over the defaults, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightLo: DefaultWeightMin,
		weightHi: DefaultWeightMax,
		edgeOdds: DefaultEdgeOdds,
		valueLo:  DefaultValueMin,
		valueHi:  DefaultValueMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
