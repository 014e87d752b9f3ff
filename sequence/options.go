// SPDX-License-Identifier: MIT
// Package: sequence
//
// options.go — functional options for the fixture generators.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic.
//   • Determinism is explicit: WithSeed or WithRand, otherwise defaultSeed.

package sequence

import (
	"math"
	"math/rand"
)

// Deterministic defaults, matching the value range of python/generator.py.
const (
	defaultSeed int64 = 20251
	defaultMin        = 0
	defaultMax        = 1000
)

// Option customizes Random by mutating a genConfig before generation.
type Option func(*genConfig)

// genConfig aggregates the knobs used by Random. Passed by value.
type genConfig struct {
	rng      *rand.Rand // nil → seeded from defaultSeed at resolve time
	min, max int        // inclusive value range, min <= max
}

// newGenConfig applies opts in order (last wins) over the defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{min: defaultMin, max: defaultMax}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithSeed draws values from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws values from r, advancing its state.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}

	return func(c *genConfig) {
		c.rng = r
	}
}

// WithRange sets the inclusive value range [lo, hi].
// Panics when lo > hi or when the range holds more than math.MaxInt values.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("sequence: WithRange(lo > hi)")
	}
	if d := hi - lo; d < 0 || d == math.MaxInt {
		panic("sequence: WithRange span overflows int")
	}

	return func(c *genConfig) {
		c.min, c.max = lo, hi
	}
}
