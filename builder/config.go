// SPDX-License-Identifier: MIT
// Package: foldcolor/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness" and makes
	// stochastic constructors fail with ErrNeedRandSource.
	rng *rand.Rand
}

// Option configures the builder via functional arguments.
type Option func(*builderConfig)

// WithSeed installs a deterministic RNG seeded with the given value, for
// reproducible RandomSparse fixtures.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned RNG. A nil value is ignored so the
// "no randomness" default stays explicit.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
