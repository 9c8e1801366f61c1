// SPDX-License-Identifier: MIT
// Package: foldcolor/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context using `%w` wrapping.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols,
// subset size) is smaller than the allowed minimum for the requested
// constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1]. Covers RandomSparse(p).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil RNG in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph was handed a constructor it
// cannot run (nil) or that a constructor could not complete without
// breaking the simple-graph invariants.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix the composition */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
