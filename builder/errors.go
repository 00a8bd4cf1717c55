// SPDX-License-Identifier: MIT
// Package: bipenum/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor exhausted its attempts, or
// that the assembled draft was rejected by core.NewGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a meaningless parameter that is not a size,
// e.g. an unknown Platonic solid.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownKind indicates Parse was given a constructor name it does not know.
var ErrUnknownKind = errors.New("builder: unknown constructor kind")
