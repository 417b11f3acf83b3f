// Package builder defines sentinel errors for graph constructors.
package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when an edge probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor runs without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for programmer errors such as a nil Constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation is returned when a BuilderOption received an invalid value.
var ErrOptionViolation = errors.New("builder: invalid option value")
