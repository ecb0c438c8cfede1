// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the singularity/rank tolerance: a determinant or
	// pivot with |x| < eps is treated as numerically zero, and singular
	// values below eps·σ_max do not count toward Rank.
	DefaultEpsilon = 1e-10

	// DefaultEigenTolerance is the convergence threshold for iterative
	// spectral routines (Jacobi sweeps, shifted QR, one-sided Jacobi SVD).
	DefaultEigenTolerance = 1e-10

	// DefaultMaxIterations caps iterative spectral routines. Exceeding the
	// cap surfaces ErrEigenConvergence — never a partial result.
	DefaultMaxIterations = 300

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicEigenTolInvalid = "matrix: WithEigenTolerance: tol must be finite, positive"
	panicMaxIterInvalid  = "matrix: WithMaxIterations: n must be positive"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	eigenTol       float64 // > 0; DefaultEigenTolerance
	maxIter        int     // > 0; DefaultMaxIterations
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon overrides the singularity/rank tolerance.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEigenTolerance overrides the spectral convergence threshold.
// Panics when tol is not a finite positive number.
func WithEigenTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithMaxIterations overrides the iteration cap for spectral routines.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithValidateNaNInf toggles finite-value enforcement for constructors that
// ingest caller data (NewDenseFromRows, NewDiagonal).
func WithValidateNaNInf(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// gatherOptions resolves defaults, then applies setters in order.
// Deterministic: same option list always yields the same Options.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		eigenTol:       DefaultEigenTolerance,
		maxIter:        DefaultMaxIterations,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
