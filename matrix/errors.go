// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm panics on user-triggered error conditions;
// panics are reserved for programmer errors (nonsensical option values).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when input data cannot form a legal matrix:
	// empty row set, empty rows, or ragged rows of unequal length. Also used
	// when an extraction (Minor, View) would produce an illegal empty shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive at a constructor.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side whose length does not match the system.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square-only operation (determinant, trace,
	// inverse, LU, eigen) was invoked on a rectangular matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when inversion/solve/factorization meets a
	// numerically zero determinant or pivot (|x| below the epsilon policy).
	// Callers may regularize and retry; the kernel never does so itself.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon (EigenSym precondition).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrEigenConvergence indicates that an iterative spectral routine
	// (Jacobi sweep, shifted QR, one-sided Jacobi SVD) did not converge
	// within the configured iteration cap.
	ErrEigenConvergence = errors.New("matrix: eigen iteration did not converge")

	// ErrNonDiagonalizable is returned by Eigen when a full eigenvector basis
	// cannot be produced: complex eigenvalue pairs on the real facade, or a
	// defective matrix whose inverse-iteration vectors are dependent.
	ErrNonDiagonalizable = errors.New("matrix: matrix is not diagonalizable over the reals")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
