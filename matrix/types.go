// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types shared by the kernels.
// This file intentionally contains ONLY the public Matrix interface and the
// factorization result aggregates. Errors and options live in dedicated
// files (errors.go, options.go) per the package conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// The interface keeps the fast-path/fallback duality of the kernels testable:
// hot loops type-assert to *Dense for flat-slice access and fall back to
// At/Set for any other implementation.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid; may return ErrNaNInf
	// under the finite-value policy.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// LUDecomposition is the result of LU with partial pivoting.
//
// Invariant: P·A ≈ L·U, where L is unit lower triangular, U is upper
// triangular and P is the row-permutation matrix described by Perm:
// row i of P·A is row Perm[i] of A.
//
// The aggregate is owned by the caller and keeps no reference to the input.
type LUDecomposition struct {
	L *Dense // unit lower triangular factor (n×n)
	U *Dense // upper triangular factor (n×n)
	P *Dense // permutation matrix (n×n), P[i][Perm[i]] = 1

	// Perm records the row permutation applied by pivoting.
	Perm []int
}

// QRDecomposition is the result of Householder QR.
//
// Invariant: Q·R ≈ A with Q orthogonal (Qᵀ·Q ≈ I, m×m) and R upper
// triangular (trapezoidal when the input is rectangular, m×n).
type QRDecomposition struct {
	Q *Dense // orthogonal factor (m×m)
	R *Dense // upper triangular/trapezoidal factor (m×n)
}

// EigenDecomposition pairs eigenvalues with eigenvector columns.
//
// Invariant: A·Vectors[:,k] ≈ Values[k]·Vectors[:,k] for every k. Values are
// complex to cover the general case; on the symmetric (Jacobi) path all
// imaginary parts are exactly zero and Vectors is orthonormal.
type EigenDecomposition struct {
	Values  []complex128 // eigenvalues, ascending by (real, imag)
	Vectors *Dense       // eigenvectors as columns, matching Values order
}

// SVDecomposition is the thin singular value decomposition.
//
// Invariant: U·diag(S)·Vᵀ ≈ A with k = min(m, n); U is m×k with orthonormal
// columns, S holds k non-negative singular values in descending order, and
// V is n×k with orthonormal columns.
type SVDecomposition struct {
	U *Dense    // left singular vectors (m×k)
	S []float64 // singular values, non-negative, descending
	V *Dense    // right singular vectors (n×k)
}
