// SPDX-License-Identifier: MIT
// Package matrix: Householder QR factorization.
//
// Householder reflections are preferred over Gram-Schmidt for numerical
// stability: each reflector is orthogonal by construction, so Q never drifts
// from orthogonality the way classical Gram-Schmidt columns can.

package matrix

import "math"

// QR computes A = Q·R for a general m×n matrix using Householder
// reflections: Q is the explicit m×m orthogonal accumulation of the
// reflectors, R is upper triangular (trapezoidal when m ≠ n).
//
// Implementation:
//   - Stage 1: validate non-nil; materialize R as a working copy, Q as I_m.
//   - Stage 2: for k = 0..min(m,n)-1, build the column reflector
//     v = R[k:m, k] − α·e_k with α = −sign(R[k,k])·‖R[k:m, k]‖ and apply
//     H = I − τ·v·vᵀ to R from the left and to Q from the right
//     (Q accumulates H_0·H_1·…, which is Q itself since each H is symmetric).
//
// Behavior highlights:
//   - Deterministic column order; zero columns are skipped (no-op reflector).
//   - Invariants (tested): Qᵀ·Q ≈ I, Q·R ≈ A, R[i][j] ≈ 0 for i > j.
//   - No sign canonicalization: diag(R) may be negative. Post-multiply both
//     factors by diag(sign(R[k,k])) if non-negative diagonals are required.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(m²+m·n).
func QR(m Matrix) (*QRDecomposition, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	R, err := toDenseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	rows, cols := R.r, R.c

	Q, err := NewIdentity(rows)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	steps := cols
	if rows < cols {
		steps = rows
	}

	v := make([]float64, rows) // Householder vector, reused per column
	var (
		k, i, j              int
		norm, alpha, beta    float64
		tau, sum, rkk, lower float64
	)
	for k = 0; k < steps; k++ {
		// Column norm over R[k:m, k].
		norm = NormZero
		for i = k; i < rows; i++ {
			lower = R.data[i*cols+k]
			norm += lower * lower
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // zero column: nothing to reflect
		}

		// α = −sign(R[k,k])·norm avoids cancellation in v[k].
		rkk = R.data[k*cols+k]
		alpha = -math.Copysign(norm, rkk)

		// Build v = R[k:m, k] − α·e_k.
		for i = 0; i < k; i++ {
			v[i] = 0.0
		}
		for i = k; i < rows; i++ {
			v[i] = R.data[i*cols+k]
		}
		v[k] -= alpha

		// β = vᵀv and τ = 2/β.
		beta = NormZero
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue // degenerate reflector; skip safely
		}
		tau = 2.0 / beta

		// R ← H·R: update columns k..n-1.
		for j = k; j < cols; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * R.data[i*cols+j]
			}
			for i = k; i < rows; i++ {
				R.data[i*cols+j] -= tau * v[i] * sum
			}
		}

		// Q ← Q·H: update every row of Q against v.
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			base := i * rows
			for j = k; j < rows; j++ {
				sum += Q.data[base+j] * v[j]
			}
			for j = k; j < rows; j++ {
				Q.data[base+j] -= tau * sum * v[j]
			}
		}
	}

	// Flush subdiagonal round-off so R is exactly triangular.
	for i = 1; i < rows; i++ {
		limit := i
		if limit > cols {
			limit = cols
		}
		for j = 0; j < limit; j++ {
			R.data[i*cols+j] = 0.0
		}
	}

	return &QRDecomposition{Q: Q, R: R}, nil
}
