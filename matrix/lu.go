// SPDX-License-Identifier: MIT
// Package matrix: LU factorization — the pivoted core shared by Solve,
// InverseLU and DeterminantLU, plus the public LU and LUDoolittle facades.
//
// Conventions:
//   - LU uses partial pivoting: P·A = L·U, with Perm describing P
//     (row i of P·A is row Perm[i] of A).
//   - LUDoolittle is the deterministic no-pivot variant: A = L·U exactly,
//     ErrSingular on a zero-ish pivot. Use it when reproducibility matters
//     and the input guarantees safe pivots.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// isSingular reports whether err carries the ErrSingular sentinel.
func isSingular(err error) bool { return errors.Is(err, ErrSingular) }

// luFactors is the compact internal form of a pivoted factorization:
// L (below the diagonal, unit diagonal implied) and U (on/above) share one
// buffer; perm records the row permutation; sign is the permutation parity
// (+1/−1) for determinant use.
type luFactors struct {
	lu   *Dense // combined L\U storage (n×n)
	perm []int  // row i of the factored system is row perm[i] of the input
	sign float64
}

// luFactor runs Gaussian elimination with partial pivoting on a working copy.
//
// Implementation:
//   - Stage 1: ValidateSquareNotNil; materialize a fresh *Dense working copy.
//   - Stage 2: for each column k, pick the largest-magnitude pivot in rows
//     k..n-1, swap rows (recording parity), eliminate below the pivot.
//
// Behavior highlights:
//   - The input is never mutated; only the working copy is factored in place.
//   - A column whose best pivot is below eps fails with ErrSingular — callers
//     that want "det = 0" semantics translate that themselves.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func luFactor(m Matrix, eps float64) (*luFactors, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, err
	}
	w, err := toDenseCopy(m)
	if err != nil {
		return nil, err
	}

	n := w.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var k, i, j, pivRow int
	var pivAbs, cand, factor float64
	for k = 0; k < n; k++ {
		// Partial pivoting: largest |w[i][k]| over i in [k, n).
		pivRow, pivAbs = k, math.Abs(w.data[k*n+k])
		for i = k + 1; i < n; i++ {
			cand = math.Abs(w.data[i*n+k])
			if cand > pivAbs {
				pivRow, pivAbs = i, cand
			}
		}
		if pivAbs < eps {
			return nil, fmt.Errorf("column %d: %w", k, ErrSingular)
		}
		if pivRow != k {
			// Swap full rows k and pivRow (L part included) and the permutation.
			rowK, rowP := w.data[k*n:(k+1)*n], w.data[pivRow*n:(pivRow+1)*n]
			for j = 0; j < n; j++ {
				rowK[j], rowP[j] = rowP[j], rowK[j]
			}
			perm[k], perm[pivRow] = perm[pivRow], perm[k]
			sign = -sign
		}

		// Eliminate below the pivot; store multipliers in the L part.
		pivot := w.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = w.data[i*n+k] / pivot
			w.data[i*n+k] = factor
			if factor != 0 {
				for j = k + 1; j < n; j++ {
					w.data[i*n+j] -= factor * w.data[k*n+j]
				}
			}
		}
	}

	return &luFactors{lu: w, perm: perm, sign: sign}, nil
}

// luSolveVec solves A·x = b given the pivoted factors: permute b, forward
// substitution through unit-L, backward substitution through U.
// Assumes len(b) == n; pivots were validated non-zero during factorization.
// Complexity: Time O(n²), Space O(n).
func luSolveVec(f *luFactors, b []float64) []float64 {
	n := f.lu.r
	x := make([]float64, n)

	// Forward: L·y = P·b (y stored in x).
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base := i * n
		for k = 0; k < i; k++ {
			sum += f.lu.data[base+k] * x[k]
		}
		x[i] = b[f.perm[i]] - sum
	}

	// Backward: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base := i * n
		for k = i + 1; k < n; k++ {
			sum += f.lu.data[base+k] * x[k]
		}
		x[i] = (x[i] - sum) / f.lu.data[base+i]
	}

	return x
}

// LU computes the factorization P·A = L·U with partial pivoting.
//
// Implementation:
//   - Stage 1: luFactor (validation, pivoted elimination).
//   - Stage 2: split the compact L\U buffer into unit-lower L and upper U;
//     build the permutation matrix P from Perm.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (no usable pivot in a column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUDecomposition, error) {
	o := gatherOptions(opts...)
	f, err := luFactor(m, o.eps)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := f.lu.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	P, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < i; j++ {
			L.data[base+j] = f.lu.data[base+j]
		}
		for j = i; j < n; j++ {
			U.data[base+j] = f.lu.data[base+j]
		}
		P.data[base+f.perm[i]] = 1.0
	}

	perm := make([]int, n)
	copy(perm, f.perm)

	return &LUDecomposition{L: L, U: U, P: P, Perm: perm}, nil
}

// LUDoolittle computes the Doolittle factorization A = L·U with unit diagonal
// on L and no pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: for i=0..n-1, build row i of U and column i of L in fixed order.
//
// Behavior highlights:
//   - Deterministic loops; pivot guard |U[i,i]| < eps enforced. Numerical
//     stability requires pivoting — use LU when the input does not guarantee
//     safe pivots; this kernel trades stability for bit-for-bit determinism.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (|U[i,i]| < eps during factorization).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LUDoolittle(m Matrix, opts ...Option) (*Dense, *Dense, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	src, err := toDense(m) // read-only
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := src.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI := i * n
		// Row i of U for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = src.data[baseI+j] - sum
		}

		// Pivot guard (deterministic singularity detection).
		pivot = U.data[baseI+i]
		if math.Abs(pivot) < o.eps {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Column i of L for j > i.
		for j = i + 1; j < n; j++ {
			baseJ := j * n
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (src.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}
