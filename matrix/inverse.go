// SPDX-License-Identifier: MIT
// Package matrix: matrix inversion — adjugate method and pivoted-LU method.
//
// Inverse keeps the adjugate/cofactor semantics (exact parity with the
// cofactor-expansion determinant, O(n·n!), small matrices only). InverseLU
// is the O(n³) route: pivoted factorization plus n triangular solves.
// On well-conditioned inputs both satisfy A·A⁻¹ ≈ I within 1e-8.

package matrix

import "math"

// Inverse computes A⁻¹ by the adjugate method:
// inv[i][j] = Cofactor(j, i) / det (note the transposed cofactor index —
// that transpose is what makes the cofactor matrix the adjugate).
//
// Implementation:
//   - Stage 1: ValidateSquareNotNil; 1×1 special case [[1/a]].
//   - Stage 2: cofactor-expansion determinant; |det| < eps ⇒ ErrSingular.
//   - Stage 3: fill inv[i][j] from signed minors with the transposed index.
//
// Behavior highlights:
//   - Shares the factorial-time determinant — keep inputs small; use
//     InverseLU beyond toy sizes.
//   - Contract: Mul(A, Inverse(A)) ≈ I within 1e-8 for well-conditioned A.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (|det| < eps, eps = 1e-10 default).
//
// Complexity:
//   - Time O(n·n!), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	d, err := toDense(m) // read-only
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := d.r

	// 1×1 special case: [[1/a]].
	if n == 1 {
		a := d.data[0]
		if math.Abs(a) < o.eps {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		inv, allocErr := NewDense(1, 1)
		if allocErr != nil {
			return nil, matrixErrorf(opInverse, allocErr)
		}
		inv.data[0] = 1.0 / a

		return inv, nil
	}

	det := detExpandRow(d, 0)
	if math.Abs(det) < o.eps {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var i, j int
	var cof float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// Adjugate: cofactor of (j, i), not (i, j).
			cof = detExpandRow(minorDense(d, j, i), 0)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			inv.data[i*n+j] = cof / det
		}
	}

	return inv, nil
}

// InverseLU computes A⁻¹ via partial-pivoting LU and n triangular solves,
// one per canonical basis column.
//
// Implementation:
//   - Stage 1: luFactor (validation, pivoted elimination).
//   - Stage 2: for each basis vector e_col, forward solve L·y = P·e_col and
//     backward solve U·x = y; write x into column col.
//
// Behavior highlights:
//   - Fully deterministic loop orders (col↑, forward i↑, backward i↓).
//   - If you only need A⁻¹·b, call Solve — forming the inverse is a last resort.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func InverseLU(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	f, err := luFactor(m, o.eps)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.lu.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	e := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		e[col] = 1.0
		x := luSolveVec(f, e)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
		e[col] = 0.0
	}

	return inv, nil
}
