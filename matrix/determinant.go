// SPDX-License-Identifier: MIT
// Package matrix: determinant family — cofactor expansion, minors, cofactors,
// trace, and the LU-based determinant alternative.
//
// Purpose:
//   - Determinant keeps the classic cofactor-expansion semantics: exact base
//     cases for 1×1 and 2×2, recursive expansion along row 0 above that.
//     This is O(n!) and correctness-first, intended for small matrices.
//   - DeterminantLU is the O(n³) route via pivoted factorization for anything
//     beyond toy sizes.
//
// Determinism:
//   - Fixed expansion row (0) and fixed j order; recursion depth n-2.

package matrix

// Determinant computes det(m) by cofactor expansion along row 0.
//
// Implementation:
//   - Stage 1: ValidateSquareNotNil(m); materialize a read-only *Dense.
//   - Stage 2: base cases 1×1 (the element) and 2×2 (ad−bc); otherwise
//     det = Σ_j m[0][j]·Cofactor(0,j) with recursive minors.
//
// Behavior highlights:
//   - O(n!) — intentionally correctness-first. For n beyond ~10 prefer
//     DeterminantLU; both agree within floating-point tolerance.
//   - Zero entries short-circuit their minor (no wasted recursion).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := toDense(m) // read-only adoption; no mutation below
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return detExpandRow(d, 0), nil
}

// detExpandRow performs cofactor expansion along the given row.
// The row is an internal parameter: expansion along any row yields the same
// value, which the tests verify through the white-box bridge.
// Assumes d is square with the row in bounds.
func detExpandRow(d *Dense, row int) float64 {
	n := d.r
	switch n {
	case 1:
		return d.data[0]
	case 2:
		// ad − bc, exact closed form.
		return d.data[0]*d.data[3] - d.data[1]*d.data[2]
	}

	// (−1)^(row+0) starts the sign alternation for this row.
	sign := 1.0
	if row%2 == 1 {
		sign = -1.0
	}

	var det, a float64
	base := row * n
	for j := 0; j < n; j++ {
		a = d.data[base+j]
		if a != 0 { // zero entry contributes nothing; skip the minor
			det += sign * a * detExpandRow(minorDense(d, row, j), 0)
		}
		sign = -sign
	}

	return det
}

// minorDense copies d without the given row and column.
// Assumes indices are in bounds and the result is at least 1×1.
// Complexity: O((r-1)*(c-1)).
func minorDense(d *Dense, row, col int) *Dense {
	rp, cp := d.r-1, d.c-1
	res := &Dense{
		r:              rp,
		c:              cp,
		data:           make([]float64, rp*cp),
		validateNaNInf: d.validateNaNInf,
	}

	var i, j, dst int
	for i = 0; i < d.r; i++ {
		if i == row {
			continue
		}
		base := i * d.c
		for j = 0; j < d.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = d.data[base+j]
			dst++
		}
	}

	return res
}

// Minor returns the submatrix of m with the given row and column removed.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange for bad indices; ErrBadShape when the
//     result would have zero rows or columns (1×k or k×1 input).
//
// Complexity:
//   - Time O((r-1)*(c-1)), Space O((r-1)*(c-1)).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, matrixErrorf(opMinor, ErrOutOfRange)
	}
	if rows-1 == 0 || cols-1 == 0 {
		return nil, matrixErrorf(opMinor, ErrBadShape)
	}

	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorDense(d, row, col), nil
}

// Cofactor computes (−1)^(row+col) · det(Minor(row, col)).
// Computed on demand, never stored.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange, ErrBadShape (via Minor).
//
// Complexity:
//   - Dominated by the minor's determinant: O((n-1)!).
func Cofactor(m Matrix, row, col int) (float64, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	sub, err := Minor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	det := detExpandRow(sub, 0)
	if (row+col)%2 == 1 {
		det = -det
	}

	return det, nil
}

// Trace returns the sum of diagonal elements of a square matrix.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	var sum float64

	// Fast-path: *Dense reads the diagonal off the flat buffer.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}

		return sum, nil
	}

	// Fallback: interface path.
	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// DeterminantLU computes det(m) via LU factorization with partial pivoting:
// the product of U's diagonal times the permutation sign. O(n³), the
// documented alternative to cofactor expansion for larger matrices.
//
// Behavior highlights:
//   - A singular input yields determinant 0 (not an error): singularity is
//     the answer here, unlike in Inverse/Solve where it blocks the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func DeterminantLU(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)

	f, err := luFactor(m, o.eps)
	if err != nil {
		if isSingular(err) {
			return 0, nil // pivot collapse ⇒ det is numerically zero
		}

		return 0, matrixErrorf(opDet, err)
	}

	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det, nil
}
