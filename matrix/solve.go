// SPDX-License-Identifier: MIT
// Package matrix: linear-system solvers.
//
// Both entry points run Gaussian elimination with partial pivoting through
// the shared luFactor core — never through an explicit inverse. Forming A⁻¹
// to solve a system wastes an O(n³) pass and loses accuracy; the elimination
// route is the contract here.

package matrix

// Solve computes x such that A·x = b for a square system and a vector
// right-hand side.
//
// Implementation:
//   - Stage 1: ValidateSquareNotNil(A); ValidateVecLen(b, A.Rows()).
//   - Stage 2: luFactor with partial pivoting, then one forward/backward
//     substitution pass.
//
// Behavior highlights:
//   - Inputs are never mutated; b is read once through the permutation.
//   - Satisfies A·x ≈ b within floating-point tolerance for well-conditioned
//     systems (tested property).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) ≠ n),
//     ErrSingular (no pivot above eps in some column).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	f, err := luFactor(a, o.eps)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return luSolveVec(f, b), nil
}

// SolveMatrix solves A·X = B column by column for an n×k right-hand side.
// One factorization is shared across all k substitution passes.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (B.Rows ≠ A.Rows),
//     ErrSingular.
//
// Complexity:
//   - Time O(n³ + k·n²), Space O(n²).
func SolveMatrix(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if b.Rows() != n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	f, err := luFactor(a, o.eps)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	k := b.Cols()
	bd, err := toDense(b) // read-only
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	X, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Solve per column with a reused scratch vector.
	col := make([]float64, n)
	var i, j int
	for j = 0; j < k; j++ {
		for i = 0; i < n; i++ {
			col[i] = bd.data[i*k+j]
		}
		x := luSolveVec(f, col)
		for i = 0; i < n; i++ {
			X.data[i*k+j] = x[i]
		}
	}

	return X, nil
}
