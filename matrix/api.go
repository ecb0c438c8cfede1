// SPDX-License-Identifier: MIT
// Package matrix — public constructors & API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common construction tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed where the data enters; facades only compose or forward.

package matrix

import "math"

// ---------- Constructors ----------

// NewDenseFromRows builds a Dense from a rectangular [][]float64.
//
// Implementation:
//   - Stage 1: ValidateRows rejects empty or ragged input (ErrBadShape).
//   - Stage 2: allocate and deep-copy — the result never aliases caller storage.
//   - Stage 3: under the finite-value policy (default ON), reject NaN/±Inf.
//
// Behavior highlights:
//   - Defensive copy: later mutation of `data` leaves the matrix untouched.
//
// Errors:
//   - ErrBadShape (empty/ragged input), ErrNaNInf (non-finite under policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(data [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRows(data); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	rows, cols := len(data), len(data[0])
	m, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = data[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf("NewDenseFromRows", i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v // deep copy, no aliasing
		}
	}

	return m, nil
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init (constructor).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols matrix with every element set to 1.
// Complexity: O(r*c).
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	_ = m.Fill(1.0) // 1.0 is finite; Fill cannot fail here

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDiagonal returns an n×n matrix with values[i] on the diagonal and zeros
// elsewhere, n = len(values).
//
// Errors:
//   - ErrInvalidDimensions (empty values), ErrNaNInf (non-finite under policy).
//
// Complexity: O(n²).
func NewDiagonal(values []float64, opts ...Option) (*Dense, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	m, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, denseErrorf("NewDiagonal", i, i, ErrNaNInf)
		}
		m.data[i*n+i] = v
	}

	return m, nil
}

// ---------- Facades & comparisons ----------

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// AllClose reports whether a and b share a shape and agree elementwise
// within absolute tolerance tol.
//
// Behavior highlights:
//   - Shape mismatch is an error, not `false`: it distinguishes "different
//     matrices" from "incomparable matrices".
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, err
	}

	rows, cols := a.Rows(), a.Cols()

	// Fast-path: both *Dense → single flat comparison loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				if math.Abs(da.data[idx]-db.data[idx]) > tol {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if math.Abs(av-bv) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}
