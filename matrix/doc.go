// Package matrix implements the dense linear-algebra kernel.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe, error-returning accessors,
//     no-copy windows (View) and copy-based submatrix extraction (Submatrix).
//   - Elementary kernels: Add, Sub, Mul, Scale, Hadamard, Transpose, MatVec —
//     all pure, shape-checked, returning freshly allocated results.
//   - Determinant via cofactor expansion (with Minor, Cofactor, Trace) plus
//     DeterminantLU as the O(n³) alternative for non-toy sizes.
//   - Inverse via the adjugate method, InverseLU via pivoted factorization.
//   - Solve/SolveMatrix: Gaussian elimination with partial pivoting — never
//     through an explicit inverse.
//   - Factorizations: LU (partial pivoting, P·A = L·U), LUDoolittle
//     (deterministic, no pivoting), Householder QR, Jacobi eigen for
//     symmetric input, shifted-QR eigenvalues for the general case, and
//     one-sided Jacobi SVD with Rank and Cond built on top.
//
// Every operation is synchronous, side-effect-free and deterministic: inputs
// are never mutated, loop orders are fixed, and there is no package-level
// state. Calls on distinct matrices are safe to run concurrently.
//
// All failures surface as sentinel errors (see errors.go) matched with
// errors.Is. A factorization that cannot be computed returns an error —
// the package never substitutes an identity or placeholder result.
package matrix
