// Package herta is a numeric toolbox built around a dense linear-algebra
// kernel — matrices, factorizations and solvers you can trust to either
// compute the answer or fail loudly.
//
// 🚀 What is herta?
//
//	A small, deterministic, pure-Go numerics library that brings together:
//		• Dense matrices: row-major storage, safe accessors, views & submatrices
//		• Elementary algebra: Add, Sub, Mul, Scale, Hadamard, Transpose, MatVec
//		• Determinants: cofactor expansion + an O(n³) LU-based alternative
//		• Inverses: adjugate method and pivoted-LU inversion
//		• Solvers: Gaussian elimination with partial pivoting (vector & matrix RHS)
//		• Factorizations: LU (pivoted & Doolittle), Householder QR,
//		  Jacobi eigen, shifted-QR eigenvalues, one-sided Jacobi SVD
//		• Diagnostics: rank and condition number from singular values
//
// ✨ Why choose herta?
//
//   - Fail-fast contracts – sentinel errors, errors.Is-friendly, no panics on data
//   - No silent answers – a factorization that cannot converge is an error,
//     never a placeholder result
//   - Deterministic – fixed loop orders, no global state, reproducible runs
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives under a single subpackage:
//
//	matrix/ — the dense kernel: types, arithmetic, factorizations, solvers
//
//	go get github.com/hertamath/herta/matrix
package herta
