// SPDX-License-Identifier: MIT
//.go:build test

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED kernels (cofactor expansion, LU core, Hessenberg
//     reduction) and an internal options snapshot to matrix_test ONLY.
//   - Enable white-box verification — e.g. that cofactor expansion along
//     ANY row yields the same determinant — without widening the prod API.
//
// Build Policy:
//   - File is in package matrix, so it can access private symbols; the
//     exported surface carries a _TestOnly suffix so it never leaks into
//     production call sites by accident.
//
// Behavior & Determinism:
//   - Thin pass-through wrappers; no allocations beyond the wrapped calls.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf(...) accordingly (tests will catch drift).
//
// AI-Hints:
//   - Prefer keeping ALL test-only bridges co-located here to avoid clutter
//     across files.
//   - If a private helper changes signature, mirror the change here once,
//     not across many tests.

var (
	// ExportedDenseFill exposes Dense.Fill for white-box tests.
	ExportedDenseFill = (*Dense).Fill
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly       = panicEpsilonInvalid
	PanicEigenTolInvalid_TestOnly      = panicEigenTolInvalid
	PanicMaxIterationsInvalid_TestOnly = panicMaxIterInvalid
)

// --- private kernel bridges ---------------------------------------------------

// DetExpandRow_TestOnly forwards to the private cofactor-expansion kernel,
// expanding along an arbitrary row. The public Determinant always expands
// along row 0; this bridge lets tests confirm the value is row-independent.
func DetExpandRow_TestOnly(d *Dense, row int) float64 {
	return detExpandRow(d, row)
}

// MinorDense_TestOnly forwards to the private submatrix-deletion kernel.
func MinorDense_TestOnly(d *Dense, row, col int) *Dense {
	return minorDense(d, row, col)
}

// LUFactor_TestOnly forwards to the shared partially-pivoted LU core and
// returns the compact factorization pieces (L\U buffer, row permutation,
// permutation sign).
func LUFactor_TestOnly(m Matrix, eps float64) (*Dense, []int, float64, error) {
	f, err := luFactor(m, eps)
	if err != nil {
		return nil, nil, 0, err
	}

	return f.lu, f.perm, f.sign, nil
}

// HessenbergDense_TestOnly forwards to the in-place Hessenberg reduction.
func HessenbergDense_TestOnly(d *Dense) {
	hessenbergDense(d)
}

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow matrix_test to assert defaults and "last writer wins" semantics
//     without accessing unexported fields directly.
//
// Determinism:
//   - Pure struct copy; no side effects.
type OptionsSnapshot struct {
	Eps            float64
	EigenTol       float64
	MaxIter        int
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
// Notes:
//   - Keep this wrapper in sync if the internal derivation pipeline changes.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		EigenTol:       o.eigenTol,
		MaxIter:        o.maxIter,
		ValidateNaNInf: o.validateNaNInf,
	}
}
