// SPDX-License-Identifier: MIT
// Package matrix: spectral routines.
//
// Three entry points, one documented algorithm each:
//   - EigenSym: cyclic Jacobi rotations for symmetric input — real values and
//     an orthonormal eigenvector basis.
//   - Eigenvalues: Householder reduction to Hessenberg form followed by
//     shifted QR iteration with deflation; trailing 2×2 blocks yield
//     complex-conjugate pairs.
//   - Eigen: the facade. Symmetric input takes the Jacobi path; otherwise
//     values come from shifted QR and eigenvectors from inverse iteration.
//     A defective matrix (no full real eigenvector basis) fails with
//     ErrNonDiagonalizable — never a placeholder basis.

package matrix

import (
	"math"
	"sort"
)

// invIterSteps caps the inner refinement loop of inverse iteration; the loop
// normally exits on the residual check after one or two steps.
const invIterSteps = 50

// exceptionalShiftEvery forces an ad hoc shift when the Wilkinson shift
// cycles without progress (EISPACK-style escape hatch).
const exceptionalShiftEvery = 10

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: ValidateSymmetric (not nil, square, |A[i,j]-A[j,i]| ≤ tol).
//   - Stage 2: sweep all pairs (p,q), p<q, in fixed order; rotate each pair
//     with |A[p,q]| above tol, accumulating the rotation into Q. A sweep with
//     no rotation means convergence.
//   - Stage 3: sort eigenvalues ascending, reordering Q's columns to match.
//
// Behavior highlights:
//   - Fixed sweep order; identical inputs give identical output.
//   - Q's columns are orthonormal eigenvectors: A·Q[:,k] ≈ values[k]·Q[:,k].
//   - maxIter counts full sweeps (n(n-1)/2 pair visits each), mirroring SVD.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (not symmetric within tol),
//     ErrEigenConvergence (a rotation still fired in the last allowed sweep).
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eigenTol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	A, err := toDenseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := A.r
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		sweep, i, j, p, q  int
		app, aqq, apq      float64
		theta, t, c, s     float64
		aip, aiq, qip, qiq float64
		newIP, newIQ       float64
		converged          bool
	)
	for sweep = 0; sweep < o.maxIter; sweep++ {
		converged = true
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = A.data[p*n+q]
				if math.Abs(apq) < o.eigenTol {
					continue // pair already annihilated
				}
				converged = false

				// Rotation parameters from A[p,p], A[q,q], A[p,q].
				app = A.data[p*n+p]
				aqq = A.data[q*n+q]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// Apply the rotation symmetrically to A.
				for i = 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip = A.data[i*n+p]
					aiq = A.data[i*n+q]
					newIP = c*aip - s*aiq
					newIQ = s*aip + c*aiq
					A.data[i*n+p], A.data[p*n+i] = newIP, newIP
					A.data[i*n+q], A.data[q*n+i] = newIQ, newIQ
				}
				A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
				A.data[p*n+q], A.data[q*n+p] = 0, 0

				// Accumulate the rotation into Q.
				for i = 0; i < n; i++ {
					qip = Q.data[i*n+p]
					qiq = Q.data[i*n+q]
					Q.data[i*n+p] = c*qip - s*qiq
					Q.data[i*n+q] = s*qip + c*qiq
				}
			}
		}
		if converged {
			break
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, ErrEigenConvergence)
	}

	// Extract the diagonal and sort ascending, carrying Q's columns along.
	order := make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return A.data[order[a]*n+order[a]] < A.data[order[b]*n+order[b]]
	})

	values := make([]float64, n)
	vectors, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for j = 0; j < n; j++ {
		src := order[j]
		values[j] = A.data[src*n+src]
		for i = 0; i < n; i++ {
			vectors.data[i*n+j] = Q.data[i*n+src]
		}
	}

	return values, vectors, nil
}

// hessenbergDense reduces a square working copy to upper Hessenberg form
// in place via Householder similarity transforms. Eigenvalues are preserved
// exactly (similarity); entries below the first subdiagonal are flushed
// to exact zero at the end.
// Complexity: Time O(n³), Space O(n).
func hessenbergDense(A *Dense) {
	n := A.r
	v := make([]float64, n)

	var (
		k, i, j           int
		norm, alpha, beta float64
		tau, sum          float64
	)
	for k = 0; k < n-2; k++ {
		// Norm of the column segment A[k+1:n, k].
		norm = NormZero
		for i = k + 1; i < n; i++ {
			norm += A.data[i*n+k] * A.data[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue
		}

		alpha = -math.Copysign(norm, A.data[(k+1)*n+k])
		for i = 0; i <= k; i++ {
			v[i] = 0.0
		}
		for i = k + 1; i < n; i++ {
			v[i] = A.data[i*n+k]
		}
		v[k+1] -= alpha

		beta = NormZero
		for i = k + 1; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// A ← H·A (rows k+1..n-1 against every column).
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for i = k + 1; i < n; i++ {
				sum += v[i] * A.data[i*n+j]
			}
			for i = k + 1; i < n; i++ {
				A.data[i*n+j] -= tau * v[i] * sum
			}
		}

		// A ← A·H (columns k+1..n-1 against every row).
		for i = 0; i < n; i++ {
			sum = ZeroSum
			base := i * n
			for j = k + 1; j < n; j++ {
				sum += A.data[base+j] * v[j]
			}
			for j = k + 1; j < n; j++ {
				A.data[base+j] -= tau * sum * v[j]
			}
		}
	}

	// Flush sub-subdiagonal round-off to exact zero.
	for i = 2; i < n; i++ {
		for j = 0; j < i-1; j++ {
			A.data[i*n+j] = 0.0
		}
	}
}

// eig2x2 returns the eigenvalue pair of [[a,b],[c,d]]: two reals when the
// discriminant is non-negative, a complex-conjugate pair otherwise.
func eig2x2(a, b, c, d float64) (complex128, complex128) {
	tr := a + d
	det := a*d - b*c
	disc := tr*tr/4 - det
	if disc >= 0 {
		s := math.Sqrt(disc)

		return complex(tr/2+s, 0), complex(tr/2-s, 0)
	}
	s := math.Sqrt(-disc)

	return complex(tr/2, s), complex(tr/2, -s)
}

// Eigenvalues computes all eigenvalues of a general square matrix:
// Hessenberg reduction, then shifted QR iteration with deflation.
//
// Implementation:
//   - Stage 1: ValidateSquareNotNil; Hessenberg-reduce a working copy.
//   - Stage 2: deflate from the bottom. A negligible subdiagonal splits off a
//     real eigenvalue (1×1) or a trailing 2×2 block whose closed form yields
//     a real pair or a complex-conjugate pair.
//   - Stage 3: otherwise run one explicit shifted QR step (Givens rotations
//     on the active Hessenberg block) with a Wilkinson shift, falling back to
//     an exceptional shift when the iteration cycles.
//
// Behavior highlights:
//   - Values are sorted ascending by (real, imaginary) for determinism.
//   - Complex pairs always appear as exact conjugates (same closed form).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEigenConvergence (a block refused to
//     deflate within the iteration cap).
//
// Complexity:
//   - Time O(n³) expected, Space O(n²).
func Eigenvalues(m Matrix, opts ...Option) ([]complex128, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	o := gatherOptions(opts...)

	H, err := toDenseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	n := H.r
	hessenbergDense(H)

	values := make([]complex128, 0, n)
	cs := make([]float64, n)
	sn := make([]float64, n)

	hi := n    // active block is H[l:hi, l:hi]
	steps := 0 // QR steps taken on the current block

	var (
		l, k, i, j          int
		sub, a, b, c, d, mu float64
		delta, denom, r     float64
		tmpA, tmpB          float64
	)
	for hi > 0 {
		if hi == 1 {
			values = append(values, complex(H.data[0], 0))
			hi, steps = 0, 0

			continue
		}

		// Locate the top of the active block: scan subdiagonals bottom-up.
		l = hi - 1
		for l > 0 {
			sub = math.Abs(H.data[l*n+l-1])
			if sub <= o.eigenTol*(math.Abs(H.data[(l-1)*n+l-1])+math.Abs(H.data[l*n+l])) {
				H.data[l*n+l-1] = 0.0

				break
			}
			l--
		}

		if l == hi-1 {
			// 1×1 deflation: a real eigenvalue.
			values = append(values, complex(H.data[(hi-1)*n+hi-1], 0))
			hi, steps = hi-1, 0

			continue
		}
		if l == hi-2 {
			// 2×2 deflation: closed-form pair (real or complex conjugates).
			a = H.data[(hi-2)*n+hi-2]
			b = H.data[(hi-2)*n+hi-1]
			c = H.data[(hi-1)*n+hi-2]
			d = H.data[(hi-1)*n+hi-1]
			e1, e2 := eig2x2(a, b, c, d)
			values = append(values, e1, e2)
			hi, steps = hi-2, 0

			continue
		}

		// No deflation available: one shifted QR step on H[l:hi, l:hi].
		steps++
		if steps > o.maxIter {
			return nil, matrixErrorf(opEigenvalues, ErrEigenConvergence)
		}

		// Wilkinson shift from the trailing 2×2 of the block.
		a = H.data[(hi-2)*n+hi-2]
		b = H.data[(hi-2)*n+hi-1]
		c = H.data[(hi-1)*n+hi-2]
		d = H.data[(hi-1)*n+hi-1]
		if steps%exceptionalShiftEvery == 0 {
			// Exceptional shift to break cycles.
			mu = d + math.Abs(c) + math.Abs(H.data[(hi-2)*n+hi-3])
		} else {
			delta = (a - d) / 2
			disc := delta*delta + b*c
			if disc >= 0 {
				denom = delta + math.Copysign(math.Sqrt(disc), delta)
				if denom != 0 {
					mu = d - b*c/denom
				} else {
					mu = d
				}
			} else {
				mu = d // complex pair ahead: Rayleigh shift keeps the step real
			}
		}

		// Explicit shifted QR step via Givens rotations: H − μI = Q·R,
		// then H ← R·Q + μI, all within the active block.
		for i = l; i < hi; i++ {
			H.data[i*n+i] -= mu
		}
		for k = l; k < hi-1; k++ {
			a = H.data[k*n+k]
			b = H.data[(k+1)*n+k]
			r = math.Hypot(a, b)
			if r == 0 {
				cs[k], sn[k] = 1.0, 0.0

				continue
			}
			cs[k], sn[k] = a/r, b/r
			// Rotate rows k and k+1 across columns k..hi-1.
			for j = k; j < hi; j++ {
				tmpA = H.data[k*n+j]
				tmpB = H.data[(k+1)*n+j]
				H.data[k*n+j] = cs[k]*tmpA + sn[k]*tmpB
				H.data[(k+1)*n+j] = -sn[k]*tmpA + cs[k]*tmpB
			}
		}
		for k = l; k < hi-1; k++ {
			// Rotate columns k and k+1 across rows l..hi-1.
			for i = l; i < hi; i++ {
				tmpA = H.data[i*n+k]
				tmpB = H.data[i*n+k+1]
				H.data[i*n+k] = cs[k]*tmpA + sn[k]*tmpB
				H.data[i*n+k+1] = -sn[k]*tmpA + cs[k]*tmpB
			}
		}
		for i = l; i < hi; i++ {
			H.data[i*n+i] += mu
		}
	}

	sort.SliceStable(values, func(x, y int) bool {
		if real(values[x]) != real(values[y]) {
			return real(values[x]) < real(values[y])
		}

		return imag(values[x]) < imag(values[y])
	})

	return values, nil
}

// inverseIteration refines an eigenvector for a known real eigenvalue by
// solving (A − μI)·y = x repeatedly with a slightly perturbed shift μ
// (the perturbation keeps the factorization regular while the near-singular
// system amplifies exactly the wanted eigendirection).
// The returned vector is unit-norm with a deterministic sign (largest
// component positive).
func inverseIteration(A *Dense, lambda float64, o Options) ([]float64, error) {
	n := A.r

	// Perturbed shift: relative nudge keeps (A − μI) factorable.
	nudge := (math.Abs(lambda) + 1) * 1e-8
	var f *luFactors
	var err error
	for attempt := 0; attempt < 4; attempt++ {
		shifted := A.Clone().(*Dense)
		for i := 0; i < n; i++ {
			shifted.data[i*n+i] -= lambda + nudge
		}
		f, err = luFactor(shifted, math.SmallestNonzeroFloat64)
		if err == nil {
			break
		}
		nudge *= 16 // exact hit on a pivot: back off further
	}
	if err != nil {
		return nil, err
	}

	// Start from a deterministic non-degenerate vector.
	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / math.Sqrt(float64(n))
	}

	resTol := o.eigenTol * math.Sqrt(float64(n)) * (1 + math.Abs(lambda)) * 1e4
	var it, i int
	var norm, res, acc float64
	for it = 0; it < invIterSteps; it++ {
		y := luSolveVec(f, x)
		norm = NormZero
		for i = 0; i < n; i++ {
			norm += y[i] * y[i]
		}
		norm = math.Sqrt(norm)
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			return nil, ErrNonDiagonalizable
		}
		for i = 0; i < n; i++ {
			x[i] = y[i] / norm
		}

		// Residual ‖A·x − λ·x‖ against the unit vector x.
		res = NormZero
		for i = 0; i < n; i++ {
			acc = -lambda * x[i]
			base := i * n
			for j := 0; j < n; j++ {
				acc += A.data[base+j] * x[j]
			}
			res += acc * acc
		}
		if math.Sqrt(res) <= resTol {
			break
		}
	}
	if it == invIterSteps {
		return nil, ErrNonDiagonalizable
	}

	// Deterministic sign: flip so the largest-magnitude component is positive.
	maxIdx := 0
	for i = 1; i < n; i++ {
		if math.Abs(x[i]) > math.Abs(x[maxIdx]) {
			maxIdx = i
		}
	}
	if x[maxIdx] < 0 {
		for i = 0; i < n; i++ {
			x[i] = -x[i]
		}
	}

	return x, nil
}

// Eigen computes the full eigendecomposition when one exists over the reals.
//
// Implementation:
//   - Stage 1: symmetric input (within the eigen tolerance) takes the Jacobi
//     path: real values, orthonormal vectors, done.
//   - Stage 2: otherwise eigenvalues come from shifted QR. Any genuinely
//     complex pair makes a real eigenvector basis impossible —
//     ErrNonDiagonalizable (the values themselves remain available through
//     Eigenvalues).
//   - Stage 3: one inverse-iteration vector per real eigenvalue; a final
//     independence check (|det V| above eps) rejects defective inputs.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEigenConvergence,
//     ErrNonDiagonalizable (complex pairs or no full eigenvector basis).
//
// Complexity:
//   - Time O(n³) expected (QR iteration + n inverse iterations), Space O(n²).
func Eigen(m Matrix, opts ...Option) (*EigenDecomposition, error) {
	if err := ValidateSquareNotNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(opts...)

	// Symmetric fast path: Jacobi gives values and vectors in one pass.
	if symErr := ValidateSymmetric(m, o.eigenTol); symErr == nil {
		vals, vecs, err := EigenSym(m, opts...)
		if err != nil {
			return nil, err
		}
		cvals := make([]complex128, len(vals))
		for i, v := range vals {
			cvals[i] = complex(v, 0)
		}

		return &EigenDecomposition{Values: cvals, Vectors: vecs}, nil
	}

	values, err := Eigenvalues(m, opts...)
	if err != nil {
		return nil, err
	}

	// A real eigenvector basis requires real eigenvalues.
	for _, v := range values {
		if math.Abs(imag(v)) > o.eigenTol {
			return nil, matrixErrorf(opEigen, ErrNonDiagonalizable)
		}
	}

	A, err := toDenseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n := A.r
	V, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	var k, i int
	for k = 0; k < n; k++ {
		vec, iterErr := inverseIteration(A, real(values[k]), o)
		if iterErr != nil {
			return nil, matrixErrorf(opEigen, ErrNonDiagonalizable)
		}
		for i = 0; i < n; i++ {
			V.data[i*n+k] = vec[i]
		}
	}

	// Independence check: a defective matrix repeats eigendirections.
	detV, err := DeterminantLU(V, opts...)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if math.Abs(detV) < o.eps {
		return nil, matrixErrorf(opEigen, ErrNonDiagonalizable)
	}

	return &EigenDecomposition{Values: values, Vectors: V}, nil
}
