// SPDX-License-Identifier: MIT
// Package matrix: singular value decomposition and its derived quantities.
//
// SVD uses one-sided Jacobi (Hestenes) rotations: columns of a working copy
// are orthogonalized pairwise until every pair is numerically orthogonal,
// then singular values fall out as column norms. Rank and Cond are thin
// wrappers over the singular spectrum.

package matrix

import (
	"math"
	"sort"
)

// SVD computes the thin singular value decomposition A ≈ U·diag(S)·Vᵀ.
//
// Implementation:
//   - Stage 1: validate; when rows < cols decompose the transpose and swap
//     U and V on the way out (one-sided Jacobi wants tall-or-square input).
//   - Stage 2: Hestenes sweeps — for each column pair (p,q) in fixed order,
//     compute the inner products α=‖W[:,p]‖², β=‖W[:,q]‖², γ=W[:,p]·W[:,q]
//     and rotate the pair until |γ| ≤ tol·√(αβ) for every pair in a sweep.
//   - Stage 3: singular values are the column norms of W, sorted descending;
//     U columns are the normalized W columns, V accumulates the rotations.
//
// Behavior highlights:
//   - Thin shapes: U is m×k, S has k entries, V is n×k with k = min(m, n).
//   - Singular values are non-negative and sorted descending.
//   - Deterministic sweep order; identical inputs give identical output.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (empty input via the constructor path),
//     ErrEigenConvergence (sweeps exhausted before orthogonality).
//
// Complexity:
//   - Time O(sweeps·m·n²), Space O(m·n).
func SVD(m Matrix, opts ...Option) (*SVDecomposition, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	o := gatherOptions(opts...)

	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	// Wide input: decompose Aᵀ = U'·S·V'ᵀ, then A = V'·S·U'ᵀ.
	if d.r < d.c {
		dt, tErr := Transpose(d)
		if tErr != nil {
			return nil, tErr
		}
		dec, sErr := SVD(dt, opts...)
		if sErr != nil {
			return nil, sErr
		}

		return &SVDecomposition{U: dec.V, S: dec.S, V: dec.U}, nil
	}

	rows, cols := d.r, d.c
	W := d.Clone().(*Dense)
	V, err := NewIdentity(cols)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	var (
		sweep, p, q, i     int
		alpha, beta, gamma float64
		zeta, t, c, s      float64
		wp, wq, vp, vq     float64
		converged          bool
	)
	for sweep = 0; sweep < o.maxIter; sweep++ {
		converged = true
		for p = 0; p < cols-1; p++ {
			for q = p + 1; q < cols; q++ {
				alpha, beta, gamma = NormZero, NormZero, ZeroSum
				for i = 0; i < rows; i++ {
					wp = W.data[i*cols+p]
					wq = W.data[i*cols+q]
					alpha += wp * wp
					beta += wq * wq
					gamma += wp * wq
				}
				if math.Abs(gamma) <= o.eigenTol*math.Sqrt(alpha*beta) {
					continue // pair already orthogonal
				}
				converged = false

				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1.0/(math.Abs(zeta)+math.Sqrt(1+zeta*zeta)), zeta)
				c = 1.0 / math.Sqrt(1+t*t)
				s = c * t

				// Rotate columns p and q of both W and V.
				for i = 0; i < rows; i++ {
					wp = W.data[i*cols+p]
					wq = W.data[i*cols+q]
					W.data[i*cols+p] = c*wp - s*wq
					W.data[i*cols+q] = s*wp + c*wq
				}
				for i = 0; i < cols; i++ {
					vp = V.data[i*cols+p]
					vq = V.data[i*cols+q]
					V.data[i*cols+p] = c*vp - s*vq
					V.data[i*cols+q] = s*vp + c*vq
				}
			}
		}
		if converged {
			break
		}
	}
	if !converged {
		return nil, matrixErrorf(opSVD, ErrEigenConvergence)
	}

	// Column norms of W are the singular values.
	sigma := make([]float64, cols)
	var norm float64
	for q = 0; q < cols; q++ {
		norm = NormZero
		for i = 0; i < rows; i++ {
			norm += W.data[i*cols+q] * W.data[i*cols+q]
		}
		sigma[q] = math.Sqrt(norm)
	}

	// Sort descending, carrying the columns of W and V along.
	order := make([]int, cols)
	for i = 0; i < cols; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sigma[order[a]] > sigma[order[b]]
	})

	U, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	Vs, err := NewDense(cols, cols)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	S := make([]float64, cols)
	for q = 0; q < cols; q++ {
		src := order[q]
		S[q] = sigma[src]
		if S[q] > 0 {
			for i = 0; i < rows; i++ {
				U.data[i*cols+q] = W.data[i*cols+src] / S[q]
			}
		}
		// Zero singular value: the U column stays zero (rank-deficient input).
		for i = 0; i < cols; i++ {
			Vs.data[i*cols+q] = V.data[i*cols+src]
		}
	}

	return &SVDecomposition{U: U, S: S, V: Vs}, nil
}

// Rank returns the numerical rank: the count of singular values exceeding
// eps·σmax. The zero matrix has rank 0.
//
// Errors: those of SVD.
// Complexity: dominated by SVD.
func Rank(m Matrix, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	dec, err := SVD(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if len(dec.S) == 0 || dec.S[0] == 0 {
		return 0, nil
	}

	rank := 0
	threshold := o.eps * dec.S[0]
	for _, s := range dec.S {
		if s > threshold {
			rank++
		}
	}

	return rank, nil
}

// Cond returns the 2-norm condition number σmax/σmin. A numerically
// singular matrix (σmin ≤ eps·σmax) yields +Inf rather than an error:
// the quantity is well-defined as a limit and callers routinely compare
// it against a threshold.
//
// Errors: those of SVD.
// Complexity: dominated by SVD.
func Cond(m Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	dec, err := SVD(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	if len(dec.S) == 0 {
		return math.Inf(1), nil
	}

	sigmaMax := dec.S[0]
	sigmaMin := dec.S[len(dec.S)-1]
	if sigmaMin <= o.eps*sigmaMax || sigmaMax == 0 {
		return math.Inf(1), nil
	}

	return sigmaMax / sigmaMin, nil
}
