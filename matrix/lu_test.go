// SPDX-License-Identifier: MIT
// LU factorization tests: the pivoted LU (P·A = L·U) and the compact
// Doolittle variant without pivoting.

package matrix_test

import (
	"math"
	"testing"

	"github.com/hertamath/herta/matrix"
)

func TestLUDoolittle_Fixture(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{4, 3},
		{6, 3},
	})

	L, U, err := matrix.LUDoolittle(a)
	if err != nil {
		t.Fatalf("LUDoolittle: %v", err)
	}
	CompareRowsClose(t, [][]float64{{1, 0}, {1.5, 1}}, L, deltaTight)
	CompareRowsClose(t, [][]float64{{4, 3}, {0, -1.5}}, U, deltaTight)

	// Round trip: L·U = A exactly (within float tolerance).
	CompareClose(t, a, MulDense(t, L, U), deltaTight)
}

func TestLUDoolittle_ZeroPivotFailsLoudly(t *testing.T) {
	// Leading zero pivot cannot be repaired without row exchanges.
	_, _, err := matrix.LUDoolittle(MustFromRows(t, [][]float64{
		{0, 1},
		{1, 0},
	}))
	AssertErrorIs(t, err, matrix.ErrSingular)
}

func TestLU_PivotedRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		a := DiagDominantDense(t, 6, seed)

		dec, err := matrix.LU(a)
		if err != nil {
			t.Fatalf("seed %d: LU: %v", seed, err)
		}

		// P·A = L·U.
		pa := MulDense(t, dec.P, a)
		lu := MulDense(t, dec.L, dec.U)
		CompareClose(t, pa, lu, deltaLoose)
	}
}

func TestLU_FactorShapes(t *testing.T) {
	a := DiagDominantDense(t, 5, 17)
	dec, err := matrix.LU(a)
	if err != nil {
		t.Fatalf("LU: %v", err)
	}

	n := 5
	var i, j int
	for i = 0; i < n; i++ {
		// L has unit diagonal and zeros above it.
		if got := MustAt(t, dec.L, i, i); got != 1 {
			t.Fatalf("L[%d,%d] = %v; want 1", i, i, got)
		}
		for j = i + 1; j < n; j++ {
			if got := MustAt(t, dec.L, i, j); got != 0 {
				t.Fatalf("L[%d,%d] = %v; want 0 (upper part)", i, j, got)
			}
		}
		// U has zeros below the diagonal.
		for j = 0; j < i; j++ {
			if got := MustAt(t, dec.U, i, j); got != 0 {
				t.Fatalf("U[%d,%d] = %v; want 0 (lower part)", i, j, got)
			}
		}
	}
}

func TestLU_PermMatchesP(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{0, 1, 2},
		{3, 1, 0},
		{1, 4, 1},
	})
	dec, err := matrix.LU(a)
	if err != nil {
		t.Fatalf("LU: %v", err)
	}
	if len(dec.Perm) != 3 {
		t.Fatalf("len(Perm) = %d; want 3", len(dec.Perm))
	}

	// Row i of P·A is row Perm[i] of A.
	pa := MulDense(t, dec.P, a)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			if got, want := MustAt(t, pa, i, j), MustAt(t, a, dec.Perm[i], j); got != want {
				t.Fatalf("P·A row %d disagrees with A row Perm[%d]=%d", i, i, dec.Perm[i])
			}
		}
	}
}

func TestLU_Singular(t *testing.T) {
	_, err := matrix.LU(MustFromRows(t, [][]float64{
		{1, 2},
		{2, 4},
	}))
	AssertErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.LU(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.LU(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLUFactor_SignTracksDeterminant(t *testing.T) {
	a := MustFromRows(t, [][]float64{
		{0, 1, 2},
		{3, 1, 0},
		{1, 4, 1},
	})

	lu, _, sign, err := matrix.LUFactor_TestOnly(a, matrix.DefaultEpsilon)
	if err != nil {
		t.Fatalf("luFactor: %v", err)
	}

	// sign · Π U[i][i] must equal the cofactor-expansion determinant.
	det := sign
	for i := 0; i < 3; i++ {
		det *= MustAt(t, lu, i, i)
	}
	ref, err := matrix.Determinant(a)
	if err != nil {
		t.Fatalf("Determinant: %v", err)
	}
	if math.Abs(det-ref) > deltaTight {
		t.Fatalf("sign·ΠU = %v; cofactor det = %v", det, ref)
	}
}
