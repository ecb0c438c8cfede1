// SPDX-License-Identifier: MIT
// Determinant family tests: cofactor expansion, minors, cofactors, trace,
// and cross-checks against the LU-based determinant.

package matrix_test

import (
	"testing"

	"github.com/hertamath/herta/matrix"
)

func TestDeterminant_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"one_by_one", [][]float64{{5}}, 5},
		{"two_by_two", [][]float64{{1, 2}, {3, 4}}, -2},
		{"identity3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"singular_rank1", [][]float64{{1, 2}, {2, 4}}, 0},
		{"three_by_three", [][]float64{
			{2, 0, 1},
			{1, 3, -1},
			{0, 5, 2},
		}, 2*(6+5) - 0 + 1*5}, // expansion along row 0: 22 + 5 = 27
		{"upper_triangular", [][]float64{
			{2, 7, 1},
			{0, 3, 4},
			{0, 0, -5},
		}, -30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Determinant(MustFromRows(t, tc.rows))
			if err != nil {
				t.Fatalf("Determinant: %v", err)
			}
			if !InDelta(t, got, tc.want, deltaTight) {
				t.Fatalf("det = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Determinant(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDeterminant_RowChoiceIsIrrelevant(t *testing.T) {
	// Cofactor expansion along any row must give the same value; the public
	// API always uses row 0, the white-box bridge exercises the rest.
	d := RandFilledDense(t, 4, 4, 99)

	ref := matrix.DetExpandRow_TestOnly(d, 0)
	for row := 1; row < 4; row++ {
		got := matrix.DetExpandRow_TestOnly(d, row)
		if !InDelta(t, got, ref, deltaTight) {
			t.Fatalf("expansion along row %d = %v; row 0 gave %v", row, got, ref)
		}
	}
}

func TestDeterminant_FallbackParity(t *testing.T) {
	d := RandFilledDense(t, 4, 4, 5)

	fast, err := matrix.Determinant(d)
	if err != nil {
		t.Fatalf("Determinant fast: %v", err)
	}
	slow, err := matrix.Determinant(hide{d})
	if err != nil {
		t.Fatalf("Determinant fallback: %v", err)
	}
	if !InDelta(t, fast, slow, deltaTight) {
		t.Fatalf("fast=%v fallback=%v", fast, slow)
	}
}

func TestMinor(t *testing.T) {
	m := MustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, err := matrix.Minor(m, 1, 1)
	if err != nil {
		t.Fatalf("Minor: %v", err)
	}
	CompareExact(t, [][]float64{{1, 3}, {7, 9}}, sub)

	_, err = matrix.Minor(m, 3, 0)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(m, 0, -1)
	AssertErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(MustFromRows(t, [][]float64{{7}}), 0, 0)
	AssertErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.Minor(nil, 0, 0)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCofactor(t *testing.T) {
	m := MustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})

	// C(0,1) = (−1)^1 · det([[4,6],[7,10]]) = −(40−42) = 2.
	c01, err := matrix.Cofactor(m, 0, 1)
	if err != nil {
		t.Fatalf("Cofactor: %v", err)
	}
	if !InDelta(t, c01, 2, deltaTight) {
		t.Fatalf("Cofactor(0,1) = %v; want 2", c01)
	}

	// Laplace identity: Σ_j m[0][j]·C(0,j) = det(m).
	det, err := matrix.Determinant(m)
	if err != nil {
		t.Fatalf("Determinant: %v", err)
	}
	var sum float64
	for j := 0; j < 3; j++ {
		cj, cErr := matrix.Cofactor(m, 0, j)
		if cErr != nil {
			t.Fatalf("Cofactor(0,%d): %v", j, cErr)
		}
		sum += MustAt(t, m, 0, j) * cj
	}
	if !InDelta(t, sum, det, deltaTight) {
		t.Fatalf("Laplace sum = %v; det = %v", sum, det)
	}

	_, err = matrix.Cofactor(MustDense(t, 2, 3), 0, 0)
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

func TestTrace(t *testing.T) {
	m := MustFromRows(t, [][]float64{
		{1, 9, 9},
		{9, 2, 9},
		{9, 9, 3.5},
	})
	got, err := matrix.Trace(m)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if got != 6.5 {
		t.Fatalf("Trace = %v; want 6.5", got)
	}

	// Fallback parity.
	slow, err := matrix.Trace(hide{m})
	if err != nil {
		t.Fatalf("Trace fallback: %v", err)
	}
	if slow != got {
		t.Fatalf("fallback Trace = %v; want %v", slow, got)
	}

	_, err = matrix.Trace(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Trace(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminantLU_AgreesWithCofactorExpansion(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		d := RandFilledDense(t, 5, 5, seed)

		viaLU, err := matrix.DeterminantLU(d)
		if err != nil {
			t.Fatalf("DeterminantLU: %v", err)
		}
		viaCofactor, err := matrix.Determinant(d)
		if err != nil {
			t.Fatalf("Determinant: %v", err)
		}
		if !InDelta(t, viaLU, viaCofactor, deltaLoose) {
			t.Fatalf("seed %d: LU det = %v; cofactor det = %v", seed, viaLU, viaCofactor)
		}
	}
}

func TestDeterminantLU_SingularYieldsZero(t *testing.T) {
	got, err := matrix.DeterminantLU(MustFromRows(t, [][]float64{
		{1, 2},
		{2, 4},
	}))
	if err != nil {
		t.Fatalf("DeterminantLU: %v", err)
	}
	if got != 0 {
		t.Fatalf("det(singular) = %v; want exact 0", got)
	}
}
