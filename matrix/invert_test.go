package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/nshiab/journalism-sub001/matrix"
)

const tol = 1e-12

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestInvert_KnownTwoByTwo verifies the worked 2×2 example:
// Invert([[4,7],[2,6]]) == [[0.6,-0.7],[-0.2,0.4]].
func TestInvert_KnownTwoByTwo(t *testing.T) {
	m := mustDense(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := matrix.Invert(m)
	require.NoError(t, err)

	want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, err := inv.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], got, tol, "at (%d,%d)", i, j)
		}
	}
}

// TestInvert_SingularMatrix verifies that a rank-deficient matrix fails with
// ErrSingular instead of producing garbage.
func TestInvert_SingularMatrix(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {2, 4}})

	_, err := matrix.Invert(m)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInvert_NonSquare verifies ErrNonSquare on rectangular input.
func TestInvert_NonSquare(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := matrix.Invert(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInvert_NilMatrix verifies ErrNilMatrix on a nil argument.
func TestInvert_NilMatrix(t *testing.T) {
	_, err := matrix.Invert(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInvert_RoundTripIdentity verifies A × A⁻¹ ≈ I for a non-trivial matrix
// that requires pivoting (zero in the leading position).
func TestInvert_RoundTripIdentity(t *testing.T) {
	rows := [][]float64{
		{0, 2, 1},
		{1, -2, -3},
		{-1, 1, 2},
	}
	m := mustDense(t, rows)

	inv, err := matrix.Invert(m)
	require.NoError(t, err)

	// prod = A × A⁻¹, expected to be the identity within tolerance.
	n := 3
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				invKJ, err := inv.At(k, j)
				require.NoError(t, err)
				sum += rows[i][k] * invKJ
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, sum, 1e-10, "product at (%d,%d)", i, j)
		}
	}
}

// TestInvert_MatchesGonum cross-checks the Gauss–Jordan kernel against
// gonum's reference inverse on a 4×4 matrix.
func TestInvert_MatchesGonum(t *testing.T) {
	rows := [][]float64{
		{4, 1, 0, 2},
		{1, 5, 1, 0},
		{0, 1, 3, 1},
		{2, 0, 1, 6},
	}
	m := mustDense(t, rows)

	inv, err := matrix.Invert(m)
	require.NoError(t, err)

	flat := make([]float64, 0, 16)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	var ref mat.Dense
	require.NoError(t, ref.Inverse(mat.NewDense(4, 4, flat)))

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, err := inv.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, ref.At(i, j), got, 1e-10, "at (%d,%d)", i, j)
		}
	}
}

// TestInvert_InputUntouched verifies the kernel has no side effects on its
// argument.
func TestInvert_InputUntouched(t *testing.T) {
	m := mustDense(t, [][]float64{{4, 7}, {2, 6}})

	_, err := matrix.Invert(m)
	require.NoError(t, err)

	want := [][]float64{{4, 7}, {2, 6}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[i][j], got)
		}
	}
}

// TestFromRows_Validation verifies the defensive checks on ragged and
// non-finite input.
func TestFromRows_Validation(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRagged)

	inf := 1e308
	inf *= 10 // +Inf without a constant-overflow compile error
	_, err = matrix.FromRows([][]float64{{1, inf}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSetBounds verifies ErrOutOfRange from the public indexers.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 1.0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
