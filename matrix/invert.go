// Package matrix: Gauss–Jordan inversion kernel.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opInvert     = "Invert"
	opCovariance = "Covariance"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match sentinels with errors.Is. Only call with a
// non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Invert computes A⁻¹ via Gauss–Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy A into the left half of an augmented
//     [A | I] working matrix (n × 2n, flat row-major).
//   - Stage 2: for each pivot column, select the remaining row with the
//     largest |value| in that column (partial pivoting), swap it into place,
//     eliminate the column from every other row, then normalize the pivot row.
//   - Stage 3: the right half of the reduced augmented matrix is A⁻¹.
//
// Behavior highlights:
//   - Partial pivoting keeps the elimination numerically stable; row order in
//     the output is restored by construction (Gauss–Jordan, not LU).
//   - The input is never mutated; the result is a freshly allocated Dense.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//
// Returns:
//   - *Dense: n×n inverse of m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrSingular when the best available pivot is exactly zero: the matrix
//     has no inverse. This is terminal, not retryable.
//
// Determinism:
//   - Fixed column order; ties in the pivot scan resolve to the lowest row.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented working matrix.
//
// AI-Hints:
//   - Prefer *Dense inputs: the generic path reads through At with per-call
//     bounds checks and is noticeably slower for n beyond a few hundred.
//   - Near-singular inputs do not error; inspect the conditioning upstream if
//     your covariance variables are close to collinear.
func Invert(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}

	// Build the augmented [A | I] working matrix, 2n columns, flat row-major.
	n := m.Cols()
	width := 2 * n
	aug := make([]float64, n*width)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			copy(aug[i*width:i*width+n], d.data[i*n:(i+1)*n])
			aug[i*width+n+i] = 1.0
		}
	} else {
		var v float64
		var err error
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opInvert, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				aug[i*width+j] = v
			}
			aug[i*width+n+i] = 1.0
		}
	}

	var (
		col, row, k int     // loop iterators
		pivotRow    int     // row holding the current best pivot
		pivot, best float64 // pivot value and |best candidate|
		factor      float64 // elimination multiplier per row
	)
	for col = 0; col < n; col++ {
		// Partial pivoting: pick the remaining row with the largest |value|
		// in this column. Ties keep the lowest row for determinism.
		pivotRow, best = col, math.Abs(aug[col*width+col])
		for row = col + 1; row < n; row++ {
			if a := math.Abs(aug[row*width+col]); a > best {
				pivotRow, best = row, a
			}
		}
		if best == 0 {
			return nil, matrixErrorf(opInvert, ErrSingular)
		}
		if pivotRow != col {
			// Swap full augmented rows in place.
			lo, hi := col*width, pivotRow*width
			for k = 0; k < width; k++ {
				aug[lo+k], aug[hi+k] = aug[hi+k], aug[lo+k]
			}
		}

		// Eliminate this column from every other row.
		pivot = aug[col*width+col]
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			factor = aug[row*width+col] / pivot
			if factor == 0 {
				continue
			}
			base := row * width
			pbase := col * width
			for k = 0; k < width; k++ {
				aug[base+k] -= factor * aug[pbase+k]
			}
		}

		// Normalize the pivot row so the left half converges to identity.
		base := col * width
		for k = 0; k < width; k++ {
			aug[base+k] /= pivot
		}
	}

	// Extract the right half: it now holds A⁻¹.
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for row = 0; row < n; row++ {
		copy(inv.data[row*n:(row+1)*n], aug[row*width+n:row*width+width])
	}

	return inv, nil
}
