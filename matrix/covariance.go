// Package matrix: population covariance construction.
package matrix

import (
	"fmt"
	"math"
)

// Covariance computes the population covariance matrix of rows observations
// over m variables.
//
// Implementation:
//   - Stage 1: validate the input is non-empty, rectangular and finite.
//   - Stage 2: one pass accumulates per-variable means.
//   - Stage 3: for each variable pair (i ≤ j), accumulate the centered
//     cross-product and divide by N (population covariance, not sample);
//     only the upper triangle is computed, the lower is mirrored.
//
// Behavior highlights:
//   - Symmetric by construction; the diagonal holds population variances.
//   - Division is by N, matching the population formulation the distance
//     engine expects. Callers needing Bessel correction can rescale by
//     N/(N−1).
//
// Inputs:
//   - rows: observations × variables, rectangular, all cells finite.
//
// Returns:
//   - *Dense: m×m covariance matrix.
//
// Errors:
//   - ErrInvalidDimensions (no rows/columns), ErrRagged (uneven rows),
//     ErrNaNInf (non-finite cell, reported with its position).
//
// Determinism:
//   - Fixed i→j pair order and fixed observation order; stable output.
//
// Complexity:
//   - Time O(n·m²), Space O(m²).
//
// AI-Hints:
//   - Pipe the result through Invert (or call InverseCovariance) to feed
//     Mahalanobis distance; inversion fails with ErrSingular when two
//     variables are perfectly collinear.
func Covariance(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opCovariance, ErrInvalidDimensions)
	}

	n, m := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != m {
			return nil, matrixErrorf(opCovariance, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, i, len(row), m))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opCovariance, fmt.Errorf("%w: at (%d,%d)", ErrNaNInf, i, j))
			}
		}
	}

	// Per-variable means.
	means := make([]float64, m)
	for _, row := range rows {
		for j, v := range row {
			means[j] += v
		}
	}
	invN := 1.0 / float64(n)
	for j := range means {
		means[j] *= invN
	}

	// Upper triangle of centered cross-products, mirrored to the lower half.
	cov := &Dense{r: m, c: m, data: make([]float64, m*m)}
	var i, j int
	var sum float64
	for i = 0; i < m; i++ {
		for j = i; j < m; j++ {
			sum = 0
			for _, row := range rows {
				sum += (row[i] - means[i]) * (row[j] - means[j])
			}
			sum *= invN
			cov.data[i*m+j] = sum
			cov.data[j*m+i] = sum
		}
	}

	return cov, nil
}

// InverseCovariance computes Covariance(rows) and pipes the result through
// Invert. Returns ErrSingular when the covariance has no inverse (e.g.
// perfectly collinear variables).
// Complexity: O(n·m² + m³).
func InverseCovariance(rows [][]float64) (*Dense, error) {
	cov, err := Covariance(rows)
	if err != nil {
		return nil, err
	}

	return Invert(cov)
}
