// Package matrix provides the dense linear-algebra foundation for the
// statistics engines: square-matrix inversion and covariance construction.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix backed by a flat slice with O(1)
//     element access and cache-friendly traversal.
//   - Invert, Gauss–Jordan elimination with partial pivoting; a zero pivot
//     after reduction is ErrSingular (no inverse exists, not recoverable).
//   - Covariance / InverseCovariance, the population covariance matrix of a
//     set of observation rows, symmetric by construction.
//
// All kernels are pure: inputs are never mutated, results are freshly
// allocated, and identical inputs always produce identical outputs.
package matrix
