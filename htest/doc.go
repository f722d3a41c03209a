// Package htest provides hypothesis tests over dataset records:
// paired and two-sample (Welch) t-tests on numeric fields, and the
// chi-squared test of independence on categorical fields.
//
// What you get:
//
//   - PairedTTest: mean difference of two fields measured on the same
//     records, Student-t distributed under H0.
//   - TwoSampleTTest: Welch unequal-variance comparison of one field
//     across two independent record groups, with Welch-Satterthwaite
//     degrees of freedom.
//   - ChiSquaredIndependenceTest: contingency-table independence of two
//     categorical fields, with frequency-based applicability warnings.
//
// Tail selection (TwoTailed, LeftTailed, RightTailed) is an option on
// both t-tests; the default is two-tailed.
//
// p-values come from closed-form approximations rather than lookup
// tables: the normal CDF uses the Abramowitz-Stegun erf polynomial
// (7.1.26, absolute error below 1.5e-7), the Student-t CDF uses the
// regularized incomplete beta function evaluated by continued fraction,
// and the chi-squared survival function uses the Wilson-Hilferty cube
// root normal approximation. All reported p-values are clamped to
// [0, 1].
//
// Errors: htest.ErrInvalidData, htest.ErrInsufficientSample,
// htest.ErrInvalidParameter; field access faults surface the dataset
// sentinels (dataset.ErrMissingField, dataset.ErrNonNumeric) wrapped in
// ErrInvalidData.
//
// Determinism: identical inputs always produce identical results;
// chi-squared category order is the sorted order of the observed
// category names.
package htest
