// Package dataset defines the open record type shared by every engine in
// this module, together with validated numeric field access.
//
// The dataset package provides:
//
//   - Record, an open field→value mapping: engines read the numeric fields
//     they are told about and pass every other field through untouched, so
//     enrichment is always non-destructive.
//   - Number, a single validated accessor turning a dynamic field into a
//     finite float64 (missing keys, non-numeric types and NaN/±Inf are
//     rejected with sentinel errors).
//   - Column and Vectors, bulk extractors that report the offending record
//     index and key on failure, for debuggability at the boundary.
//
// Validation happens once, here, at the boundary; everything downstream
// (matrix, mahalanobis, dbscan, htest, samplesize) operates on plain
// []float64 vectors extracted by this package.
package dataset
