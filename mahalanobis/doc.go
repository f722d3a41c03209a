// Package mahalanobis computes correlation-aware distances between numeric
// records and a reference point.
//
// The Mahalanobis distance generalizes Euclidean distance by weighting each
// dimension with the inverse covariance matrix of the dataset, so correlated
// or differently scaled variables do not dominate the result.
//
// The package provides:
//
//   - Distance, the raw quadratic form between two vectors given an inverse
//     covariance matrix.
//   - Annotate, which enriches every record of a dataset with its distance
//     from an origin point, and optionally with a dataset-relative
//     similarity score (1 − distance/maxDistance).
//
// The origin point is an ordered list of variables: its order defines the
// exact vector layout fed to the quadratic form, and therefore the layout of
// the covariance matrix. Similarity is recomputed per call against that
// call's maximum distance — scores from different calls are not comparable.
package mahalanobis
