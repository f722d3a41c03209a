// Package mahalanobis: options and error definitions for distance annotation.
package mahalanobis

import (
	"errors"

	"github.com/nshiab/journalism-sub001/matrix"
)

// Enrichment field names written by Annotate.
const (
	// DistanceField is the record field receiving the Mahalanobis distance.
	DistanceField = "distance"

	// SimilarityField is the record field receiving the normalized
	// similarity when Options.Similarity is enabled.
	SimilarityField = "similarity"
)

// Sentinel errors for the distance engine.
var (
	// ErrDimensionMismatch is returned when vector lengths and the inverse
	// covariance dimension disagree.
	ErrDimensionMismatch = errors.New("mahalanobis: dimension mismatch")

	// ErrEmptyOrigin is returned when the origin point has no variables.
	ErrEmptyOrigin = errors.New("mahalanobis: empty origin point")
)

// Variable is one ordered coordinate of the origin point: the record field it
// reads and the reference value distances are measured from.
type Variable struct {
	Key   string
	Value float64
}

// Options configures Annotate.
//
// Fields:
//   - Similarity        — also write SimilarityField = 1 − d/maxDist on every
//     record. The normalization is per call: scores are only meaningful
//     within one annotated batch.
//   - InverseCovariance — reuse a precomputed inverse covariance matrix
//     instead of deriving one from the dataset. Its dimension must match the
//     origin's variable count.
type Options struct {
	Similarity        bool
	InverseCovariance matrix.Matrix
}

// DefaultOptions returns Options with similarity disabled and the inverse
// covariance derived from the annotated dataset itself.
func DefaultOptions() Options {
	return Options{}
}
