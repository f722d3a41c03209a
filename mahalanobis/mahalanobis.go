package mahalanobis

import (
	"fmt"
	"math"

	"github.com/nshiab/journalism-sub001/dataset"
	"github.com/nshiab/journalism-sub001/matrix"
)

// Distance computes the Mahalanobis distance between x1 and x2 given an
// inverse covariance matrix:
//
//	d = sqrt( Σ_i Σ_j (x1_i − x2_i) · inv[i][j] · (x1_j − x2_j) )
//
// Implementation:
//   - Stage 1: validate invCov is square and both vectors match its dimension.
//   - Stage 2: accumulate the quadratic form in fixed i→j order.
//
// Behavior highlights:
//   - A zero vector difference yields exactly 0.
//   - invCov must be symmetric positive semi-definite for the result to be
//     real and non-negative; supplying a valid inverse covariance is the
//     caller's contract. A slightly negative quadratic form from float noise
//     is clamped to 0 rather than returned as NaN.
//
// Errors:
//   - ErrDimensionMismatch when len(x1), len(x2) and invCov disagree.
//   - matrix.ErrNonSquare / matrix.ErrNilMatrix via validation.
//
// Complexity: O(D²) time, O(D) space for the difference vector.
func Distance(x1, x2 []float64, invCov matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(invCov); err != nil {
		return 0, err
	}
	d := invCov.Rows()
	if len(x1) != d || len(x2) != d {
		return 0, fmt.Errorf("%w: len(x1)=%d len(x2)=%d matrix=%d", ErrDimensionMismatch, len(x1), len(x2), d)
	}

	diff := make([]float64, d)
	for i := range diff {
		diff[i] = x1[i] - x2[i]
	}

	var sum float64
	if dm, ok := invCov.(*matrix.Dense); ok {
		// Fast path: flat row-major access via At is still O(1), but the
		// concrete receiver avoids interface dispatch in the inner loop.
		for i := 0; i < d; i++ {
			if diff[i] == 0 {
				continue // zero rows contribute nothing
			}
			for j := 0; j < d; j++ {
				v, _ := dm.At(i, j) // bounds proven by validation above
				sum += diff[i] * v * diff[j]
			}
		}
	} else {
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				v, err := invCov.At(i, j)
				if err != nil {
					return 0, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				sum += diff[i] * v * diff[j]
			}
		}
	}

	// Float noise on a PSD form can dip microscopically below zero.
	if sum < 0 {
		sum = 0
	}

	return math.Sqrt(sum), nil
}

// Annotate writes the Mahalanobis distance from origin onto every record of
// the dataset, under DistanceField. With opts.Similarity a second pass writes
// SimilarityField = 1 − distance/maxDistance.
//
// Implementation:
//   - Stage 1: extract the variable layout from origin (order matters: it
//     defines the covariance extraction order) and build per-record vectors.
//   - Stage 2: use opts.InverseCovariance when supplied, else derive it from
//     the dataset via matrix.InverseCovariance.
//   - Stage 3: one pass computes and writes distances; an optional second
//     pass normalizes against the maximum distance of this batch.
//
// Behavior highlights:
//   - Enrichment is non-destructive: unrelated record fields are untouched.
//   - Similarity is dataset-relative and recomputed on every call; a batch
//     where every record sits on the origin (maxDist == 0) gets similarity 1.
//
// Errors:
//   - ErrEmptyOrigin, dataset.ErrNoRecords / ErrMissingField / ErrNonNumeric
//     (with record index), matrix.ErrSingular for collinear variables,
//     ErrDimensionMismatch when a supplied matrix does not fit the origin.
//
// Complexity: O(n·D² + D³) time (distances + one inversion), O(n·D) space.
func Annotate(origin []Variable, records []dataset.Record, opts Options) error {
	if len(origin) == 0 {
		return ErrEmptyOrigin
	}

	keys := make([]string, len(origin))
	center := make([]float64, len(origin))
	for i, v := range origin {
		keys[i] = v.Key
		center[i] = v.Value
	}

	vectors, err := dataset.Vectors(records, keys)
	if err != nil {
		return err
	}

	invCov := opts.InverseCovariance
	if invCov == nil {
		derived, err := matrix.InverseCovariance(vectors)
		if err != nil {
			return err
		}
		invCov = derived
	} else if invCov.Rows() != len(origin) || invCov.Cols() != len(origin) {
		return fmt.Errorf("%w: matrix is %dx%d, origin has %d variables",
			ErrDimensionMismatch, invCov.Rows(), invCov.Cols(), len(origin))
	}

	distances := make([]float64, len(records))
	maxDist := 0.0
	for i, vec := range vectors {
		d, err := Distance(vec, center, invCov)
		if err != nil {
			return err
		}
		distances[i] = d
		if d > maxDist {
			maxDist = d
		}
		records[i][DistanceField] = d
	}

	if opts.Similarity {
		for i := range records {
			if maxDist == 0 {
				records[i][SimilarityField] = 1.0

				continue
			}
			records[i][SimilarityField] = 1.0 - distances[i]/maxDist
		}
	}

	return nil
}
