// Package dbscan: label types, metrics and error definitions.
package dbscan

import (
	"errors"
	"math"

	"github.com/nshiab/journalism-sub001/dataset"
)

// Enrichment field names written by Apply.
const (
	// ClusterIDField is the record field receiving the cluster identifier
	// (nil for noise).
	ClusterIDField = "clusterId"

	// ClusterTypeField is the record field receiving the classification
	// ("core", "border" or "noise").
	ClusterTypeField = "clusterType"
)

// NoCluster is the reserved identifier for records that belong to no cluster.
const NoCluster = 0

// Sentinel errors for clustering execution.
var (
	// ErrInvalidParameter is returned for a negative eps or minNeighbors < 1.
	ErrInvalidParameter = errors.New("dbscan: invalid parameter")

	// ErrNilMetric is returned when no distance metric is supplied.
	ErrNilMetric = errors.New("dbscan: nil metric")

	// ErrOptionViolation is returned when an invalid Option is supplied,
	// e.g. seed labels whose length does not match the dataset.
	ErrOptionViolation = errors.New("dbscan: invalid option supplied")
)

// Metric measures the distance between two records. Implementations must be
// deterministic and symmetric for the partition to be reproducible; any
// extraction failure (missing key, non-numeric field) aborts the run.
type Metric func(a, b dataset.Record) (float64, error)

// ClusterType is the three-state density classification of a record.
type ClusterType int

const (
	// Unclassified means the record has not been visited yet (seed labels
	// only; Cluster never returns it).
	Unclassified ClusterType = iota

	// Core records have at least minNeighbors records within eps.
	Core

	// Border records are inside some core record's neighborhood but are not
	// dense enough to be core themselves.
	Border

	// Noise records belong to no cluster.
	Noise
)

// String returns the lowercase classification name.
func (t ClusterType) String() string {
	switch t {
	case Core:
		return "core"
	case Border:
		return "border"
	case Noise:
		return "noise"
	default:
		return "unclassified"
	}
}

// Label is the clustering outcome for one record: the record's position in
// the input slice, its cluster identifier (NoCluster for noise) and its
// classification.
type Label struct {
	Index     int
	ClusterID int
	Type      ClusterType
}

// EuclideanMetric builds a Metric computing the straight-line distance over
// the given numeric record fields.
func EuclideanMetric(keys ...string) Metric {
	return func(a, b dataset.Record) (float64, error) {
		var sum float64
		for _, key := range keys {
			av, err := a.Number(key)
			if err != nil {
				return 0, err
			}
			bv, err := b.Number(key)
			if err != nil {
				return 0, err
			}
			d := av - bv
			sum += d * d
		}

		return math.Sqrt(sum), nil
	}
}

// ManhattanMetric builds a Metric computing the L1 (taxicab) distance over
// the given numeric record fields.
func ManhattanMetric(keys ...string) Metric {
	return func(a, b dataset.Record) (float64, error) {
		var sum float64
		for _, key := range keys {
			av, err := a.Number(key)
			if err != nil {
				return 0, err
			}
			bv, err := b.Number(key)
			if err != nil {
				return 0, err
			}
			sum += math.Abs(av - bv)
		}

		return sum, nil
	}
}
