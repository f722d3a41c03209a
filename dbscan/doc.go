// Package dbscan implements density-based clustering over numeric records
// with a caller-supplied distance metric.
//
// DBSCAN classifies every record as one of:
//
//   - core:   at least minNeighbors records (itself included) lie within the
//     eps radius under the metric;
//   - border: not core, but inside the neighborhood of a core record;
//   - noise:  neither — the record belongs to no cluster.
//
// Clusters grow by breadth-first neighbor expansion from each newly
// discovered core record, with a deduplicated frontier queue. Cluster
// identifiers are assigned monotonically in first-core-discovery order and
// never reused; 0 is the reserved "no cluster" identifier.
//
// The engine is pure: Cluster returns a parallel []Label slice and never
// touches the input records. Callers wanting the labels merged back into
// their own records (the convenient, mutating shape) call Apply with the
// result. Re-running Cluster on the same input, eps, minNeighbors and a
// deterministic metric always reproduces the same partition.
//
// The metric is fully pluggable — EuclideanMetric and ManhattanMetric cover
// the common cases, and any func(a, b dataset.Record) (float64, error) works,
// including one backed by mahalanobis.Distance.
package dbscan
