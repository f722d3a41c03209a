package dbscan

import (
	"fmt"
	"math"

	"github.com/nshiab/journalism-sub001/dataset"
)

// Cluster partitions records into density-based clusters and returns one
// Label per record, parallel to the input slice. The input records are never
// mutated; merge the labels back with Apply if in-place enrichment is wanted.
//
// Implementation:
//   - Stage 1: validate parameters and options; start from fresh labels or
//     from WithSeedLabels.
//   - Stage 2: for every unvisited record compute its eps-neighborhood
//     (records within eps under metric, itself included). Sparse records are
//     provisionally noise. Dense records become core, open a new cluster and
//     absorb their neighborhood breadth-first: each absorbed neighbor that is
//     itself core extends the frontier (deduplicated queue); non-core
//     neighbors become border records of the cluster.
//   - Stage 3: records still labeled noise are rescued as border when any of
//     their neighbors is a core record (lowest-index core wins); the rest are
//     permanent noise.
//
// Behavior highlights:
//   - Deterministic: records are visited in input order, frontier order is
//     fixed, so re-running on the same input reproduces the same partition.
//   - Cluster identifiers are assigned in first-core-discovery order,
//     starting at 1 (continuing past the seed maximum on resume) and are
//     never reused. NoCluster (0) marks noise.
//   - The neighborhood query is O(n) metric calls per record, O(n²) total;
//     correctness needs no spatial index, only performance at scale would.
//
// Errors:
//   - ErrInvalidParameter (eps < 0 or NaN, minNeighbors < 1), ErrNilMetric,
//     dataset.ErrNoRecords, ErrOptionViolation (malformed seed), plus any
//     error returned by the metric itself.
//
// Complexity: O(n²) metric evaluations, O(n) space for labels and frontier.
func Cluster(records []dataset.Record, eps float64, minNeighbors int, metric Metric, opts ...Option) ([]Label, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if math.IsNaN(eps) || eps < 0 {
		return nil, fmt.Errorf("%w: eps %v", ErrInvalidParameter, eps)
	}
	if minNeighbors < 1 {
		return nil, fmt.Errorf("%w: minNeighbors %d", ErrInvalidParameter, minNeighbors)
	}
	if len(records) == 0 {
		return nil, dataset.ErrNoRecords
	}

	var options clusterOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.err != nil {
		return nil, options.err
	}

	n := len(records)
	labels := make([]Label, n)
	visited := make([]bool, n)
	nextID := 1
	for i := range labels {
		labels[i] = Label{Index: i, ClusterID: NoCluster, Type: Unclassified}
	}
	if options.seed != nil {
		if len(options.seed) != n {
			return nil, fmt.Errorf("%w: %d seed labels for %d records", ErrOptionViolation, len(options.seed), n)
		}
		for i, l := range options.seed {
			if l.Index != i {
				return nil, fmt.Errorf("%w: seed label %d has index %d", ErrOptionViolation, i, l.Index)
			}
			if l.Type == Unclassified {
				continue
			}
			labels[i] = l
			visited[i] = true
			if l.ClusterID >= nextID {
				nextID = l.ClusterID + 1
			}
		}
	}

	// neighborhood collects every record within eps of records[i], including
	// i itself, in ascending index order.
	neighborhood := func(i int) ([]int, error) {
		neigh := make([]int, 0, minNeighbors)
		for j := 0; j < n; j++ {
			d, err := metric(records[i], records[j])
			if err != nil {
				return nil, fmt.Errorf("metric(%d,%d): %w", i, j, err)
			}
			if d <= eps {
				neigh = append(neigh, j)
			}
		}

		return neigh, nil
	}

	// First pass: discover cores and expand clusters breadth-first.
	for p := 0; p < n; p++ {
		if visited[p] {
			continue
		}
		visited[p] = true

		neigh, err := neighborhood(p)
		if err != nil {
			return nil, err
		}
		if len(neigh) < minNeighbors {
			// Provisional: the second pass may rescue it as border.
			labels[p] = Label{Index: p, ClusterID: NoCluster, Type: Noise}

			continue
		}

		cid := nextID
		nextID++
		labels[p] = Label{Index: p, ClusterID: cid, Type: Core}

		// Deduplicated frontier queue, seeded with the core's neighborhood.
		queued := make([]bool, n)
		queued[p] = true
		queue := make([]int, 0, len(neigh))
		for _, q := range neigh {
			if !queued[q] {
				queued[q] = true
				queue = append(queue, q)
			}
		}

		for head := 0; head < len(queue); head++ {
			q := queue[head]
			if labels[q].Type == Noise {
				// A previously sparse record reached by a core: border.
				labels[q] = Label{Index: q, ClusterID: cid, Type: Border}
			}
			if visited[q] {
				continue
			}
			visited[q] = true

			nq, err := neighborhood(q)
			if err != nil {
				return nil, err
			}
			if len(nq) < minNeighbors {
				labels[q] = Label{Index: q, ClusterID: cid, Type: Border}

				continue
			}
			// q is core: it joins the cluster and extends the frontier.
			labels[q] = Label{Index: q, ClusterID: cid, Type: Core}
			for _, r := range nq {
				if !queued[r] {
					queued[r] = true
					queue = append(queue, r)
				}
			}
		}
	}

	// Second pass: rescue leftover noise adjacent to a core record. Relevant
	// on seeded resumes, where a pre-labeled noise record may now sit next to
	// a freshly discovered core.
	for p := 0; p < n; p++ {
		if labels[p].Type != Noise {
			continue
		}
		neigh, err := neighborhood(p)
		if err != nil {
			return nil, err
		}
		for _, q := range neigh {
			if labels[q].Type == Core {
				labels[p] = Label{Index: p, ClusterID: labels[q].ClusterID, Type: Border}

				break
			}
		}
	}

	return labels, nil
}

// Apply merges a Cluster result back into caller-owned records: every record
// gains ClusterIDField (nil for noise) and ClusterTypeField. Unrelated fields
// are untouched.
//
// The labels slice must be parallel to records (same length, Index in
// range), otherwise ErrOptionViolation.
func Apply(records []dataset.Record, labels []Label) error {
	if len(labels) != len(records) {
		return fmt.Errorf("%w: %d labels for %d records", ErrOptionViolation, len(labels), len(records))
	}
	for _, l := range labels {
		if l.Index < 0 || l.Index >= len(records) {
			return fmt.Errorf("%w: label index %d out of range", ErrOptionViolation, l.Index)
		}
		rec := records[l.Index]
		if l.ClusterID == NoCluster {
			rec[ClusterIDField] = nil
		} else {
			rec[ClusterIDField] = l.ClusterID
		}
		rec[ClusterTypeField] = l.Type.String()
	}

	return nil
}
