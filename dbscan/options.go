// Package dbscan: functional options for Cluster.
package dbscan

import "fmt"

// Option configures Cluster behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Cluster is invoked.
type Option func(*clusterOptions)

// clusterOptions holds parsed options. The zero value means a fresh run:
// every record starts unlabeled and identifiers start at 1.
type clusterOptions struct {
	seed []Label // prior labels to resume from; nil for a fresh start

	// internal error recorded during option parsing
	err error
}

// WithSeedLabels resumes clustering from a prior Cluster result instead of
// starting fresh. Seeded records (any Type other than Unclassified) are
// treated as already visited and keep their labels; new cluster identifiers
// continue past the highest seeded one.
//
// The seed must be a parallel label slice: len(seed) must equal the record
// count and seed[i].Index must be i, otherwise Cluster fails with
// ErrOptionViolation.
func WithSeedLabels(seed []Label) Option {
	return func(o *clusterOptions) {
		if seed == nil {
			o.err = fmt.Errorf("%w: nil seed labels", ErrOptionViolation)

			return
		}
		o.seed = seed
	}
}
