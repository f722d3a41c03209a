package htest

import "errors"

// Sentinel errors returned by the tests in this package.
// Match with errors.Is; message prefixes follow the "htest: ..." convention.
var (
	// ErrInvalidData - the input records cannot support the requested test:
	// non-numeric or missing fields, negative counts, an all-zero
	// contingency table, or degenerate zero-variance groups with unequal
	// means.
	ErrInvalidData = errors.New("htest: invalid data")

	// ErrInsufficientSample - fewer observations than the test requires
	// (two paired records, or two records per group).
	ErrInsufficientSample = errors.New("htest: insufficient sample")

	// ErrInvalidParameter - an option value outside its legal range,
	// such as an unknown tail.
	ErrInvalidParameter = errors.New("htest: invalid parameter")
)

// Tail selects which tail(s) of the null distribution contribute to the
// p-value of a t-test.
type Tail uint8

const (
	// TwoTailed - H1: the means differ in either direction (default).
	TwoTailed Tail = iota
	// LeftTailed - H1: the first mean is smaller.
	LeftTailed
	// RightTailed - H1: the first mean is larger.
	RightTailed
)

// String implements fmt.Stringer for diagnostics.
func (t Tail) String() string {
	switch t {
	case TwoTailed:
		return "two-tailed"
	case LeftTailed:
		return "left-tailed"
	case RightTailed:
		return "right-tailed"
	default:
		return "unknown"
	}
}

// TTestOptions tunes PairedTTest and TwoSampleTTest.
type TTestOptions struct {
	// Tail selects the alternative hypothesis. Default: TwoTailed.
	Tail Tail

	// HypothesizedDifference is the mean difference under H0 for
	// PairedTTest (default 0). Must be finite. Ignored by
	// TwoSampleTTest.
	HypothesizedDifference float64
}

// DefaultTTestOptions returns the baseline configuration: two-tailed.
func DefaultTTestOptions() TTestOptions {
	return TTestOptions{Tail: TwoTailed}
}

// TTestResult bundles a t-test statistic with the sample summaries it
// was computed from.
//
// For PairedTTest, MeanA/MeanB and VarianceA/VarianceB describe the two
// paired columns, NA == NB is the pair count, and MeanDifference /
// VarianceDifference describe the per-record differences the statistic
// is built on. For TwoSampleTTest the difference fields hold
// MeanA - MeanB and zero respectively.
type TTestResult struct {
	MeanA, MeanB         float64
	VarianceA, VarianceB float64
	NA, NB               int

	MeanDifference     float64
	VarianceDifference float64

	// Statistic is the t value, DF the (possibly fractional) degrees of
	// freedom, PValue the tail probability under H0 clamped to [0, 1].
	Statistic float64
	DF        float64
	PValue    float64
	Tail      Tail
}

// ChiSquaredResult reports a chi-squared test of independence.
type ChiSquaredResult struct {
	// RowCategories and ColCategories list the observed category names
	// in sorted order; Observed and Expected are indexed [row][col] in
	// that same order.
	RowCategories []string
	ColCategories []string
	Observed      [][]float64
	Expected      [][]float64

	Statistic float64
	DF        float64
	PValue    float64

	// Warnings flags low expected or observed frequencies that make the
	// chi-squared approximation unreliable. They are advisory: the test
	// still returns its result.
	Warnings []string
}
