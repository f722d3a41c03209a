package htest

import (
	"fmt"
	"math"

	"github.com/nshiab/journalism-sub001/dataset"
)

// PairedTTest compares two numeric fields measured on the same records.
//
// The statistic is the mean of the per-record differences keyA - keyB,
// shifted by the hypothesized difference and divided by its standard
// error; under H0 it follows a Student-t distribution with n-1 degrees
// of freedom.
//
// Inputs:
//   - records: the paired observations; every record must carry finite
//     numeric values under both keys.
//   - keyA, keyB: the two fields to compare.
//   - opts: tail and hypothesized difference; DefaultTTestOptions()
//     for a two-tailed test of zero difference.
//
// Returns the statistic, degrees of freedom, p-value and sample
// summaries, or:
//   - ErrInvalidData: a field is missing or non-numeric, or the
//     differences have zero variance away from the hypothesized mean.
//   - ErrInsufficientSample: fewer than two records.
//   - ErrInvalidParameter: unknown tail or non-finite hypothesized
//     difference.
//
// Identical pairs (all differences equal to the hypothesized value)
// are not an error: the result is statistic 0, p-value 1.
//
// Determinism: deterministic. Complexity: O(n) time, O(n) memory.
func PairedTTest(records []dataset.Record, keyA, keyB string, opts TTestOptions) (*TTestResult, error) {
	if opts.Tail > RightTailed {
		return nil, fmt.Errorf("%w: tail %d", ErrInvalidParameter, opts.Tail)
	}
	if math.IsNaN(opts.HypothesizedDifference) || math.IsInf(opts.HypothesizedDifference, 0) {
		return nil, fmt.Errorf("%w: hypothesized difference must be finite", ErrInvalidParameter)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: paired t-test needs at least 2 records, got %d", ErrInsufficientSample, len(records))
	}
	colA, err := dataset.Column(records, keyA)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	colB, err := dataset.Column(records, keyB)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	n := len(records)
	diffs := make([]float64, n)
	for i := range diffs {
		diffs[i] = colA[i] - colB[i]
	}
	meanA, varA := meanVariance(colA)
	meanB, varB := meanVariance(colB)
	meanD, varD := meanVariance(diffs)

	res := &TTestResult{
		MeanA: meanA, MeanB: meanB,
		VarianceA: varA, VarianceB: varB,
		NA: n, NB: n,
		MeanDifference:     meanD,
		VarianceDifference: varD,
		DF:                 float64(n - 1),
		Tail:               opts.Tail,
	}
	if varD == 0 {
		if meanD != opts.HypothesizedDifference {
			// Constant differences away from H0 would make the statistic
			// infinite.
			return nil, fmt.Errorf("%w: zero variance with mean difference %g away from hypothesized %g", ErrInvalidData, meanD, opts.HypothesizedDifference)
		}
		res.Statistic = 0
		res.PValue = 1
		return res, nil
	}
	res.Statistic = (meanD - opts.HypothesizedDifference) / math.Sqrt(varD/float64(n))
	res.PValue = pValue(studentTCDF(res.Statistic, res.DF), opts.Tail)
	return res, nil
}

// TwoSampleTTest compares one numeric field across two independent
// record groups using Welch's unequal-variance t-test.
//
// The statistic is (meanA - meanB) / sqrt(varA/nA + varB/nB); degrees
// of freedom follow the Welch-Satterthwaite equation and are generally
// fractional.
//
// Inputs:
//   - groupA, groupB: the two independent samples; every record must
//     carry a finite numeric value under key.
//   - key: the field to compare.
//   - opts: tail selection; DefaultTTestOptions() for two-tailed.
//
// Errors:
//   - ErrInvalidData: a field is missing or non-numeric, or both groups
//     have zero variance with unequal means (perfect separation, the
//     statistic is undefined).
//   - ErrInsufficientSample: either group has fewer than two records.
//   - ErrInvalidParameter: unknown tail.
//
// Two constant groups with equal means yield statistic 0, p-value 1.
//
// Determinism: deterministic. Complexity: O(nA + nB) time.
func TwoSampleTTest(groupA, groupB []dataset.Record, key string, opts TTestOptions) (*TTestResult, error) {
	if opts.Tail > RightTailed {
		return nil, fmt.Errorf("%w: tail %d", ErrInvalidParameter, opts.Tail)
	}
	if len(groupA) < 2 || len(groupB) < 2 {
		return nil, fmt.Errorf("%w: each group needs at least 2 records, got %d and %d", ErrInsufficientSample, len(groupA), len(groupB))
	}
	colA, err := dataset.Column(groupA, key)
	if err != nil {
		return nil, fmt.Errorf("%w: group A: %w", ErrInvalidData, err)
	}
	colB, err := dataset.Column(groupB, key)
	if err != nil {
		return nil, fmt.Errorf("%w: group B: %w", ErrInvalidData, err)
	}

	nA, nB := float64(len(colA)), float64(len(colB))
	meanA, varA := meanVariance(colA)
	meanB, varB := meanVariance(colB)

	res := &TTestResult{
		MeanA: meanA, MeanB: meanB,
		VarianceA: varA, VarianceB: varB,
		NA: len(colA), NB: len(colB),
		MeanDifference: meanA - meanB,
		Tail:           opts.Tail,
	}
	if varA == 0 && varB == 0 {
		if meanA != meanB {
			return nil, fmt.Errorf("%w: both groups constant with unequal means %g and %g", ErrInvalidData, meanA, meanB)
		}
		res.Statistic = 0
		res.DF = nA + nB - 2
		res.PValue = 1
		return res, nil
	}

	sa, sb := varA/nA, varB/nB
	se := math.Sqrt(sa + sb)
	res.Statistic = (meanA - meanB) / se
	res.DF = (sa + sb) * (sa + sb) / (sa*sa/(nA-1) + sb*sb/(nB-1))
	res.PValue = pValue(studentTCDF(res.Statistic, res.DF), opts.Tail)
	return res, nil
}

// meanVariance returns the mean and the unbiased (n-1) sample variance
// of xs. len(xs) >= 2 is the caller's responsibility.
func meanVariance(xs []float64) (mean, variance float64) {
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs) - 1)
	return mean, variance
}
