package samplesize

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/nshiab/journalism-sub001/dataset"
)

// Sentinel errors for the calculators in this package.
var (
	// ErrInvalidParameter - confidence level outside {90, 95, 99}, or a
	// non-positive margin of error or population size.
	ErrInvalidParameter = errors.New("samplesize: invalid parameter")

	// ErrInsufficientData - ForMean needs at least two records to
	// estimate the standard deviation.
	ErrInsufficientData = errors.New("samplesize: insufficient data")
)

// z-scores for the supported confidence levels.
const (
	z90 = 1.645
	z95 = 1.96
	z99 = 2.576
)

// Options tunes ForMean.
type Options struct {
	// PopulationSize overrides the population used by the finite
	// population correction. Zero means "use the record count"; negative
	// values are rejected.
	PopulationSize int
}

// DefaultOptions returns the baseline configuration: correct against
// the supplied data's own length.
func DefaultOptions() Options {
	return Options{PopulationSize: 0}
}

// ForMean returns the sample size required to estimate the mean of key
// within marginOfError at the given confidence level.
//
// The standard deviation is estimated from the supplied records
// (sample, n-1 divisor), the base size is n0 = z^2 * sigma^2 / E^2, and
// the finite population correction shrinks n0 against either
// opts.PopulationSize or, when zero, the record count. The result is
// rounded up and never below 1.
//
// Errors:
//   - ErrInvalidParameter: confidence not in {90, 95, 99}, margin <= 0,
//     or negative population size.
//   - ErrInsufficientData: fewer than two records.
//   - dataset.ErrMissingField / dataset.ErrNonNumeric: a record lacks a
//     finite numeric value under key.
func ForMean(records []dataset.Record, key string, confidence int, marginOfError float64, opts Options) (int, error) {
	z, err := zScore(confidence)
	if err != nil {
		return 0, err
	}
	if marginOfError <= 0 || math.IsNaN(marginOfError) || math.IsInf(marginOfError, 0) {
		return 0, fmt.Errorf("%w: margin of error must be positive and finite, got %g", ErrInvalidParameter, marginOfError)
	}
	if opts.PopulationSize < 0 {
		return 0, fmt.Errorf("%w: population size must not be negative, got %d", ErrInvalidParameter, opts.PopulationSize)
	}
	if len(records) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 records, got %d", ErrInsufficientData, len(records))
	}

	column, err := dataset.Column(records, key)
	if err != nil {
		return 0, err
	}
	sigma, err := stats.StandardDeviationSample(column)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInsufficientData, err)
	}

	population := opts.PopulationSize
	if population == 0 {
		population = len(records)
	}
	n0 := (z * z * sigma * sigma) / (marginOfError * marginOfError)
	return roundUp(fpc(n0, population)), nil
}

// ForProportion returns the sample size required to estimate a
// proportion within marginOfErrorPercent percentage points at the given
// confidence level, drawn from a population of populationSize.
//
// No prior estimate of the proportion is taken: the worst case p = 0.5
// maximizes the variance term, so the returned size is sufficient for
// any true proportion. Errors with ErrInvalidParameter on a confidence
// level outside {90, 95, 99}, a margin outside (0, 100), or a
// non-positive population.
func ForProportion(populationSize, confidence int, marginOfErrorPercent float64) (int, error) {
	z, err := zScore(confidence)
	if err != nil {
		return 0, err
	}
	if marginOfErrorPercent <= 0 || marginOfErrorPercent >= 100 || math.IsNaN(marginOfErrorPercent) {
		return 0, fmt.Errorf("%w: margin of error must be in (0, 100) percent, got %g", ErrInvalidParameter, marginOfErrorPercent)
	}
	if populationSize <= 0 {
		return 0, fmt.Errorf("%w: population size must be positive, got %d", ErrInvalidParameter, populationSize)
	}

	e := marginOfErrorPercent / 100
	n0 := (z * z * 0.25) / (e * e)
	return roundUp(fpc(n0, populationSize)), nil
}

// fpc applies the finite population correction n0 / (1 + (n0-1)/N).
func fpc(n0 float64, population int) float64 {
	return n0 / (1 + (n0-1)/float64(population))
}

// roundUp turns a fractional sample size into a whole one, never below 1.
func roundUp(n float64) int {
	if n < 1 {
		return 1
	}
	return int(math.Ceil(n))
}

// zScore maps an enumerated confidence level to its fixed z-score.
func zScore(confidence int) (float64, error) {
	switch confidence {
	case 90:
		return z90, nil
	case 95:
		return z95, nil
	case 99:
		return z99, nil
	default:
		return 0, fmt.Errorf("%w: confidence level must be 90, 95 or 99, got %d", ErrInvalidParameter, confidence)
	}
}
