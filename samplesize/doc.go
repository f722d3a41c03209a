// Package samplesize computes required survey sample sizes in closed
// form: ForMean sizes a sample for estimating a population mean to a
// given margin of error, ForProportion does the same for a proportion
// using the conservative worst case p = 0.5.
//
// Confidence levels are the enumerated set {90, 95, 99} mapping to
// fixed z-scores (1.645, 1.96, 2.576); there is no continuous lookup.
// Both calculators apply the finite population correction
// n = n0 / (1 + (n0-1)/N) and round the result up to a whole number.
//
// Errors: ErrInvalidParameter for a confidence level outside the set or
// a non-positive margin or population; ForMean also surfaces the
// dataset sentinels for missing or non-numeric fields.
package samplesize
