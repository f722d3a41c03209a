// Package journalism is the statistical analysis core behind a set of
// journalist-facing data utilities: matrix inversion and covariance,
// Mahalanobis distance, density-based clustering, classical hypothesis
// tests and sample-size formulas.
//
// 🚀 What is inside?
//
//	A small, pure-Go numerical library that brings together:
//		• dataset:     open numeric records with validated field access
//		• matrix:      Gauss–Jordan inversion & population covariance
//		• mahalanobis: correlation-aware distance + dataset annotation
//		• dbscan:      core/border/noise clustering with pluggable metrics
//		• htest:       paired t, Welch t and chi-squared independence tests
//		• samplesize:  closed-form sample-size calculators for means & proportions
//
// ✨ Design principles
//
//   - Batch & in-memory – the whole dataset is available before computation starts
//   - Deterministic – fixed traversal orders, no hidden state, no randomness
//   - Fail fast – sentinel errors matched via errors.Is, never panics
//   - Non-destructive – record enrichment keeps unrelated fields untouched
//
// Every engine is a set of free functions over caller-owned data: build a
// slice of dataset.Record values, feed it to the engine you need, and read
// the enriched records or the returned result struct. Nothing here performs
// I/O, blocks, or retries; every error is deterministic for a given input.
//
//	go get github.com/nshiab/journalism-sub001
package journalism
