package matrix_test

import (
	"testing"

	"github.com/nshiab/journalism-sub001/matrix"
)

// benchmarkInvert inverts a diagonally dominant n×n matrix (always
// invertible) once per iteration.
func benchmarkInvert(b *testing.B, n int) {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1.0 / float64(i+j+1)
		}
		rows[i][i] += float64(n) // dominance keeps pivots well away from zero
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Invert(m); err != nil {
			b.Fatalf("Invert failed: %v", err)
		}
	}
}

// BenchmarkInvert_Small benchmarks inversion of a 10×10 matrix.
func BenchmarkInvert_Small(b *testing.B) { benchmarkInvert(b, 10) }

// BenchmarkInvert_Medium benchmarks inversion of a 100×100 matrix.
func BenchmarkInvert_Medium(b *testing.B) { benchmarkInvert(b, 100) }

// BenchmarkCovariance_Wide benchmarks covariance of 1000 observations over
// 32 variables.
func BenchmarkCovariance_Wide(b *testing.B) {
	const n, m = 1000, 32
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, m)
		for j := range rows[i] {
			rows[i][j] = float64((i*31 + j*17) % 97)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Covariance(rows); err != nil {
			b.Fatalf("Covariance failed: %v", err)
		}
	}
}
