package mahalanobis_test

import (
	"fmt"

	"github.com/nshiab/journalism-sub001/dataset"
	"github.com/nshiab/journalism-sub001/mahalanobis"
	"github.com/nshiab/journalism-sub001/matrix"
)

// ExampleDistance uses the identity inverse covariance, under which the
// Mahalanobis distance reduces to plain Euclidean distance.
func ExampleDistance() {
	identity, err := matrix.FromRows([][]float64{
		{1, 0},
		{0, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := mahalanobis.Distance([]float64{0, 0}, []float64{3, 4}, identity)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output: 5
}

// ExampleAnnotate writes a distance onto every record, reusing a
// caller-supplied inverse covariance matrix.
func ExampleAnnotate() {
	records := []dataset.Record{
		{"x": 0.0, "y": 0.0},
		{"x": 3.0, "y": 4.0},
		{"x": 6.0, "y": 8.0},
	}
	identity, err := matrix.FromRows([][]float64{
		{1, 0},
		{0, 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	origin := []mahalanobis.Variable{{Key: "x", Value: 0}, {Key: "y", Value: 0}}
	opts := mahalanobis.DefaultOptions()
	opts.InverseCovariance = identity
	if err := mahalanobis.Annotate(origin, records, opts); err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, rec := range records {
		fmt.Println(rec[mahalanobis.DistanceField])
	}
	// Output:
	// 0
	// 5
	// 10
}
