package samplesize_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nshiab/journalism-sub001/dataset"
	"github.com/nshiab/journalism-sub001/samplesize"
)

func weightRecords() []dataset.Record {
	values := []float64{12.0, 15.0, 11.0, 14.0, 13.0, 16.0, 12.5, 14.5, 13.5, 15.5}
	records := make([]dataset.Record, len(values))
	for i, v := range values {
		records[i] = dataset.Record{"weight": v}
	}
	return records
}

func TestForMean_KnownValues(t *testing.T) {
	records := weightRecords()

	// sd of the fixture is 1.60208; n0 = 1.96^2 * sd^2 / 0.5^2 = 39.44,
	// corrected against a population of 1000.
	n, err := samplesize.ForMean(records, "weight", 95, 0.5, samplesize.Options{PopulationSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 38, n)

	// Default population is the record count itself, so the corrected
	// size can never exceed it.
	n, err = samplesize.ForMean(records, "weight", 95, 0.5, samplesize.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestForMean_Monotonicity(t *testing.T) {
	records := weightRecords()
	opts := samplesize.Options{PopulationSize: 1000}

	base, err := samplesize.ForMean(records, "weight", 95, 0.5, opts)
	require.NoError(t, err)

	// Higher confidence demands more samples.
	higher, err := samplesize.ForMean(records, "weight", 99, 0.5, opts)
	require.NoError(t, err)
	assert.Greater(t, higher, base)
	assert.Equal(t, 64, higher)

	// A tighter margin demands more samples.
	tighter, err := samplesize.ForMean(records, "weight", 95, 0.25, opts)
	require.NoError(t, err)
	assert.Greater(t, tighter, base)
	assert.Equal(t, 137, tighter)
}

func TestForMean_ConstantColumn(t *testing.T) {
	records := []dataset.Record{{"v": 3.0}, {"v": 3.0}, {"v": 3.0}}
	n, err := samplesize.ForMean(records, "v", 95, 0.5, samplesize.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestForMean_InputErrors(t *testing.T) {
	records := weightRecords()

	_, err := samplesize.ForMean(records, "weight", 85, 0.5, samplesize.DefaultOptions())
	assert.ErrorIs(t, err, samplesize.ErrInvalidParameter)

	_, err = samplesize.ForMean(records, "weight", 95, 0, samplesize.DefaultOptions())
	assert.ErrorIs(t, err, samplesize.ErrInvalidParameter)

	_, err = samplesize.ForMean(records, "weight", 95, 0.5, samplesize.Options{PopulationSize: -5})
	assert.ErrorIs(t, err, samplesize.ErrInvalidParameter)

	_, err = samplesize.ForMean(records[:1], "weight", 95, 0.5, samplesize.DefaultOptions())
	assert.ErrorIs(t, err, samplesize.ErrInsufficientData)

	_, err = samplesize.ForMean(records, "height", 95, 0.5, samplesize.DefaultOptions())
	assert.ErrorIs(t, err, dataset.ErrMissingField)

	records[3]["weight"] = "heavy"
	_, err = samplesize.ForMean(records, "weight", 95, 0.5, samplesize.DefaultOptions())
	assert.ErrorIs(t, err, dataset.ErrNonNumeric)
}

func TestForProportion_KnownValues(t *testing.T) {
	// The classic survey result: 5% margin, 95% confidence, large
	// population => 384 uncorrected, 370 after correction against 10000.
	n, err := samplesize.ForProportion(10000, 95, 5)
	require.NoError(t, err)
	assert.Equal(t, 370, n)

	n, err = samplesize.ForProportion(1000000, 99, 1)
	require.NoError(t, err)
	assert.Equal(t, 16319, n)

	// A small population caps the requirement hard.
	n, err = samplesize.ForProportion(500, 90, 5)
	require.NoError(t, err)
	assert.Equal(t, 176, n)
}

func TestForProportion_InputErrors(t *testing.T) {
	_, err := samplesize.ForProportion(10000, 80, 5)
	assert.ErrorIs(t, err, samplesize.ErrInvalidParameter)

	_, err = samplesize.ForProportion(10000, 95, 0)
	assert.ErrorIs(t, err, samplesize.ErrInvalidParameter)

	_, err = samplesize.ForProportion(10000, 95, 100)
	assert.ErrorIs(t, err, samplesize.ErrInvalidParameter)

	_, err = samplesize.ForProportion(0, 95, 5)
	assert.ErrorIs(t, err, samplesize.ErrInvalidParameter)
}

// ExampleForProportion sizes a survey of a 10000-person population to a
// 5-point margin at 95% confidence.
func ExampleForProportion() {
	n, err := samplesize.ForProportion(10000, 95, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)
	// Output: 370
}
