package htest

import (
	"fmt"
	"sort"

	"github.com/nshiab/journalism-sub001/dataset"
)

// ChiSquaredIndependenceTest tests whether two categorical fields are
// independent.
//
// A contingency table is built by summing the countKey value of each
// record into the cell addressed by its (rowKey, colKey) category pair.
// Expected frequencies come from the marginals
// (rowTotal * colTotal / grandTotal); the statistic is
// sum((observed-expected)^2 / expected) over cells with nonzero
// expected frequency, with (rows-1)*(cols-1) degrees of freedom and a
// Wilson-Hilferty p-value.
//
// Category order in the result is the sorted order of the observed
// category names, so identical inputs always produce an identical
// table.
//
// Errors (ErrInvalidData): a missing or non-numeric count, a negative
// count, a grand total of zero, or fewer than two categories on either
// axis. Low-frequency assumption violations are reported as Warnings
// on the result, never as errors.
//
// Complexity: O(n + r*c) time, O(r*c) memory for r row and c column
// categories.
func ChiSquaredIndependenceTest(records []dataset.Record, rowKey, colKey, countKey string) (*ChiSquaredResult, error) {
	if len(records) == 0 {
		return nil, dataset.ErrNoRecords
	}

	cells := make(map[[2]string]float64)
	rowSeen := make(map[string]bool)
	colSeen := make(map[string]bool)
	for i, rec := range records {
		row, err := categoryName(rec, rowKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w (record %d)", ErrInvalidData, err, i)
		}
		col, err := categoryName(rec, colKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w (record %d)", ErrInvalidData, err, i)
		}
		count, err := rec.Number(countKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w (record %d)", ErrInvalidData, err, i)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: negative count %g (record %d)", ErrInvalidData, count, i)
		}
		cells[[2]string{row, col}] += count
		rowSeen[row] = true
		colSeen[col] = true
	}

	rows := sortedKeys(rowSeen)
	cols := sortedKeys(colSeen)
	if len(rows) < 2 || len(cols) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 categories per axis, got %d rows and %d columns", ErrInvalidData, len(rows), len(cols))
	}

	observed := make([][]float64, len(rows))
	rowTotals := make([]float64, len(rows))
	colTotals := make([]float64, len(cols))
	grand := 0.0
	for i, r := range rows {
		observed[i] = make([]float64, len(cols))
		for j, c := range cols {
			v := cells[[2]string{r, c}]
			observed[i][j] = v
			rowTotals[i] += v
			colTotals[j] += v
			grand += v
		}
	}
	if grand == 0 {
		return nil, fmt.Errorf("%w: contingency table sums to zero", ErrInvalidData)
	}

	expected := make([][]float64, len(rows))
	statistic := 0.0
	for i := range rows {
		expected[i] = make([]float64, len(cols))
		for j := range cols {
			e := rowTotals[i] * colTotals[j] / grand
			expected[i][j] = e
			if e > 0 {
				d := observed[i][j] - e
				statistic += d * d / e
			}
		}
	}

	res := &ChiSquaredResult{
		RowCategories: rows,
		ColCategories: cols,
		Observed:      observed,
		Expected:      expected,
		Statistic:     statistic,
		DF:            float64((len(rows) - 1) * (len(cols) - 1)),
		Warnings:      tableWarnings(observed, expected),
	}
	res.PValue = chiSquaredSF(statistic, res.DF)
	return res, nil
}

// tableWarnings checks the classic chi-squared applicability thresholds
// and describes each violation in one line.
func tableWarnings(observed, expected [][]float64) []string {
	var (
		warnings    []string
		belowOne    int
		belowFive   int
		belowHalf   int
		totalCells  = len(expected) * len(expected[0])
		twoByTwo    = len(expected) == 2 && len(expected[0]) == 2
		twoByTwoLow int
	)
	for i := range expected {
		for j := range expected[i] {
			if expected[i][j] < 1 {
				belowOne++
			}
			if expected[i][j] < 5 {
				belowFive++
				if twoByTwo {
					twoByTwoLow++
				}
			}
			if observed[i][j] < 0.5 {
				belowHalf++
			}
		}
	}
	if belowOne > 0 {
		warnings = append(warnings, fmt.Sprintf("%d cell(s) have expected frequency below 1", belowOne))
	}
	if ok := totalCells - belowFive; ok*5 < totalCells*4 {
		warnings = append(warnings, fmt.Sprintf("fewer than 80%% of cells have expected frequency of at least 5 (%d of %d)", ok, totalCells))
	}
	if twoByTwoLow > 0 {
		warnings = append(warnings, fmt.Sprintf("2x2 table with %d cell(s) of expected frequency below 5", twoByTwoLow))
	}
	if belowHalf > 0 {
		warnings = append(warnings, fmt.Sprintf("%d cell(s) have observed count below 0.5", belowHalf))
	}
	return warnings
}

// categoryName extracts a categorical field as a string. Strings pass
// through; any other present value is rendered with fmt.Sprint so
// numeric or boolean categories still address table cells consistently.
func categoryName(rec dataset.Record, key string) (string, error) {
	v, ok := rec[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", dataset.ErrMissingField, key)
	}
	if s, isString := v.(string); isString {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
