// Package dataset: open records and validated numeric access.
package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for field extraction.
var (
	// ErrMissingField is returned when a referenced key is absent from a record.
	ErrMissingField = errors.New("dataset: missing field")

	// ErrNonNumeric is returned when a referenced field is not a finite number
	// (wrong type, NaN or ±Inf).
	ErrNonNumeric = errors.New("dataset: non-numeric field")

	// ErrNoRecords is returned when an operation requires at least one record.
	ErrNoRecords = errors.New("dataset: no records")
)

// Record is an open mapping from field name to value. Engines only interpret
// the fields they are explicitly given; all other fields ride along untouched,
// which makes enrichment (distances, similarities, cluster labels) safe to
// merge back into caller-owned data.
type Record map[string]any

// Number extracts the field under key as a finite float64.
//
// Accepted dynamic types are float64, float32 and the signed/unsigned integer
// kinds; everything else fails with ErrNonNumeric. NaN and ±Inf likewise fail
// with ErrNonNumeric, and an absent key fails with ErrMissingField. The error
// always names the key so callers can wrap it with a record index.
func (r Record) Number(key string) (float64, error) {
	raw, ok := r[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, key)
	}

	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int8:
		v = float64(n)
	case int16:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint:
		v = float64(n)
	case uint8:
		v = float64(n)
	case uint16:
		v = float64(n)
	case uint32:
		v = float64(n)
	case uint64:
		v = float64(n)
	default:
		return 0, fmt.Errorf("%w: %q holds %T", ErrNonNumeric, key, raw)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrNonNumeric, key)
	}

	return v, nil
}

// Clone returns a shallow copy of the record: field values are shared, but
// adding or overwriting fields on the copy leaves the original untouched.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// Column extracts one numeric column across records, preserving record order.
// A failing record is reported with its index and key, e.g.
// "dataset: non-numeric field: "age" holds string (record 3)".
//
// Complexity: O(n) time, O(n) space.
func Column(records []Record, key string) ([]float64, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	out := make([]float64, len(records))
	for i, rec := range records {
		v, err := rec.Number(key)
		if err != nil {
			return nil, fmt.Errorf("%w (record %d)", err, i)
		}
		out[i] = v
	}

	return out, nil
}

// Vectors extracts one numeric vector per record, with components laid out in
// the exact order of keys. The key order is significant: downstream quadratic
// forms index their matrices by this layout.
//
// Complexity: O(n·k) time, O(n·k) space.
func Vectors(records []Record, keys []string) ([][]float64, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	out := make([][]float64, len(records))
	for i, rec := range records {
		vec := make([]float64, len(keys))
		for j, key := range keys {
			v, err := rec.Number(key)
			if err != nil {
				return nil, fmt.Errorf("%w (record %d)", err, i)
			}
			vec[j] = v
		}
		out[i] = vec
	}

	return out, nil
}
