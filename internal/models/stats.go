// Package models holds the inflammation business logic: per-day statistics
// over a patients-by-days table, per-patient normalisation, and the
// patient/doctor model.
package models

import (
	"fmt"
	"math"
)

// DailyMean returns the mean of each day (column) across all patients.
func DailyMean(t Table) ([]float64, error) {
	return reduceColumns(t, func(col []float64) float64 {
		sum := 0.0
		for _, v := range col {
			sum += v
		}
		return sum / float64(len(col))
	})
}

// DailyMax returns the maximum of each day across all patients.
func DailyMax(t Table) ([]float64, error) {
	return reduceColumns(t, func(col []float64) float64 {
		m := col[0]
		for _, v := range col[1:] {
			m = math.Max(m, v)
		}
		return m
	})
}

// DailyMin returns the minimum of each day across all patients.
func DailyMin(t Table) ([]float64, error) {
	return reduceColumns(t, func(col []float64) float64 {
		m := col[0]
		for _, v := range col[1:] {
			m = math.Min(m, v)
		}
		return m
	})
}

// DailyMeanOf coerces v with AsTable and returns its daily mean.
func DailyMeanOf(v any) ([]float64, error) { return ofAny(v, DailyMean) }

// DailyMaxOf coerces v with AsTable and returns its daily max.
func DailyMaxOf(v any) ([]float64, error) { return ofAny(v, DailyMax) }

// DailyMinOf coerces v with AsTable and returns its daily min.
func DailyMinOf(v any) ([]float64, error) { return ofAny(v, DailyMin) }

func ofAny(v any, fn func(Table) ([]float64, error)) ([]float64, error) {
	t, err := AsTable(v)
	if err != nil {
		return nil, err
	}
	return fn(t)
}

// reduceColumns applies fn to every column. NaN propagates through fn;
// a table with no rows yields an empty result.
func reduceColumns(t Table, fn func(col []float64) float64) ([]float64, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cols := t.Columns()
	out := make([]float64, cols)
	col := make([]float64, len(t))
	for j := 0; j < cols; j++ {
		for i, row := range t {
			col[i] = row[j]
		}
		out[j] = fn(col)
	}
	return out, nil
}

// PatientNormalise scales every row of v by that row's maximum.
//
// The row maximum ignores NaN readings. NaN results (an all-NaN or all-zero
// row) become 0 and negative results are clamped to 0. Input that is not a
// table fails with ErrType, input that is not two-dimensional with a
// *DimensionError, and negative readings with ErrValue. The input is not
// modified.
func PatientNormalise(v any) (Table, error) {
	t, err := AsTable(v)
	if err != nil {
		return nil, err
	}
	for i, row := range t {
		for j, x := range row {
			if x < 0 {
				return nil, fmt.Errorf("%w: inflammation values should be non-negative (row %d, day %d is %g)", ErrValue, i, j, x)
			}
		}
	}
	out := t.Clone()
	for _, row := range out {
		m := nanMax(row)
		for j, x := range row {
			x /= m
			if math.IsNaN(x) || x < 0 {
				x = 0
			}
			row[j] = x
		}
	}
	return out, nil
}

// nanMax returns the largest non-NaN value, or NaN when there is none.
func nanMax(row []float64) float64 {
	m := math.NaN()
	for _, v := range row {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(m) || v > m {
			m = v
		}
	}
	return m
}

// NamedDataset pairs a patient name with that patient's row of readings.
type NamedDataset struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

// AttachNames zips names with table rows by position.
func AttachNames(rows Table, names []string) ([]NamedDataset, error) {
	if len(rows) != len(names) {
		return nil, fmt.Errorf("%w: different numbers of names and datasets (%d names, %d rows)", ErrValue, len(names), len(rows))
	}
	out := make([]NamedDataset, len(rows))
	for i, row := range rows {
		out[i] = NamedDataset{Name: names[i], Data: row}
	}
	return out, nil
}
