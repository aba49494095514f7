package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Table holds inflammation readings: one row per patient, one column per day.
type Table [][]float64

// Rows returns the number of patients in the table.
func (t Table) Rows() int { return len(t) }

// Columns returns the number of days, taken from the first row.
func (t Table) Columns() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Validate reports a DimensionError when rows differ in length.
func (t Table) Validate() error {
	cols := t.Columns()
	for i, row := range t {
		if len(row) != cols {
			return &DimensionError{Dims: 2, Row: i}
		}
	}
	return nil
}

// AsTable coerces v into a rectangular Table.
//
// Accepted inputs are Table, [][]float64, [][]float32, [][]int, [][]int64,
// [][]string (parsed as numbers), and [][]any or []any as produced by
// encoding/json. Non-numeric input
// returns ErrType; numeric input of the wrong dimensionality or a ragged
// table returns a *DimensionError, which matches ErrValue.
func AsTable(v any) (Table, error) {
	var t Table
	switch x := v.(type) {
	case Table:
		t = x
	case [][]float64:
		t = Table(x)
	case [][]float32:
		t = convertRows(x)
	case [][]int:
		t = convertRows(x)
	case [][]int64:
		t = convertRows(x)
	case [][]string:
		return ParseRecords(x)
	case []float64, []float32, []int, []int64:
		return nil, &DimensionError{Dims: 1, Row: -1}
	case [][][]float64, [][][]int:
		return nil, &DimensionError{Dims: 3, Row: -1}
	case [][]any:
		rows := make([]any, len(x))
		for i, row := range x {
			rows[i] = row
		}
		var err error
		if t, err = fromAny(rows); err != nil {
			return nil, err
		}
	case []any:
		var err error
		if t, err = fromAny(x); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: data input should be a table, got %T", ErrType, v)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func convertRows[T float32 | int | int64](rows [][]T) Table {
	t := make(Table, len(rows))
	for i, row := range rows {
		t[i] = make([]float64, len(row))
		for j, c := range row {
			t[i][j] = float64(c)
		}
	}
	return t
}

func fromAny(rows []any) (Table, error) {
	t := make(Table, len(rows))
	for i, r := range rows {
		cells, ok := r.([]any)
		if !ok {
			if _, num := toFloat(r); num {
				return nil, &DimensionError{Dims: 1, Row: -1}
			}
			return nil, fmt.Errorf("%w: row %d is %T, not a sequence of numbers", ErrType, i, r)
		}
		t[i] = make([]float64, len(cells))
		for j, c := range cells {
			if _, nested := c.([]any); nested {
				return nil, &DimensionError{Dims: 3, Row: -1}
			}
			f, ok := toFloat(c)
			if !ok {
				return nil, fmt.Errorf("%w: element [%d][%d] is %T, not a number", ErrType, i, j, c)
			}
			t[i][j] = f
		}
	}
	return t, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ParseRecords converts text cells, such as CSV records, into a Table.
// "nan" (any case) is accepted as a missing reading.
func ParseRecords(records [][]string) (Table, error) {
	t := make(Table, len(records))
	for i, rec := range records {
		t[i] = make([]float64, len(rec))
		for j, cell := range rec {
			f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: cannot parse %q as a number", ErrType, i+1, j+1, cell)
			}
			t[i][j] = f
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
