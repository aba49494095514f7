package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords(t *testing.T) {
	tbl, err := ParseRecords([][]string{{"0", "1.5", " 2"}, {"nan", "3", "4e1"}})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, 3, tbl.Columns())
	assert.True(t, math.IsNaN(tbl[1][0]))
	assert.Equal(t, 40.0, tbl[1][2])
}

func TestParseRecordsReportsCell(t *testing.T) {
	_, err := ParseRecords([][]string{{"1", "2"}, {"3", "x"}})
	require.ErrorIs(t, err, ErrType)
	assert.Contains(t, err.Error(), "row 2, column 2")
}

func TestAsTableInts(t *testing.T) {
	tbl, err := AsTable([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, Table{{1, 2}, {3, 4}}, tbl)
}

func TestAsTableDecodedJSON(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`[[1, 2], [3, 4.5]]`))
	dec.UseNumber()
	var v []any
	require.NoError(t, dec.Decode(&v))
	tbl, err := AsTable(v)
	require.NoError(t, err)
	assert.Equal(t, Table{{1, 2}, {3, 4.5}}, tbl)

	_, err = AsTable([]any{[]any{1.0, "two"}})
	require.ErrorIs(t, err, ErrType)
	_, err = AsTable([]any{1.0, 2.0})
	require.ErrorIs(t, err, ErrValue)
}

func TestAsTableNumericKinds(t *testing.T) {
	want := Table{{1, 2}, {3, 4}}
	inputs := map[string]any{
		"any rows": [][]any{{1.0, 2.0}, {3, int64(4)}},
		"float32":  [][]float32{{1, 2}, {3, 4}},
		"int64":    [][]int64{{1, 2}, {3, 4}},
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			tbl, err := AsTable(in)
			require.NoError(t, err)
			assert.Equal(t, want, tbl)
		})
	}
}

func TestAsTableAnyRowsErrors(t *testing.T) {
	_, err := AsTable([][]any{{1.0, "two"}})
	require.ErrorIs(t, err, ErrType)
	_, err = AsTable([][]any{{[]any{1.0}}})
	require.ErrorIs(t, err, ErrValue)
	_, err = AsTable([][]any{{1.0, 2.0}, {3.0}})
	require.ErrorIs(t, err, ErrValue)
	_, err = AsTable([]int64{1, 2})
	require.ErrorIs(t, err, ErrValue)
}

func TestTableClone(t *testing.T) {
	orig := Table{{1, 2}}
	c := orig.Clone()
	c[0][0] = 9
	assert.Equal(t, 1.0, orig[0][0])
}
