package parser_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/inflammation-cli/internal/models"
	"github.com/KaramelBytes/inflammation-cli/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadTableCSV(t *testing.T) {
	p := writeFile(t, "inflammation-01.csv", "0,0,1,3\n0,1,2,1\n0,1,1,nan\n")
	tbl, err := parser.LoadTable(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 4, tbl.Columns())
	assert.Equal(t, []float64{0, 1, 2, 1}, tbl[1])
	assert.True(t, math.IsNaN(tbl[2][3]))
}

func TestLoadTableTSV(t *testing.T) {
	p := writeFile(t, "data.tsv", "1\t2\n3\t4\n")
	tbl, err := parser.LoadTable(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, models.Table{{1, 2}, {3, 4}}, tbl)
}

func TestLoadTableUnknownExtensionReadsCSV(t *testing.T) {
	p := writeFile(t, "data.dat", "1, 2\n3, 4\n")
	tbl, err := parser.LoadTable(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, models.Table{{1, 2}, {3, 4}}, tbl)
}

func TestLoadTableMalformed(t *testing.T) {
	p := writeFile(t, "bad.csv", "1,2\n3,abc\n")
	_, err := parser.LoadTable(p, parser.Options{})
	require.ErrorIs(t, err, models.ErrType)
	assert.Contains(t, err.Error(), "bad.csv")
}

func TestLoadTableRagged(t *testing.T) {
	p := writeFile(t, "ragged.csv", "1,2,3\n4,5\n")
	_, err := parser.LoadTable(p, parser.Options{})
	require.ErrorIs(t, err, models.ErrValue)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := parser.LoadTable(filepath.Join(t.TempDir(), "nope.csv"), parser.Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCSVFromReaderDelimiter(t *testing.T) {
	tbl, err := parser.LoadCSVFromReader(strings.NewReader("1;2\n3;4\n"), ';')
	require.NoError(t, err)
	assert.Equal(t, models.Table{{1, 2}, {3, 4}}, tbl)
}

func TestLoadTableXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Readings")
	require.NoError(t, err)
	rows := [][]any{{0, 1, 2}, {3, 4.5, 6}}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
		require.NoError(t, f.SetSheetRow("Readings", cell, &[]any{9, 9, 9}))
	}
	p := filepath.Join(t.TempDir(), "readings.xlsx")
	require.NoError(t, f.SaveAs(p))

	tbl, err := parser.LoadTable(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, models.Table{{0, 1, 2}, {3, 4.5, 6}}, tbl)

	tbl, err = parser.LoadTable(p, parser.Options{Sheet: "Readings"})
	require.NoError(t, err)
	assert.Equal(t, models.Table{{9, 9, 9}, {9, 9, 9}}, tbl)
}
