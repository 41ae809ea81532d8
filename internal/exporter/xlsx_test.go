package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXWriter_WriteTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.xlsx")
	table := sampleTable()

	require.NoError(t, NewXLSXWriter(nil).WriteTable(path, table))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DefaultSheetName}, f.GetSheetList())

	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, Headers(Columns(table)), rows[0])

	person, err := f.GetCellValue(DefaultSheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "P", person)

	amount, err := f.GetCellValue(DefaultSheetName, "D3")
	require.NoError(t, err)
	assert.Equal(t, "12.5", amount)

	missing, err := f.GetCellValue(DefaultSheetName, "D2")
	require.NoError(t, err)
	assert.Empty(t, missing)
}
