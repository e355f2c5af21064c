package tabular

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

func writeTestXLSX(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for name, rows := range sheets {
		sheet, err := f.AddSheet(name)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				row.AddCell().SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "players.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX_Basic(t *testing.T) {
	path := writeTestXLSX(t, map[string][][]string{
		"Sheet1": {
			{"Name", "Points"},
			{"Ava", "22"},
			{"Noah", "18"},
		},
	})

	tbl, err := ReadXLSX(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Points"}, tbl.Header)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"Ava", "22"}, tbl.Rows[0])
}

func TestReadXLSX_SheetName(t *testing.T) {
	path := writeTestXLSX(t, map[string][][]string{
		"Roster": {{"Name", "Points"}},
		"Game1":  {{"Name", "Points"}, {"Ava", "31"}},
	})

	tbl, err := ReadXLSX(path, Options{SheetName: "Game1"})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"Ava", "31"}, tbl.Rows[0])
}

func TestReadXLSX_SheetNotFound(t *testing.T) {
	path := writeTestXLSX(t, map[string][][]string{
		"Sheet1": {{"Name", "Points"}},
	})

	_, err := ReadXLSX(path, Options{SheetName: "Playoffs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadXLSX_SheetIndexOutOfRange(t *testing.T) {
	path := writeTestXLSX(t, map[string][][]string{
		"Sheet1": {{"Name", "Points"}},
	})

	_, err := ReadXLSX(path, Options{SheetIndex: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReadXLSX_EmptySheet(t *testing.T) {
	path := writeTestXLSX(t, map[string][][]string{
		"Sheet1": {},
	})

	_, err := ReadXLSX(path, Options{})
	require.Error(t, err)
	assert.True(t, IsEmptySource(err))
}

func TestRead_DispatchXLSX(t *testing.T) {
	path := writeTestXLSX(t, map[string][][]string{
		"Sheet1": {{"Name", "Points"}, {"Ava", "22"}},
	})

	tbl, err := Read(path, Options{})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
}
