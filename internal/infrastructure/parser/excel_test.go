package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCatalog(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseCatalogXLSX(t *testing.T) {
	path := writeCatalog(t, [][]interface{}{
		{"Name", "Category", "Price", "Image_URL"},
		{"Idly Batter", "batter", 60, "https://cdn.example/idly.jpg"},
		{"Coconut Chutney", "Condiments", 40.5, ""},
	})

	products, err := ParseCatalogXLSX(path)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Idly Batter", products[0].Name)
	assert.Equal(t, "batter", products[0].Category)
	assert.Equal(t, 60.0, products[0].Price)
	assert.Equal(t, "https://cdn.example/idly.jpg", products[0].ImageURL)
	assert.Equal(t, 40.5, products[1].Price)
}

func TestParseCatalogXLSXSkipsBadRows(t *testing.T) {
	path := writeCatalog(t, [][]interface{}{
		{"Name", "Price"},
		{"Idly Batter", 60},
		{"", 10},
		{"Sambar Powder", "cheap"},
	})

	products, err := ParseCatalogXLSX(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skipped 2 rows")
	require.Len(t, products, 1)
	assert.Equal(t, "Idly Batter", products[0].Name)
}

func TestParseCatalogXLSXMissingColumns(t *testing.T) {
	path := writeCatalog(t, [][]interface{}{
		{"Name", "Category"},
		{"Idly Batter", "batter"},
	})

	_, err := ParseCatalogXLSX(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Price column")
}
