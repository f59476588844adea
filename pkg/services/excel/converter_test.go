package excel

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "ventas.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestConverter_Convert(t *testing.T) {
	converter := NewConverter(zerolog.Nop())

	t.Run("success - sheet rows land in the CSV", func(t *testing.T) {
		xlsx := writeWorkbook(t, "Ventas", [][]any{
			{"Bolsa Grande", "12", "C$1,200.00", "3/7/2024", "C$100.00"},
			{"Bolsa Chica", "5", "C$50.00", "3/8/2024", ""},
		})
		out := filepath.Join(t.TempDir(), "ventas.csv")

		require.NoError(t, converter.Convert(xlsx, "Ventas", out))

		f, err := os.Open(out)
		require.NoError(t, err)
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		records, err := r.ReadAll()
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "Bolsa Grande", records[0][0])
		assert.Equal(t, "C$1,200.00", records[0][2])
	})

	t.Run("error - unknown sheet", func(t *testing.T) {
		xlsx := writeWorkbook(t, "Ventas", [][]any{{"a"}})
		out := filepath.Join(t.TempDir(), "out.csv")

		err := converter.Convert(xlsx, "NoSuchSheet", out)
		require.Error(t, err)
	})

	t.Run("error - missing workbook", func(t *testing.T) {
		err := converter.Convert(filepath.Join(t.TempDir(), "nope.xlsx"), "Ventas", "out.csv")
		require.Error(t, err)
	})
}
