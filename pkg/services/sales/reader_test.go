package sales

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadFile(t *testing.T) {
	reader := NewReader(zerolog.Nop())

	t.Run("success - headerless rows in file order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ventas.csv")
		content := "Bolsa Grande,12,\"C$1,200.00\",3/7/2024,C$100.00\nBolsa Chica,5,C$50.00,3/8/2024,\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		rows, err := reader.ReadFile(path)
		require.NoError(t, err)

		require.Len(t, rows, 2)
		assert.Equal(t, "Bolsa Grande", rows[0][0])
		assert.Equal(t, "C$1,200.00", rows[0][2])
		assert.Equal(t, "Bolsa Chica", rows[1][0])
	})

	t.Run("variable field counts are preserved", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ventas.csv")
		require.NoError(t, os.WriteFile(path, []byte("Bolsa,1,10,3/7/2024\nBolsa,1,10,3/7/2024,5,extra\n"), 0o644))

		rows, err := reader.ReadFile(path)
		require.NoError(t, err)

		require.Len(t, rows, 2)
		assert.Len(t, rows[0], 4)
		assert.Len(t, rows[1], 6)
	})

	t.Run("BOM stripped from first field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ventas.csv")
		require.NoError(t, os.WriteFile(path, []byte("\ufeffBolsa,1,10,3/7/2024,5\n"), 0o644))

		rows, err := reader.ReadFile(path)
		require.NoError(t, err)

		require.Len(t, rows, 1)
		assert.Equal(t, "Bolsa", rows[0][0])
	})

	t.Run("error - missing file", func(t *testing.T) {
		_, err := reader.ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
		require.Error(t, err)
	})
}
