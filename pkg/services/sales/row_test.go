package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
)

func TestParseRow(t *testing.T) {
	valid := []string{"Bolsa Grande", `"1,200"`, "C$1,250.00", "3/7/2024", "C$50.00"}

	t.Run("success - full row", func(t *testing.T) {
		tx, skip := ParseRow(valid, 1, domain.ModeRevenue)
		require.Nil(t, skip)

		assert.Equal(t, "Bolsa Grande", tx.Product)
		assert.Equal(t, "1200", tx.QuantityRaw)
		assert.True(t, tx.QuantityOK)
		assert.Equal(t, 1200.0, tx.Quantity)
		assert.Equal(t, 1250.0, tx.Price)
		assert.Equal(t, "2024-03", tx.MonthKey())
		assert.Equal(t, "2024-03-07", tx.DayKey())
		assert.Equal(t, "C$50.00", tx.ProfitRaw)
	})

	t.Run("insufficient fields per mode", func(t *testing.T) {
		fourFields := valid[:4]

		_, skip := ParseRow(fourFields, 3, domain.ModeRevenue)
		require.NotNil(t, skip)
		assert.Equal(t, 3, skip.Row)
		assert.Equal(t, "insufficient fields", skip.Reason)

		tx, skip := ParseRow(fourFields, 3, domain.ModeQuantity)
		require.Nil(t, skip)
		assert.Equal(t, "0", tx.ProfitRaw)
	})

	t.Run("missing product name", func(t *testing.T) {
		row := append([]string{"   "}, valid[1:]...)
		_, skip := ParseRow(row, 2, domain.ModeRevenue)
		require.NotNil(t, skip)
		assert.Equal(t, "missing product name", skip.Reason)
	})

	t.Run("missing or malformed date", func(t *testing.T) {
		for reason, date := range map[string]string{
			"empty":       "  ",
			"two parts":   "3/2024",
			"non-numeric": "mar/7/2024",
		} {
			row := []string{"Bolsa", "1", "10", date, "5"}
			_, skip := ParseRow(row, 1, domain.ModeRevenue)
			require.NotNil(t, skip, reason)
		}
	})

	t.Run("month key is zero-padded, month first", func(t *testing.T) {
		tx, skip := ParseRow([]string{"Bolsa", "1", "10", "3/7/2024", "5"}, 1, domain.ModeRevenue)
		require.Nil(t, skip)
		assert.Equal(t, "2024-03", tx.MonthKey())
	})

	t.Run("unparseable price coerces to zero", func(t *testing.T) {
		for _, price := range []string{"", "gratis", "C$"} {
			tx, skip := ParseRow([]string{"Bolsa", "1", price, "3/7/2024", "5"}, 1, domain.ModeRevenue)
			require.Nil(t, skip)
			assert.Equal(t, 0.0, tx.Price)
		}
	})

	t.Run("non-numeric quantity is flagged, not skipped", func(t *testing.T) {
		tx, skip := ParseRow([]string{"Bolsa", "dos", "10", "3/7/2024", "5"}, 1, domain.ModeRevenue)
		require.Nil(t, skip)
		assert.False(t, tx.QuantityOK)
	})

	t.Run("blank profit defaults to zero string", func(t *testing.T) {
		tx, skip := ParseRow([]string{"Bolsa", "1", "10", "3/7/2024", "  "}, 1, domain.ModeRevenue)
		require.Nil(t, skip)
		assert.Equal(t, "0", tx.ProfitRaw)
	})

	t.Run("no calendar-range validation", func(t *testing.T) {
		tx, skip := ParseRow([]string{"Bolsa", "1", "10", "13/40/2024", "5"}, 1, domain.ModeRevenue)
		require.Nil(t, skip)
		assert.Equal(t, "2024-13", tx.MonthKey())
	})
}

func TestCleanNumber(t *testing.T) {
	assert.Equal(t, "1250.00", CleanNumber("C$1,250.00"))
	assert.Equal(t, "", CleanNumber("gratis"))
	assert.Equal(t, "0", CleanNumber("C$0"))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 1250.0, ParseAmount("C$1,250.00"))
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("N/A"))
	// Multiple dots survive cleaning but fail the float parse.
	assert.Equal(t, 0.0, ParseAmount("1.2.3"))
}
