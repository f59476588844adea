package reporters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocale(t *testing.T) {
	assert.Equal(t, "Enero", Locale("es").Months[0])
	assert.Equal(t, "January", Locale("en").Months[0])
	// Unknown locales fall back to the export's native Spanish.
	assert.Equal(t, "Enero", Locale("fr").Months[0])
}

func TestStrings_MonthName(t *testing.T) {
	es := Locale("es")

	assert.Equal(t, "2024 - Marzo", es.MonthName("2024-03"))
	assert.Equal(t, "2024 - Diciembre", es.MonthName("2024-12"))
	// Out-of-range months render verbatim, the parser does not
	// range-check dates either.
	assert.Equal(t, "2024-13", es.MonthName("2024-13"))
	assert.Equal(t, "garbage", es.MonthName("garbage"))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "C$0.00", FormatMoney(0))
	assert.Equal(t, "C$12.50", FormatMoney(12.5))
	assert.Equal(t, "C$1,234.56", FormatMoney(1234.56))
	assert.Equal(t, "C$1,234,567.80", FormatMoney(1234567.8))
	assert.Equal(t, "-C$1,000.00", FormatMoney(-1000))
}
