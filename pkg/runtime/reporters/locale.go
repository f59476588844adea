package reporters

import (
	"strconv"
	"strings"
)

// Strings holds the user-facing text for one report locale.
type Strings struct {
	Months        [12]string
	MonthlyTitle  string
	PriceSum      string
	ProfitSum     string
	GrandTitle    string
	TotalPrices   string
	TotalProfits  string
	ProductsTitle string
	AllTimeTitle  string
	WeeklyTitle   string
	QuantityCol   string
	PriceCol      string
	ProfitCol     string
	NoData        string
}

var locales = map[string]Strings{
	"es": {
		Months: [12]string{
			"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
			"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
		},
		MonthlyTitle:  "Resumen Mensual Actualizado (Precio Total y Ganancia Total)",
		PriceSum:      "Suma de Precios",
		ProfitSum:     "Suma de Ganancias",
		GrandTitle:    "Resumen Total de Todos los Meses",
		TotalPrices:   "Suma Total de Precios",
		TotalProfits:  "Suma Total de Ganancias",
		ProductsTitle: "Productos Vendidos por Mes",
		AllTimeTitle:  "Total de Productos Vendidos",
		WeeklyTitle:   "Ventas de la Semana",
		QuantityCol:   "Cantidad",
		PriceCol:      "Precio",
		ProfitCol:     "Ganancia",
		NoData:        "No hay datos disponibles.",
	},
	"en": {
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthlyTitle:  "Monthly Summary (Total Price and Total Profit)",
		PriceSum:      "Price Total",
		ProfitSum:     "Profit Total",
		GrandTitle:    "All Months Combined",
		TotalPrices:   "Grand Total Price",
		TotalProfits:  "Grand Total Profit",
		ProductsTitle: "Products Sold by Month",
		AllTimeTitle:  "All-Time Product Sales",
		WeeklyTitle:   "This Week's Sales",
		QuantityCol:   "Quantity",
		PriceCol:      "Price",
		ProfitCol:     "Profit",
		NoData:        "No data available.",
	},
}

// Locale returns the strings for a locale name; unknown names fall
// back to Spanish, the export's native locale.
func Locale(name string) Strings {
	if s, ok := locales[strings.ToLower(name)]; ok {
		return s
	}
	return locales["es"]
}

// MonthName renders a "YYYY-MM" key as "YYYY - Month" in the locale.
// Keys with out-of-range months are shown verbatim, matching the
// parser's refusal to range-check dates.
func (s Strings) MonthName(monthKey string) string {
	parts := strings.SplitN(monthKey, "-", 2)
	if len(parts) != 2 {
		return monthKey
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return monthKey
	}
	return parts[0] + " - " + s.Months[month-1]
}

// FormatMoney renders an amount as "C$1,234.56", the currency style
// of the source export.
func FormatMoney(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + "C$" + b.String() + "." + fracPart
}
