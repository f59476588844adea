package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
)

func TestReporter_MonthlyReport(t *testing.T) {
	t.Run("renders a standalone document", func(t *testing.T) {
		report := domain.MonthlyReport{Months: []domain.MonthTotal{
			{Month: "2024-03", Price: 1250, Profit: 107.5},
		}}

		var buf bytes.Buffer
		r := NewReporter(&buf, reporters.Options{Locale: "es"})

		require.NoError(t, r.MonthlyReport(report))
		out := buf.String()

		assert.Contains(t, out, "<!DOCTYPE html>")
		assert.Contains(t, out, `lang="es"`)
		assert.Contains(t, out, "2024 - Marzo")
		assert.Contains(t, out, "C$1,250.00")
		assert.Contains(t, out, "Resumen Total de Todos los Meses")
	})

	t.Run("product names are HTML-escaped", func(t *testing.T) {
		report := domain.ProductReport{Totals: []domain.ProductTotal{
			{Product: "Bolsa <script>", Quantity: 1},
		}}

		var buf bytes.Buffer
		r := NewReporter(&buf, reporters.Options{Locale: "es"})

		require.NoError(t, r.ProductReport(report))
		assert.NotContains(t, buf.String(), "<script>")
		assert.Contains(t, buf.String(), "&lt;script&gt;")
	})

	t.Run("empty report shows the no-data message", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewReporter(&buf, reporters.Options{Locale: "en"})

		require.NoError(t, r.MonthlyReport(domain.MonthlyReport{}))
		assert.Contains(t, buf.String(), "No data available.")
	})
}

func TestReporter_WeeklyReport(t *testing.T) {
	report := domain.WeeklyReport{Days: []domain.DaySales{
		{Day: "2024-03-05", Products: []domain.ProductDaySales{
			{Product: "Bolsa Grande", Quantity: 4, Price: 48, Profit: 25},
		}},
	}}

	var buf bytes.Buffer
	r := NewReporter(&buf, reporters.Options{Locale: "es"})

	require.NoError(t, r.WeeklyReport(report))
	out := buf.String()

	assert.Contains(t, out, "Ventas de la Semana")
	assert.Contains(t, out, "2024-03-05")
	assert.Contains(t, out, "C$48.00")
}
