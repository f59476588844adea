package report

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/charts"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/ventas-tools/sales-atlas/pkg/services/analysis"
	"github.com/ventas-tools/sales-atlas/pkg/services/config"
	"github.com/ventas-tools/sales-atlas/pkg/services/gains"
	"github.com/ventas-tools/sales-atlas/pkg/services/sales"
)

// Handler serves the HTML reports and the SVG chart. Reports are
// rebuilt from the source files on every request, so a re-downloaded
// export shows up without a restart.
type Handler struct {
	profile *config.Profile
	render  *charts.Renderer
}

func NewHandler(profile *config.Profile) *Handler {
	return &Handler{profile: profile, render: charts.NewRenderer()}
}

func (h *Handler) load(logger zerolog.Logger, needGains bool) ([][]string, domain.GainTable, error) {
	rows, err := sales.NewReader(logger).ReadFile(h.profile.SalesFile)
	if err != nil {
		return nil, nil, err
	}
	var table domain.GainTable
	if needGains {
		table, err = gains.NewParser(logger).Parse(h.profile.GainsFile)
		if err != nil {
			return nil, nil, err
		}
	}
	return rows, table, nil
}

func (h *Handler) htmlReporter(w http.ResponseWriter) *export.Reporter {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return export.NewReporter(w, reporters.Options{Locale: h.profile.Locale})
}

func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, table, err := h.load(*logger, true)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load sales data")
		http.Error(w, "failed to load sales data", http.StatusInternalServerError)
		return
	}

	report := analysis.NewAnalyzer(*logger).MonthlyTotals(rows, table)
	if err := h.htmlReporter(w).MonthlyReport(report); err != nil {
		logger.Error().Err(err).Msg("failed to render monthly report")
	}
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, _, err := h.load(*logger, false)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load sales data")
		http.Error(w, "failed to load sales data", http.StatusInternalServerError)
		return
	}

	report := analysis.NewAnalyzer(*logger).ProductSales(rows)
	if err := h.htmlReporter(w).ProductReport(report); err != nil {
		logger.Error().Err(err).Msg("failed to render product report")
	}
}

func (h *Handler) Weekly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, table, err := h.load(*logger, true)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load sales data")
		http.Error(w, "failed to load sales data", http.StatusInternalServerError)
		return
	}

	report := analysis.NewAnalyzer(*logger).WeeklySales(rows, table)
	if err := h.htmlReporter(w).WeeklyReport(report); err != nil {
		logger.Error().Err(err).Msg("failed to render weekly report")
	}
}

func (h *Handler) MonthlyChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, table, err := h.load(*logger, true)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load sales data")
		http.Error(w, "failed to load sales data", http.StatusInternalServerError)
		return
	}

	report := analysis.NewAnalyzer(*logger).MonthlyTotals(rows, table)
	if report.Empty() {
		http.Error(w, "no data available", http.StatusNotFound)
		return
	}

	title := reporters.Locale(h.profile.Locale).MonthlyTitle
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := h.render.RenderBars(title, report.ChartEntries(), w); err != nil {
		logger.Error().Err(err).Msg("failed to render chart")
	}
}
