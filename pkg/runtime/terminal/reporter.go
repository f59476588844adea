package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
)

var _ reporters.Reporter = (*Reporter)(nil)

// Reporter renders reports as plain text for the console or a text
// file, with localized month names and headings.
type Reporter struct {
	writer io.Writer
	loc    reporters.Strings
}

// NewReporter creates a plain-text reporter. A nil writer defaults to
// stdout.
func NewReporter(w io.Writer, opts reporters.Options) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{writer: w, loc: reporters.Locale(opts.Locale)}
}

func (r *Reporter) funcs() template.FuncMap {
	return template.FuncMap{
		"money": reporters.FormatMoney,
		"month": r.loc.MonthName,
	}
}

func (r *Reporter) render(name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(r.funcs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return t.Execute(r.writer, data)
}

func (r *Reporter) noData() error {
	_, err := fmt.Fprintln(r.writer, r.loc.NoData)
	return err
}

func (r *Reporter) MonthlyReport(report domain.MonthlyReport) error {
	if report.Empty() {
		return r.noData()
	}

	tmpl := `{{.L.MonthlyTitle}}

{{range .R.Months}}*   {{month .Month}}:
    *   {{$.L.PriceSum}}: {{money .Price}}
    *   {{$.L.ProfitSum}}: {{money .Profit}}

{{end}}--------------------------------------------------
{{.L.GrandTitle}}

*   {{.L.TotalPrices}}: {{money .R.TotalPrice}}
*   {{.L.TotalProfits}}: {{money .R.TotalProfit}}
--------------------------------------------------
`
	return r.render("monthly", tmpl, struct {
		L reporters.Strings
		R domain.MonthlyReport
	}{r.loc, report})
}

func (r *Reporter) ProductReport(report domain.ProductReport) error {
	if report.Empty() {
		return r.noData()
	}

	tmpl := `{{.L.ProductsTitle}}

{{range .R.Months}}=== {{month .Month}} ===
{{range .Products}}    {{.Product}}: {{printf "%g" .Quantity}}
{{end}}
{{end}}{{.L.AllTimeTitle}}

{{range .R.Totals}}    {{.Product}}: {{printf "%g" .Quantity}}
{{end}}`
	return r.render("products", tmpl, struct {
		L reporters.Strings
		R domain.ProductReport
	}{r.loc, report})
}

func (r *Reporter) WeeklyReport(report domain.WeeklyReport) error {
	if report.Empty() {
		return r.noData()
	}

	tmpl := `{{.L.WeeklyTitle}} ({{.Start}} / {{.End}})

{{range .R.Days}}=== {{.Day}} ===
{{range .Products}}    {{.Product}}: {{$.L.QuantityCol}} {{printf "%g" .Quantity}}, {{$.L.PriceCol}} {{money .Price}}, {{$.L.ProfitCol}} {{money .Profit}}
{{end}}
{{end}}`
	return r.render("weekly", tmpl, struct {
		L     reporters.Strings
		R     domain.WeeklyReport
		Start string
		End   string
	}{
		r.loc,
		report,
		report.Start.Format("2006-01-02"),
		// End is exclusive; show the Saturday.
		report.End.AddDate(0, 0, -1).Format("2006-01-02"),
	})
}
