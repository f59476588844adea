package export

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
	"github.com/ventas-tools/sales-atlas/pkg/runtime/reporters"
)

const pageShell = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; margin-bottom: 1.5rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
th { background: #f0f0f0; }
td.num { text-align: right; }
h2 { margin-top: 2rem; }
p.nodata { color: #777; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{template "body" .}}
</body>
</html>
`

var _ reporters.Reporter = (*Reporter)(nil)

// Reporter renders reports as standalone HTML documents.
type Reporter struct {
	writer io.Writer
	loc    reporters.Strings
	lang   string
}

// NewReporter creates an HTML reporter. A nil writer defaults to
// stdout.
func NewReporter(w io.Writer, opts reporters.Options) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	lang := opts.Locale
	if lang == "" {
		lang = "es"
	}
	return &Reporter{writer: w, loc: reporters.Locale(opts.Locale), lang: lang}
}

func (r *Reporter) render(name, body string, data map[string]any) error {
	t := template.New(name).Funcs(template.FuncMap{
		"money": reporters.FormatMoney,
		"month": r.loc.MonthName,
	})
	t, err := t.Parse(pageShell)
	if err != nil {
		return fmt.Errorf("failed to parse page template: %w", err)
	}
	if _, err := t.New("body").Parse(body); err != nil {
		return fmt.Errorf("failed to parse body template: %w", err)
	}
	data["Lang"] = r.lang
	data["L"] = r.loc
	return t.Execute(r.writer, data)
}

func (r *Reporter) MonthlyReport(report domain.MonthlyReport) error {
	body := `{{if .R.Empty}}<p class="nodata">{{.L.NoData}}</p>{{else}}
<table>
<tr><th></th><th>{{.L.PriceSum}}</th><th>{{.L.ProfitSum}}</th></tr>
{{range .R.Months}}<tr><td>{{month .Month}}</td><td class="num">{{money .Price}}</td><td class="num">{{money .Profit}}</td></tr>
{{end}}</table>
<h2>{{.L.GrandTitle}}</h2>
<table>
<tr><td>{{.L.TotalPrices}}</td><td class="num">{{money .R.TotalPrice}}</td></tr>
<tr><td>{{.L.TotalProfits}}</td><td class="num">{{money .R.TotalProfit}}</td></tr>
</table>
{{end}}`
	return r.render("monthly", body, map[string]any{
		"Title": r.loc.MonthlyTitle,
		"R":     report,
	})
}

func (r *Reporter) ProductReport(report domain.ProductReport) error {
	body := `{{if .R.Empty}}<p class="nodata">{{.L.NoData}}</p>{{else}}
{{range .R.Months}}<h2>{{month .Month}}</h2>
<table>
<tr><th></th><th>{{$.L.QuantityCol}}</th></tr>
{{range .Products}}<tr><td>{{.Product}}</td><td class="num">{{printf "%g" .Quantity}}</td></tr>
{{end}}</table>
{{end}}
<h2>{{.L.AllTimeTitle}}</h2>
<table>
<tr><th></th><th>{{.L.QuantityCol}}</th></tr>
{{range .R.Totals}}<tr><td>{{.Product}}</td><td class="num">{{printf "%g" .Quantity}}</td></tr>
{{end}}</table>
{{end}}`
	return r.render("products", body, map[string]any{
		"Title": r.loc.ProductsTitle,
		"R":     report,
	})
}

func (r *Reporter) WeeklyReport(report domain.WeeklyReport) error {
	body := `{{if .R.Empty}}<p class="nodata">{{.L.NoData}}</p>{{else}}
<p>{{.Start}} / {{.End}}</p>
{{range .R.Days}}<h2>{{.Day}}</h2>
<table>
<tr><th></th><th>{{$.L.QuantityCol}}</th><th>{{$.L.PriceCol}}</th><th>{{$.L.ProfitCol}}</th></tr>
{{range .Products}}<tr><td>{{.Product}}</td><td class="num">{{printf "%g" .Quantity}}</td><td class="num">{{money .Price}}</td><td class="num">{{money .Profit}}</td></tr>
{{end}}</table>
{{end}}
{{end}}`
	return r.render("weekly", body, map[string]any{
		"Title": r.loc.WeeklyTitle,
		"R":     report,
		"Start": report.Start.Format("2006-01-02"),
		"End":   report.End.AddDate(0, 0, -1).Format("2006-01-02"),
	})
}
