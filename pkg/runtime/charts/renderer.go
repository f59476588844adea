package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/ventas-tools/sales-atlas/pkg/models/domain"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = fmt.Errorf("no chart data")

// Renderer draws bar charts from flat chart entries as SVG.
type Renderer struct {
	width  int
	height int
}

func NewRenderer() *Renderer {
	return &Renderer{width: 1024, height: 512}
}

// RenderBars draws one bar per entry, price and profit bars side by
// side in entry order.
func (r *Renderer) RenderBars(title string, entries []domain.ChartEntry, w io.Writer) error {
	if len(entries) == 0 {
		return ErrNoData
	}

	bars := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		label := e.Label
		if e.Kind != "" {
			label = fmt.Sprintf("%s %s", e.Label, e.Kind)
		}
		bars = append(bars, chart.Value{Label: label, Value: e.Total})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    r.width,
		Height:   r.height,
		BarWidth: 40,
		Bars:     bars,
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("failed to render bar chart: %w", err)
	}
	return nil
}
