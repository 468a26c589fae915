package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/blackwell-systems/renewstat/internal/store"
)

// Bar draws the mean metric of every entity, one bar each, in ascending
// entity order. Entities without any metric value are left out.
func (r *Renderer) Bar(st *store.Store, entityLabel, metricLabel string) (string, error) {
	means, err := st.EntityMeans()
	if err != nil {
		return "", err
	}

	var values plotter.Values
	var names []string
	for _, m := range means {
		if math.IsNaN(m.Mean) {
			continue
		}
		values = append(values, m.Mean)
		names = append(names, m.Entity)
	}
	if len(values) == 0 {
		return "", fmt.Errorf("bar chart: %w", ErrNoData)
	}

	p := newPlot(fmt.Sprintf("Average %s by %s", metricLabel, entityLabel))
	p.X.Label.Text = entityLabel
	p.Y.Label.Text = "Average " + metricLabel
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	addGrid(p, false)

	width := barWidth(len(values), r.opts.Width)
	bars, err := plotter.NewBarChart(values, width)
	if err != nil {
		return "", fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = paletteColor(bright, 0)

	p.Add(bars)
	p.NominalX(names...)

	return r.save(p, "bar")
}

// barWidth shrinks bars as the number of entities grows so they never
// overlap on a page widthIn inches wide.
func barWidth(n int, widthIn float64) vg.Length {
	w := vg.Length(widthIn) * vg.Inch * 0.7 / vg.Length(n)
	if limit := vg.Points(40); w > limit {
		return limit
	}
	return w
}
