package chart

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/blackwell-systems/renewstat/internal/store"
)

// Trend is the data behind the line chart.
type Trend struct {
	Start, End int
	// Selected holds the top entities by overall mean, largest first.
	Selected []store.EntityMean
	// Series holds the per-year means of each selected entity, in range.
	Series map[string]plotter.XYs
}

// SelectTrend picks the top n entities by mean metric over all years, then
// collects their per-year means for start <= year <= end. Fewer than n
// entities selects all of them.
func SelectTrend(st *store.Store, n, start, end int) (*Trend, error) {
	if start > end {
		return nil, fmt.Errorf("invalid year range %d-%d", start, end)
	}

	top, err := st.TopEntities(n)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(top))
	for i, e := range top {
		names[i] = e.Entity
	}

	points, err := st.Series(names, start, end)
	if err != nil {
		return nil, err
	}

	series := make(map[string]plotter.XYs, len(names))
	for _, pt := range points {
		series[pt.Entity] = append(series[pt.Entity], plotter.XY{X: float64(pt.Year), Y: pt.Value})
	}

	return &Trend{Start: start, End: end, Selected: top, Series: series}, nil
}

// Line draws one line per selected entity of its metric against year.
func (r *Renderer) Line(tr *Trend, entityLabel, metricLabel string) (string, error) {
	p := newPlot(fmt.Sprintf("Trend of %s (%d-%d) by Top %d %s",
		metricLabel, tr.Start, tr.End, len(tr.Selected), pluralize(entityLabel)))
	p.X.Label.Text = "Year"
	p.Y.Label.Text = metricLabel
	p.X.Tick.Marker = yearTicks{}
	p.Legend.Top = true
	p.Legend.Left = true
	addGrid(p, true)

	for i, e := range tr.Selected {
		xys, ok := tr.Series[e.Entity]
		if !ok {
			continue
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return "", fmt.Errorf("failed to build line for %s: %w", e.Entity, err)
		}
		c := paletteColor(bright, i)
		line.Color = c
		line.Width = vg.Points(2)
		points.GlyphStyle.Color = c
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = vg.Points(3)

		p.Add(line, points)
		p.Legend.Add(e.Entity, line, points)
	}

	return r.save(p, "line")
}

func pluralize(s string) string {
	if s == "Country" {
		return "Countries"
	}
	return s + "s"
}
