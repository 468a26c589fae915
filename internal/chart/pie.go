package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/blackwell-systems/renewstat/internal/dataset"
)

// Share is one pie slice: the total of a column over all rows.
type Share struct {
	Label string
	Value float64
}

// EnergyShares sums each named column of ds. Every column must exist and
// be numeric.
func EnergyShares(ds *dataset.Dataset, columns []string) ([]Share, error) {
	shares := make([]Share, 0, len(columns))
	for _, col := range columns {
		sum, err := ds.Sum(col)
		if err != nil {
			return nil, fmt.Errorf("pie chart: %w", err)
		}
		shares = append(shares, Share{Label: col, Value: sum})
	}
	return shares, nil
}

// Percentages returns each share as a percentage of the grand total.
func Percentages(shares []Share) ([]float64, error) {
	var total float64
	for _, s := range shares {
		if s.Value < 0 || math.IsNaN(s.Value) {
			return nil, fmt.Errorf("pie chart: invalid share %s=%v", s.Label, s.Value)
		}
		total += s.Value
	}
	if total <= 0 {
		return nil, fmt.Errorf("pie chart: %w: shares sum to zero", ErrNoData)
	}

	pct := make([]float64, len(shares))
	for i, s := range shares {
		pct[i] = 100 * s.Value / total
	}
	return pct, nil
}

// Pie draws shares as slices labelled with their percentage of the total.
func (r *Renderer) Pie(shares []Share) (string, error) {
	pct, err := Percentages(shares)
	if err != nil {
		return "", err
	}

	p := newPlot("Proportion of Different Types of Renewable Energy Production")
	p.HideAxes()
	p.Legend.Top = true

	pc := &pieChart{shares: shares, percent: pct}
	pc.LabelStyle = p.Legend.TextStyle
	pc.LabelStyle.Font.Size = vg.Points(11)
	p.Add(pc)

	for i, s := range shares {
		p.Legend.Add(s.Label, swatch{paletteColor(dark, i)})
	}

	return r.save(p, "pie")
}

// pieChart implements plot.Plotter. Slices start at three o'clock and run
// counter-clockwise.
type pieChart struct {
	shares     []Share
	percent    []float64
	LabelStyle text.Style
}

func (pc *pieChart) Plot(c draw.Canvas, _ *plot.Plot) {
	w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
	radius := 0.4 * w
	if h < w {
		radius = 0.4 * h
	}
	center := vg.Point{X: c.Min.X + w/2, Y: c.Min.Y + h/2}

	start := 0.0
	for i, s := range pc.shares {
		sweep := 2 * math.Pi * pc.percent[i] / 100
		if sweep == 0 {
			continue
		}

		var path vg.Path
		path.Move(center)
		path.Arc(center, radius, start, sweep)
		path.Close()
		c.SetColor(paletteColor(dark, i))
		c.Fill(path)

		mid := start + sweep/2
		dir := vg.Point{X: vg.Length(math.Cos(mid)), Y: vg.Length(math.Sin(mid))}

		pctStyle := centered(pc.LabelStyle)
		c.FillText(pctStyle, center.Add(dir.Scale(0.6*radius)), fmt.Sprintf("%.1f%%", pc.percent[i]))

		nameStyle := centered(pc.LabelStyle)
		if dir.X > 0.1 {
			nameStyle.XAlign = text.XLeft
		} else if dir.X < -0.1 {
			nameStyle.XAlign = text.XRight
		}
		c.FillText(nameStyle, center.Add(dir.Scale(1.1*radius)), s.Label)

		start += sweep
	}
}

// swatch is a legend thumbnail filled with a single colour.
type swatch struct {
	color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.Color, pts)
}
