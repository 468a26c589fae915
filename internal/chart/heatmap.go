package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/blackwell-systems/renewstat/internal/analyzer"
	"github.com/blackwell-systems/renewstat/internal/dataset"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Row 0 of the
// matrix is drawn at the top.
type corrGrid struct {
	corr *analyzer.Correlation
}

func (g corrGrid) Dims() (c, r int) {
	n := g.corr.Len()
	return n, n
}

func (g corrGrid) Z(c, r int) float64 {
	return g.corr.At(g.corr.Len()-1-r, c)
}

func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

// Heatmap draws the correlation matrix of the numeric columns of ds as an
// annotated grid on a blue-red scale fixed to [-1, 1].
func (r *Renderer) Heatmap(ds *dataset.Dataset) (string, error) {
	corr, err := analyzer.New(ds).Correlation()
	if err != nil {
		return "", err
	}
	if corr.Len() == 0 {
		return "", fmt.Errorf("heatmap: %w: no numeric columns", ErrNoData)
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(-1)
	cmap.SetMax(1)

	hm := plotter.NewHeatMap(corrGrid{corr: corr}, cmap.Palette(255))
	hm.Min, hm.Max = -1, 1
	hm.NaN = color.Gray{Y: 0x30}

	p := newPlot("Correlation Between Numeric Columns")
	p.Add(hm)

	labels, err := annotations(corr)
	if err != nil {
		return "", err
	}
	p.Add(labels)

	n := corr.Len()
	reversed := make([]string, n)
	for i, name := range corr.Columns {
		reversed[n-1-i] = name
	}
	p.NominalX(corr.Columns...)
	p.NominalY(reversed...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return r.save(p, "heatmap")
}

// annotations labels every cell with its coefficient. Text is dark on the
// pale middle of the scale and light on saturated cells.
func annotations(corr *analyzer.Correlation) (*plotter.Labels, error) {
	n := corr.Len()
	xys := make(plotter.XYs, 0, n*n)
	texts := make([]string, 0, n*n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xys = append(xys, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
			texts = append(texts, fmt.Sprintf("%.2f", corr.At(i, j)))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to build heatmap labels: %w", err)
	}

	for k := range labels.TextStyle {
		v := corr.At(k/n, k%n)
		sty := centered(labels.TextStyle[k])
		sty.Font.Size = vg.Points(10)
		sty.Color = color.White
		if !math.IsNaN(v) && math.Abs(v) < 0.5 {
			sty.Color = color.Black
		}
		labels.TextStyle[k] = sty
	}
	return labels, nil
}
