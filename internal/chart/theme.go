package chart

import (
	"image/color"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var (
	background = color.Black
	foreground = color.White
	gridColor  = color.Gray{Y: 0x55}
)

// bright is the palette for per-entity lines.
var bright = []color.Color{
	color.RGBA{R: 0x02, G: 0x3e, B: 0xff, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7c, B: 0x00, A: 0xff},
	color.RGBA{R: 0x1a, G: 0xc9, B: 0x38, A: 0xff},
	color.RGBA{R: 0xe8, G: 0x00, B: 0x0b, A: 0xff},
	color.RGBA{R: 0x8b, G: 0x2b, B: 0xe2, A: 0xff},
	color.RGBA{R: 0x9f, G: 0x48, B: 0x00, A: 0xff},
	color.RGBA{R: 0xf1, G: 0x4c, B: 0xc1, A: 0xff},
	color.RGBA{R: 0xa3, G: 0xa3, B: 0xa3, A: 0xff},
	color.RGBA{R: 0xff, G: 0xc4, B: 0x00, A: 0xff},
	color.RGBA{R: 0x00, G: 0xd7, B: 0xff, A: 0xff},
}

// dark is the palette for pie slices.
var dark = []color.Color{
	color.RGBA{R: 0x00, G: 0x1c, B: 0x7f, A: 0xff},
	color.RGBA{R: 0xb1, G: 0x40, B: 0x0d, A: 0xff},
	color.RGBA{R: 0x12, G: 0x71, B: 0x1c, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x08, B: 0x00, A: 0xff},
	color.RGBA{R: 0x59, G: 0x1e, B: 0x71, A: 0xff},
	color.RGBA{R: 0x59, G: 0x2f, B: 0x0d, A: 0xff},
}

func paletteColor(p []color.Color, i int) color.Color {
	return p[i%len(p)]
}

// newPlot returns a plot with the dark theme and a bold title.
func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = background

	p.Title.Text = title
	p.Title.TextStyle.Color = foreground
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.Title.Padding = vg.Points(8)

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = foreground
		ax.Label.TextStyle.Color = foreground
		ax.Label.TextStyle.Font.Size = vg.Points(12)
		ax.Label.TextStyle.Font.Weight = xfont.WeightBold
		ax.Tick.LineStyle.Color = foreground
		ax.Tick.Label.Color = foreground
	}

	p.Legend.TextStyle.Color = foreground
	return p
}

// addGrid draws dashed horizontal grid lines behind the data.
func addGrid(p *plot.Plot, vertical bool) {
	g := plotter.NewGrid()
	g.Horizontal.Color = gridColor
	g.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	if vertical {
		g.Vertical.Color = gridColor
		g.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	} else {
		g.Vertical.Color = nil
	}
	p.Add(g)
}

// centered returns a copy of sty anchored at its center point.
func centered(sty text.Style) text.Style {
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter
	return sty
}
