// Package chart renders the renewstat charts with gonum/plot.
//
// Every chart is written to an image file in the output directory and uses
// a dark theme. Renderers read from the dataset or the query store and
// never modify either.
package chart

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("no data to plot")

// Options controls where charts are written and how large they are.
type Options struct {
	Dir    string
	Format string  // file extension understood by plot.Save: png, svg, pdf, jpg
	Width  float64 // inches
	Height float64 // inches
}

// Renderer writes charts to Options.Dir.
type Renderer struct {
	opts Options
}

// NewRenderer creates the output directory if needed.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Format == "" {
		opts.Format = "png"
	}
	opts.Format = strings.ToLower(opts.Format)
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid chart size %gx%g", opts.Width, opts.Height)
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Renderer{opts: opts}, nil
}

// Path returns the file a chart with the given base name is written to.
func (r *Renderer) Path(name string) string {
	return filepath.Join(r.opts.Dir, name+"."+r.opts.Format)
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	path := r.Path(name)
	w := vg.Length(r.opts.Width) * vg.Inch
	h := vg.Length(r.opts.Height) * vg.Inch
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("failed to save %s chart: %w", name, err)
	}
	return path, nil
}

// Viewer displays a rendered chart file.
type Viewer func(path string) error

// SystemViewer hands path to the platform's default file viewer and does
// not wait for it to exit.
func SystemViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return cmd.Process.Release()
}
