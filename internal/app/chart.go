package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/renewstat/internal/chart"
	"github.com/blackwell-systems/renewstat/internal/config"
	"github.com/blackwell-systems/renewstat/internal/output"
	"github.com/blackwell-systems/renewstat/internal/store"
)

// chartNames lists every chart in render order.
var chartNames = []string{"line", "bar", "heatmap", "pie"}

// openChart displays a rendered chart. Replaced in tests.
var openChart chart.Viewer = chart.SystemViewer

var chartCmd = &cobra.Command{
	Use:   "chart [line|bar|heatmap|pie]...",
	Short: "Render one or more charts",
	Long: `Render charts from the dataset into the output directory.

Charts:
  line     trend of the top countries by mean production over a year range
  bar      mean production per country, alphabetical
  heatmap  correlation matrix of the numeric columns
  pie      share of each energy type in total production

Without arguments every chart is rendered. Charts are always rendered in
the order line, bar, heatmap, pie.`,
	Example: `  # Render every chart
  renewstat chart

  # Trend of the top 3 countries between 2000 and 2010
  renewstat chart line --top 3 --start-year 2000 --end-year 2010

  # Render the pie chart as SVG and open it
  renewstat chart pie --format svg --open`,
	ValidArgs: chartNames,
	Args:      cobra.OnlyValidArgs,
	RunE:      runChart,
}

func runChart(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	names := chartNames
	if len(args) > 0 {
		requested := make(map[string]bool, len(args))
		for _, a := range args {
			requested[a] = true
		}
		names = nil
		for _, n := range chartNames {
			if requested[n] {
				names = append(names, n)
			}
		}
	}

	if err := renderCharts(s, names); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Charts written to %s\n", s.cfg.Output.Dir)
	return nil
}

// renderCharts renders names in order and opens each one if configured.
// The first failure aborts the run.
func renderCharts(s *session, names []string) error {
	r, err := chart.NewRenderer(chart.Options{
		Dir:    s.cfg.Output.Dir,
		Format: s.cfg.Output.Format,
		Width:  s.cfg.Output.WidthIn,
		Height: s.cfg.Output.HeightIn,
	})
	if err != nil {
		return err
	}

	progress := output.NewProgress(len(names))
	defer progress.Finish()

	for _, name := range names {
		path, err := renderChart(s, r, name)
		if err != nil {
			return fmt.Errorf("failed to render %s chart: %w", name, err)
		}
		progress.Step(path)
		s.log.Debug("chart written", zap.String("chart", name), zap.String("path", path))

		if s.cfg.Output.Open {
			if err := openChart(path); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderChart(s *session, r *chart.Renderer, name string) (string, error) {
	cols := s.cfg.Columns
	metric := metricLabel(cols)

	switch name {
	case "line":
		st, err := s.store()
		if err != nil {
			return "", err
		}
		tr, err := chart.SelectTrend(st, s.cfg.Line.Top, s.cfg.Line.StartYear, s.cfg.Line.EndYear)
		if err != nil {
			return "", err
		}
		s.log.Debug("trend selected", zap.Int("entities", len(tr.Selected)), zap.Int("with_points", len(tr.Series)))
		return r.Line(tr, cols.Entity, metric)

	case "bar":
		st, err := s.store()
		if err != nil {
			return "", err
		}
		return r.Bar(st, cols.Entity, metric)

	case "heatmap":
		return r.Heatmap(s.ds)

	case "pie":
		shares, err := chart.EnergyShares(s.ds, cols.Shares)
		if err != nil {
			return "", err
		}
		return r.Pie(shares)

	default:
		return "", fmt.Errorf("unknown chart %q", name)
	}
}

// metricLabel is the configured metric label, or the humanized column
// name when none is set.
func metricLabel(cols config.ColumnsConfig) string {
	if cols.MetricLabel != "" {
		return cols.MetricLabel
	}
	return humanize(cols.Metric)
}

// storeColumns maps the configured column names onto the query store.
func storeColumns(s *session) store.Columns {
	return store.Columns{
		Entity: s.cfg.Columns.Entity,
		Year:   s.cfg.Columns.Year,
		Metric: s.cfg.Columns.Metric,
	}
}
