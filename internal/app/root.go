package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool

	// RootCmd is the root command for renewstat
	RootCmd = &cobra.Command{
		Use:   "renewstat",
		Short: "Summary statistics and charts for renewable energy production data",
		Long: `renewstat loads a table of renewable energy production statistics, prints
descriptive statistics, and renders four charts.

Running renewstat with no arguments performs the whole analysis:
  1. Summary: descriptive statistics, correlation matrix, kurtosis, skewness
  2. Line chart: production trend of the top countries in a year range
  3. Bar chart: average production per country
  4. Heatmap: correlation between the numeric columns
  5. Pie chart: share of solar, wind, hydro and other renewables

Charts are written as image files to the output directory (./charts by
default). Pass --open to display each one with the system viewer.

Examples:
  # Analyse global_renewable_energy_production.csv in the current directory
  renewstat

  # Analyse another file, trend over 2010-2020, charts as SVG
  renewstat --data energy.csv --start-year 2010 --end-year 2020 --format svg

  # Only print the summary
  renewstat summary

  # Only render the heatmap and the pie chart
  renewstat chart heatmap pie`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runAll,
	}
)

func init() {
	pf := RootCmd.PersistentFlags()

	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	pf.String("data", "", "input table (default: global_renewable_energy_production.csv)")
	pf.String("delimiter", "", "field delimiter (default: \",\")")
	pf.String("out", "", "chart output directory (default: charts)")
	pf.String("format", "", "chart image format: png, svg, pdf, jpg (default: png)")
	pf.Bool("open", false, "open each chart with the system viewer")
	pf.Int("start-year", 0, "first year of the trend chart (default: 2018)")
	pf.Int("end-year", 0, "last year of the trend chart (default: 2022)")
	pf.Int("top", 0, "number of countries in the trend chart (default: 5)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	RootCmd.AddCommand(summaryCmd)
	RootCmd.AddCommand(chartCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// runAll prints the summary and renders every chart, in order.
func runAll(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := printSummary(cmd, s); err != nil {
		return err
	}

	if err := renderCharts(s, chartNames); err != nil {
		return err
	}

	s.log.Debug("analysis complete", zap.String("out", s.cfg.Output.Dir))
	fmt.Fprintf(cmd.OutOrStdout(), "\nCharts written to %s\n", s.cfg.Output.Dir)
	return nil
}
