package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/renewstat/internal/analyzer"
	"github.com/blackwell-systems/renewstat/internal/output"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print descriptive statistics for the dataset",
	Long: `Print summary statistics for every column of the dataset.

Numeric (integer or float) columns show count, mean, standard deviation,
minimum, quartiles and maximum. Other columns show count, number of
distinct values, the most frequent value and its frequency.

The summary also includes the Pearson correlation matrix of the numeric
columns and the excess kurtosis and skewness of each numeric column.`,
	Example: `  # Summarize the default dataset
  renewstat summary

  # Summarize a semicolon-separated file
  renewstat summary --data energy.csv --delimiter ";"`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	return printSummary(cmd, s)
}

func printSummary(cmd *cobra.Command, s *session) error {
	summary, err := analyzer.New(s.ds).Summarize()
	if err != nil {
		return fmt.Errorf("failed to summarize dataset: %w", err)
	}

	s.log.Debug("summary computed",
		zap.Int("columns", len(summary.Columns)),
		zap.Int("numeric", summary.Correlation.Len()))

	fmt.Fprint(cmd.OutOrStdout(), output.RenderSummary(summary))
	return nil
}
