// Package analyzer computes descriptive statistics over a dataset: per-column
// descriptions, the Pearson correlation matrix of numeric columns, and the
// excess kurtosis and skewness of each numeric column.
package analyzer

import (
	"fmt"

	"github.com/blackwell-systems/renewstat/internal/dataset"
)

// Analyzer computes statistics for a single dataset. It never modifies it.
type Analyzer struct {
	ds *dataset.Dataset
}

// New creates a new Analyzer for ds.
func New(ds *dataset.Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

// Summarize runs every statistic the summary report prints.
func (a *Analyzer) Summarize() (*Summary, error) {
	cols, err := a.Describe()
	if err != nil {
		return nil, fmt.Errorf("failed to describe columns: %w", err)
	}

	corr, err := a.Correlation()
	if err != nil {
		return nil, fmt.Errorf("failed to compute correlation: %w", err)
	}

	kurt, err := a.Kurtosis()
	if err != nil {
		return nil, fmt.Errorf("failed to compute kurtosis: %w", err)
	}

	skew, err := a.Skewness()
	if err != nil {
		return nil, fmt.Errorf("failed to compute skewness: %w", err)
	}

	return &Summary{
		Rows:        a.ds.Nrow(),
		Columns:     cols,
		Correlation: corr,
		Kurtosis:    kurt,
		Skewness:    skew,
	}, nil
}

// numericColumns loads every numeric column once, in file order.
func (a *Analyzer) numericColumns() ([]string, [][]float64, error) {
	names := a.ds.NumericColumns()
	values := make([][]float64, len(names))
	for i, name := range names {
		vals, err := a.ds.Floats(name)
		if err != nil {
			return nil, nil, err
		}
		values[i] = vals
	}
	return names, values, nil
}
