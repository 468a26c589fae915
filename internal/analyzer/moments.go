package analyzer

import (
	"math"

	"github.com/blackwell-systems/renewstat/internal/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Kurtosis returns the bias-corrected excess kurtosis of each numeric
// column. Columns with fewer than four values are NaN; constant columns
// are 0.
func (a *Analyzer) Kurtosis() ([]Moment, error) {
	return a.moments(4, stat.ExKurtosis)
}

// Skewness returns the adjusted Fisher-Pearson skewness of each numeric
// column. Columns with fewer than three values are NaN; constant columns
// are 0.
func (a *Analyzer) Skewness() ([]Moment, error) {
	return a.moments(3, stat.Skew)
}

func (a *Analyzer) moments(minCount int, fn func(x, weights []float64) float64) ([]Moment, error) {
	names, values, err := a.numericColumns()
	if err != nil {
		return nil, err
	}

	out := make([]Moment, 0, len(names))
	for i, name := range names {
		out = append(out, Moment{Column: name, Value: moment(dataset.Present(values[i]), minCount, fn)})
	}
	return out, nil
}

func moment(x []float64, minCount int, fn func(x, weights []float64) float64) float64 {
	if len(x) < minCount {
		return math.NaN()
	}
	if floats.Min(x) == floats.Max(x) {
		return 0
	}
	return fn(x, nil)
}
