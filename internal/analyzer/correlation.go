package analyzer

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Correlation computes the Pearson correlation between every pair of
// numeric columns over rows where both values are present. The diagonal
// is always 1. A pair with fewer than two complete rows, or with a
// constant column, is NaN.
func (a *Analyzer) Correlation() (*Correlation, error) {
	names, values, err := a.numericColumns()
	if err != nil {
		return nil, err
	}

	corr := &Correlation{Columns: names}
	if len(names) == 0 {
		return corr, nil
	}

	m := mat.NewSymDense(len(names), nil)
	for i := range names {
		m.SetSym(i, i, 1)
		for j := i + 1; j < len(names); j++ {
			m.SetSym(i, j, pearson(values[i], values[j]))
		}
	}
	corr.matrix = m
	return corr, nil
}

func pearson(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for k := range x {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		xs = append(xs, x[k])
		ys = append(ys, y[k])
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	return r
}
