package analyzer

import (
	"math"
	"sort"

	"github.com/blackwell-systems/renewstat/internal/dataset"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Describe summarizes every column in file order.
func (a *Analyzer) Describe() ([]ColumnSummary, error) {
	names := a.ds.Names()
	out := make([]ColumnSummary, 0, len(names))

	for _, name := range names {
		kind, err := a.ds.Kind(name)
		if err != nil {
			return nil, err
		}

		if kind.Numeric() {
			vals, err := a.ds.Floats(name)
			if err != nil {
				return nil, err
			}
			out = append(out, describeNumeric(name, kind, vals))
			continue
		}

		vals, err := a.ds.Strings(name)
		if err != nil {
			return nil, err
		}
		out = append(out, describeCategorical(name, kind, vals))
	}

	return out, nil
}

func describeNumeric(name string, kind dataset.Kind, vals []float64) ColumnSummary {
	present := dataset.Present(vals)
	cs := ColumnSummary{Name: name, Kind: kind, Count: len(present)}

	if len(present) == 0 {
		nan := math.NaN()
		cs.Mean, cs.Std, cs.Min, cs.Q25, cs.Median, cs.Q75, cs.Max = nan, nan, nan, nan, nan, nan, nan
		return cs
	}

	sorted := make([]float64, len(present))
	copy(sorted, present)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		cs.Mean = sorted[0]
		cs.Std = math.NaN()
	} else {
		cs.Mean, cs.Std = stat.MeanStdDev(sorted, nil)
	}
	cs.Min = floats.Min(sorted)
	cs.Max = floats.Max(sorted)
	cs.Q25 = quantile(sorted, 0.25)
	cs.Median = quantile(sorted, 0.5)
	cs.Q75 = quantile(sorted, 0.75)
	return cs
}

// quantile interpolates linearly between the closest ranks of sorted,
// i.e. position p*(n-1) with zero-based indexing.
func quantile(sorted []float64, p float64) float64 {
	h := p * float64(len(sorted)-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

func describeCategorical(name string, kind dataset.Kind, vals []string) ColumnSummary {
	cs := ColumnSummary{Name: name, Kind: kind}

	counts := make(map[string]int)
	var order []string
	for _, v := range vals {
		if v == "" {
			continue
		}
		cs.Count++
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	cs.Unique = len(order)
	// First-seen value wins ties.
	for _, v := range order {
		if counts[v] > cs.Freq {
			cs.Top = v
			cs.Freq = counts[v]
		}
	}
	return cs
}
