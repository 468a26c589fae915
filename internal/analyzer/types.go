package analyzer

import (
	"github.com/blackwell-systems/renewstat/internal/dataset"
	"gonum.org/v1/gonum/mat"
)

// Summary is everything the summary report prints.
type Summary struct {
	Rows        int
	Columns     []ColumnSummary
	Correlation *Correlation
	Kurtosis    []Moment
	Skewness    []Moment
}

// ColumnSummary describes one column. Numeric columns fill the
// distribution fields; categorical columns fill Unique, Top and Freq.
type ColumnSummary struct {
	Name  string
	Kind  dataset.Kind
	Count int // non-missing cells

	Mean   float64
	Std    float64 // sample standard deviation (n-1)
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64

	Unique int
	Top    string
	Freq   int
}

// Numeric reports whether the distribution fields are populated.
func (c ColumnSummary) Numeric() bool {
	return c.Kind.Numeric()
}

// Moment is a per-column scalar such as skewness or kurtosis.
type Moment struct {
	Column string
	Value  float64
}

// Correlation is a symmetric matrix of pairwise Pearson coefficients.
// With no numeric columns it is empty and Matrix returns nil.
type Correlation struct {
	Columns []string
	matrix  *mat.SymDense
}

// Len returns the number of columns (and rows) of the matrix.
func (c *Correlation) Len() int {
	return len(c.Columns)
}

// At returns the coefficient between columns i and j.
func (c *Correlation) At(i, j int) float64 {
	return c.matrix.At(i, j)
}

// Matrix returns the underlying matrix, or nil when empty.
func (c *Correlation) Matrix() *mat.SymDense {
	return c.matrix
}
