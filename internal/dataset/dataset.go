// Package dataset loads a delimited table into memory and exposes
// read-only, typed views of its columns.
//
// Column types are inferred once at load time. A column is numeric when
// every non-missing value parses as an integer or a float; boolean and
// string columns are categorical. Missing cells read back as NaN from
// numeric accessors and as "" from Strings.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
)

// Sentinel errors returned by column accessors.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrNotNumeric     = errors.New("column is not numeric")
)

// missingValues are the cell spellings read as "no value".
var missingValues = []string{"", "NA", "N/A", "NaN", "nan", "null", "<nil>"}

// Kind is the inferred type of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the kind name used in summary output.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Numeric reports whether columns of this kind take part in correlation,
// kurtosis and skewness.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Dataset is an immutable in-memory table.
type Dataset struct {
	df dataframe.DataFrame
}

// Load reads the delimited file at path. The first row must be a header.
func Load(path string, delimiter rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return ds, nil
}

// Read parses delimited text from r.
func Read(r io.Reader, delimiter rune) (*Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingValues),
	)
	return build(df)
}

// FromRecords builds a Dataset from in-memory rows; records[0] is the header.
func FromRecords(records [][]string) (*Dataset, error) {
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(missingValues),
	)
	return build(df)
}

func build(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("malformed table: %w", df.Err)
	}
	df = floatEmptyColumns(df)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to type empty columns: %w", df.Err)
	}
	return &Dataset{df: df}, nil
}

// floatEmptyColumns re-types columns in which every cell is missing as
// float, so they stay numeric instead of falling back to string.
func floatEmptyColumns(df dataframe.DataFrame) dataframe.DataFrame {
	if df.Nrow() == 0 {
		return df
	}
	for _, name := range df.Names() {
		col := df.Col(name)
		if col.Type() == series.Float || !allTrue(col.IsNaN()) {
			continue
		}
		df = df.Mutate(series.New(col.Records(), series.Float, name))
	}
	return df
}

func allTrue(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

// Names returns the column names in file order.
func (d *Dataset) Names() []string {
	return d.df.Names()
}

// Nrow returns the number of data rows.
func (d *Dataset) Nrow() int {
	return d.df.Nrow()
}

// Has reports whether the named column exists.
func (d *Dataset) Has(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func (d *Dataset) column(name string) (series.Series, error) {
	if !d.Has(name) {
		return series.Series{}, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
	}
	return d.df.Col(name), nil
}

// Kind returns the inferred type of the named column.
func (d *Dataset) Kind(name string) (Kind, error) {
	s, err := d.column(name)
	if err != nil {
		return KindString, err
	}
	return kindOf(s.Type()), nil
}

func kindOf(t series.Type) Kind {
	switch t {
	case series.Int:
		return KindInt
	case series.Float:
		return KindFloat
	case series.Bool:
		return KindBool
	default:
		return KindString
	}
}

// NumericColumns returns the int and float columns in file order.
func (d *Dataset) NumericColumns() []string {
	names := d.df.Names()
	types := d.df.Types()

	var numeric []string
	for i, name := range names {
		if kindOf(types[i]).Numeric() {
			numeric = append(numeric, name)
		}
	}
	return numeric
}

// Floats returns a fresh copy of a numeric column with NaN for missing cells.
func (d *Dataset) Floats(name string) ([]float64, error) {
	s, err := d.column(name)
	if err != nil {
		return nil, err
	}
	if !kindOf(s.Type()).Numeric() {
		return nil, fmt.Errorf("%w: %s (%s)", ErrNotNumeric, name, kindOf(s.Type()))
	}

	vals := s.Float()
	for i, missing := range s.IsNaN() {
		if missing {
			vals[i] = math.NaN()
		}
	}
	return vals, nil
}

// Strings returns a fresh copy of any column as text, "" for missing cells.
func (d *Dataset) Strings(name string) ([]string, error) {
	s, err := d.column(name)
	if err != nil {
		return nil, err
	}

	vals := s.Records()
	for i, missing := range s.IsNaN() {
		if missing {
			vals[i] = ""
		}
	}
	return vals, nil
}

// Sum adds up a numeric column, skipping missing cells.
func (d *Dataset) Sum(name string) (float64, error) {
	vals, err := d.Floats(name)
	if err != nil {
		return 0, err
	}
	return floats.Sum(Present(vals)), nil
}

// Present returns the non-NaN values of vals in order.
func Present(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
