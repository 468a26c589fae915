package store

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/blackwell-systems/renewstat/internal/dataset"
)

const energyCSV = `Country,Year,TotalRenewableEnergy
Germany,2017,400
Germany,2018,500
Germany,2019,600
Germany,2019,700
France,2018,300
France,2020,310
Brazil,2018,450
Brazil,2022,550
Chile,2018,100
Chile,2023,900
India,2019,200
Japan,2021,250
Japan,2021,
Atlantis,2018,
,2018,999
`

var energyColumns = Columns{Entity: "Country", Year: "Year", Metric: "TotalRenewableEnergy"}

// newTestStore returns an in-memory store loaded with csv.
func newTestStore(t *testing.T, csv string) *Store {
	t.Helper()

	ds, err := dataset.Read(strings.NewReader(csv), ',')
	if err != nil {
		t.Fatalf("dataset.Read() failed: %v", err)
	}

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if _, err := s.Load(ds, energyColumns); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s
}

func TestQueries_NotLoaded(t *testing.T) {
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	if _, err := s.EntityMeans(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("EntityMeans() error = %v, want ErrNotLoaded", err)
	}
	if _, err := s.TopEntities(5); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("TopEntities() error = %v, want ErrNotLoaded", err)
	}
	if _, err := s.Series([]string{"Germany"}, 2018, 2022); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Series() error = %v, want ErrNotLoaded", err)
	}
}

func TestLoad_SkipsRowsWithoutEntity(t *testing.T) {
	ds, err := dataset.Read(strings.NewReader(energyCSV), ',')
	if err != nil {
		t.Fatalf("dataset.Read() failed: %v", err)
	}
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	n, err := s.Load(ds, energyColumns)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if n != 14 {
		t.Errorf("Load() inserted %d rows, want 14", n)
	}

	if _, err := s.Load(ds, energyColumns); err == nil {
		t.Error("second Load() should fail")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	ds, err := dataset.Read(strings.NewReader("Country,Year\nKenya,2018\n"), ',')
	if err != nil {
		t.Fatalf("dataset.Read() failed: %v", err)
	}
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	_, err = s.Load(ds, energyColumns)
	if !errors.Is(err, dataset.ErrColumnNotFound) {
		t.Errorf("Load() error = %v, want ErrColumnNotFound", err)
	}
}

func TestEntityMeans(t *testing.T) {
	s := newTestStore(t, energyCSV)

	means, err := s.EntityMeans()
	if err != nil {
		t.Fatalf("EntityMeans() failed: %v", err)
	}

	want := []EntityMean{
		{"Atlantis", math.NaN()},
		{"Brazil", 500},
		{"Chile", 500},
		{"France", 305},
		{"Germany", 550},
		{"India", 200},
		{"Japan", 250},
	}
	if len(means) != len(want) {
		t.Fatalf("EntityMeans() returned %d entities, want %d: %v", len(means), len(want), means)
	}
	for i := range want {
		if means[i].Entity != want[i].Entity {
			t.Errorf("means[%d].Entity = %q, want %q", i, means[i].Entity, want[i].Entity)
		}
		if math.IsNaN(want[i].Mean) {
			if !math.IsNaN(means[i].Mean) {
				t.Errorf("means[%d].Mean = %v, want NaN", i, means[i].Mean)
			}
			continue
		}
		if math.Abs(means[i].Mean-want[i].Mean) > 1e-9 {
			t.Errorf("means[%d].Mean = %v, want %v", i, means[i].Mean, want[i].Mean)
		}
	}
}

func TestTopEntities(t *testing.T) {
	s := newTestStore(t, energyCSV)

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "top 1", n: 1, want: []string{"Germany"}},
		{name: "ties by name", n: 3, want: []string{"Germany", "Brazil", "Chile"}},
		{name: "top 5", n: 5, want: []string{"Germany", "Brazil", "Chile", "France", "Japan"}},
		{name: "more than available", n: 50, want: []string{"Germany", "Brazil", "Chile", "France", "Japan", "India"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, err := s.TopEntities(tt.n)
			if err != nil {
				t.Fatalf("TopEntities() failed: %v", err)
			}
			if len(top) != len(tt.want) {
				t.Fatalf("TopEntities(%d) = %v, want %v", tt.n, top, tt.want)
			}
			for i, e := range top {
				if e.Entity != tt.want[i] {
					t.Errorf("TopEntities(%d)[%d] = %q, want %q", tt.n, i, e.Entity, tt.want[i])
				}
			}
		})
	}

	if _, err := s.TopEntities(0); err == nil {
		t.Error("TopEntities(0) should fail")
	}
}

func TestSeries_YearRange(t *testing.T) {
	s := newTestStore(t, energyCSV)

	points, err := s.Series([]string{"Germany", "Chile", "Japan"}, 2018, 2022)
	if err != nil {
		t.Fatalf("Series() failed: %v", err)
	}

	want := []Point{
		{"Chile", 2018, 100},
		{"Germany", 2018, 500},
		{"Germany", 2019, 650},
		{"Japan", 2021, 250},
	}
	if len(points) != len(want) {
		t.Fatalf("Series() = %v, want %v", points, want)
	}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("points[%d] = %+v, want %+v", i, p, want[i])
		}
		if p.Year < 2018 || p.Year > 2022 {
			t.Errorf("points[%d].Year = %d outside [2018, 2022]", i, p.Year)
		}
	}
}

func TestSeries_NoEntities(t *testing.T) {
	s := newTestStore(t, energyCSV)

	points, err := s.Series(nil, 2018, 2022)
	if err != nil {
		t.Fatalf("Series() failed: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("Series(nil) = %v, want empty", points)
	}
}
