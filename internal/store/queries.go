package store

import (
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/blackwell-systems/renewstat/internal/dataset"
)

// Load creates the schema and copies the entity, year and metric columns
// of ds into the observations table. Rows without an entity are skipped.
// A Store can be loaded only once.
func (s *Store) Load(ds *dataset.Dataset, cols Columns) (int, error) {
	if s.loaded {
		return 0, fmt.Errorf("store already loaded")
	}

	entities, err := ds.Strings(cols.Entity)
	if err != nil {
		return 0, fmt.Errorf("failed to read entity column: %w", err)
	}
	years, err := ds.Floats(cols.Year)
	if err != nil {
		return 0, fmt.Errorf("failed to read year column: %w", err)
	}
	values, err := ds.Floats(cols.Metric)
	if err != nil {
		return 0, fmt.Errorf("failed to read metric column: %w", err)
	}

	if err := s.CreateSchema(); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO observations (entity, year, value) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for i, entity := range entities {
		if entity == "" {
			continue
		}

		year := sql.NullInt64{}
		if !math.IsNaN(years[i]) {
			year = sql.NullInt64{Int64: int64(years[i]), Valid: true}
		}
		value := sql.NullFloat64{}
		if !math.IsNaN(values[i]) {
			value = sql.NullFloat64{Float64: values[i], Valid: true}
		}

		if _, err := stmt.Exec(entity, year, value); err != nil {
			return inserted, fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit observations: %w", err)
	}

	s.loaded = true
	return inserted, nil
}

// EntityMeans returns the mean metric per entity in ascending entity order.
func (s *Store) EntityMeans() ([]EntityMean, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}

	rows, err := s.db.Query(`
		SELECT entity, AVG(value)
		FROM observations
		GROUP BY entity
		ORDER BY entity ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entity means: %w", err)
	}
	defer rows.Close()

	return scanMeans(rows)
}

// TopEntities returns the n entities with the largest mean metric, largest
// first. Equal means are ordered by ascending entity name. Entities with no
// metric values are never returned.
func (s *Store) TopEntities(n int) ([]EntityMean, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if n <= 0 {
		return nil, fmt.Errorf("invalid limit: %d (must be positive)", n)
	}

	rows, err := s.db.Query(`
		SELECT entity, AVG(value) AS mean
		FROM observations
		GROUP BY entity
		HAVING AVG(value) IS NOT NULL
		ORDER BY mean DESC, entity ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top entities: %w", err)
	}
	defer rows.Close()

	return scanMeans(rows)
}

func scanMeans(rows *sql.Rows) ([]EntityMean, error) {
	var out []EntityMean
	for rows.Next() {
		var m EntityMean
		var mean sql.NullFloat64
		if err := rows.Scan(&m.Entity, &mean); err != nil {
			return nil, fmt.Errorf("failed to scan entity mean: %w", err)
		}
		m.Mean = math.NaN()
		if mean.Valid {
			m.Mean = mean.Float64
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entity means: %w", err)
	}
	return out, nil
}

// Series returns the mean metric per (entity, year) for the given entities
// with start <= year <= end, ordered by entity then year.
func (s *Store) Series(entities []string, start, end int) ([]Point, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	if len(entities) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(entities)), ", ")
	query := fmt.Sprintf(`
		SELECT entity, year, AVG(value)
		FROM observations
		WHERE entity IN (%s)
		  AND year BETWEEN ? AND ?
		  AND value IS NOT NULL
		GROUP BY entity, year
		ORDER BY entity ASC, year ASC
	`, placeholders)

	args := make([]any, 0, len(entities)+2)
	for _, e := range entities {
		args = append(args, e)
	}
	args = append(args, start, end)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query series: %w", err)
	}
	defer rows.Close()

	var points []Point
	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.Entity, &p.Year, &p.Value); err != nil {
			return nil, fmt.Errorf("failed to scan series point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating series: %w", err)
	}
	return points, nil
}
