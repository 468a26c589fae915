package store

// Columns names the dataset columns mirrored into the store.
type Columns struct {
	Entity string // grouping column, e.g. Country
	Year   string // integer time column
	Metric string // measure averaged per entity
}

// EntityMean is the mean metric of one entity across all years.
// Mean is NaN when the entity has no metric values.
type EntityMean struct {
	Entity string
	Mean   float64
}

// Point is the mean metric of one entity in one year.
type Point struct {
	Entity string
	Year   int
	Value  float64
}
