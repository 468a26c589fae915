package chart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// yearTicks labels every whole year in range, thinning to at most ten
// labels for long ranges.
type yearTicks struct{}

func (yearTicks) Ticks(min, max float64) []plot.Tick {
	first, last := int(math.Ceil(min)), int(math.Floor(max))
	if last < first {
		return plot.DefaultTicks{}.Ticks(min, max)
	}

	step := 1
	if span := last - first; span > 10 {
		step = int(math.Ceil(float64(span) / 10))
	}

	var ticks []plot.Tick
	for y := first; y <= last; y += step {
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}
	return ticks
}
