package ratios

import (
	"math"

	"equity_research/pkg/core/normalize"
)

// Direction classifies a ratio's movement across the series.
type Direction string

const (
	Improving        Direction = "improving"
	Deteriorating    Direction = "deteriorating"
	Flat             Direction = "flat"
	InsufficientData Direction = "insufficient_data"
)

// Trend is the first-to-last movement of one ratio. Magnitude is the signed
// fractional change relative to the first defined value; it is zero when the
// direction is InsufficientData.
type Trend struct {
	Direction Direction `json:"direction"`
	Magnitude float64   `json:"magnitude"`
}

// Trends classifies every catalog ratio across the period series. A ratio
// needs at least two defined values; the change between the first and last of
// them is compared against threshold (e.g. 0.05 for +/-5%). Classification is
// polarity-aware: a falling days-sales-outstanding is improving.
func Trends(periods []normalize.CanonicalPeriod, threshold float64) map[string]Trend {
	trends := make(map[string]Trend, len(Catalog()))
	for _, def := range Catalog() {
		var defined []float64
		for _, p := range periods {
			if v := def.Compute(p); v.Defined {
				defined = append(defined, v.Num)
			}
		}
		trends[def.Name] = classify(defined, threshold, def.HigherIsBetter)
	}
	return trends
}

func classify(defined []float64, threshold float64, higherIsBetter bool) Trend {
	if len(defined) < 2 {
		return Trend{Direction: InsufficientData}
	}
	first, last := defined[0], defined[len(defined)-1]
	if first == 0 {
		// No meaningful percentage change from a zero base.
		return Trend{Direction: InsufficientData}
	}

	change := (last - first) / math.Abs(first)
	if math.Abs(change) <= threshold {
		return Trend{Direction: Flat, Magnitude: change}
	}

	rising := change > 0
	if rising == higherIsBetter {
		return Trend{Direction: Improving, Magnitude: change}
	}
	return Trend{Direction: Deteriorating, Magnitude: change}
}
