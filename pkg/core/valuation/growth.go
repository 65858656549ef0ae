// Package valuation estimates intrinsic value from dividend history and free
// cash flow: historical growth with explicit safety bounds, the constant
// growth dividend model with an applicability gate, a two-stage DCF, and the
// buy/hold/sell recommendation banding.
package valuation

import (
	"fmt"
	"math"

	"equity_research/pkg/models"
)

// GrowthOptions bounds the historical growth estimation.
type GrowthOptions struct {
	LookbackYears int     // annual totals considered, most recent first
	DefaultRate   float64 // used when history cannot support an estimate
	Floor         float64 // clamp lower bound, e.g. -0.10
	Ceiling       float64 // clamp upper bound, e.g. +0.20
}

// GrowthEstimate is the outcome of historical dividend growth estimation.
// Rate is always inside [Floor, Ceiling]; RawCAGR preserves the unclamped
// value for diagnostics. FirstYear/LastYear expose the window actually used,
// so a caller can spot a partial trailing year feeding the estimate.
type GrowthEstimate struct {
	Rate      float64 `json:"rate"`
	RawCAGR   float64 `json:"raw_cagr"`
	Clamped   bool    `json:"clamped"`
	Fallback  bool    `json:"fallback"`
	Reason    string  `json:"reason,omitempty"`
	FirstYear int     `json:"first_year,omitempty"`
	LastYear  int     `json:"last_year,omitempty"`
	Intervals int     `json:"intervals,omitempty"`
}

// DividendGrowthRate aggregates dividend events into calendar-year totals,
// selects up to LookbackYears of the most recent totals, and computes the
// CAGR over the window's year span: (D_last / D_first)^(1/n) - 1 with
// n = lastYear - firstYear. Sparse histories are therefore priced over their
// true span, not the count of totals. Fewer than two annual totals, or a zero
// earliest total, falls back to DefaultRate. The result is clamped to
// [Floor, Ceiling].
//
// Known limitation: a partial most-recent year is treated as a valid total
// and can distort the estimate; the clamp bounds the damage and the window
// years are reported so callers can pre-filter.
func DividendGrowthRate(history models.DividendHistory, opts GrowthOptions) GrowthEstimate {
	years, totals := history.AnnualTotals()
	if len(years) < 2 {
		return GrowthEstimate{
			Rate:     Clamp(opts.DefaultRate, opts.Floor, opts.Ceiling),
			Fallback: true,
			Reason:   "fewer than two years of dividend history",
		}
	}

	if opts.LookbackYears >= 2 && len(years) > opts.LookbackYears {
		years = years[len(years)-opts.LookbackYears:]
	}
	firstYear, lastYear := years[0], years[len(years)-1]
	dFirst, dLast := totals[firstYear], totals[lastYear]
	n := lastYear - firstYear

	if dFirst == 0 {
		return GrowthEstimate{
			Rate:      Clamp(opts.DefaultRate, opts.Floor, opts.Ceiling),
			Fallback:  true,
			Reason:    fmt.Sprintf("earliest annual dividend total (%d) is zero", firstYear),
			FirstYear: firstYear,
			LastYear:  lastYear,
			Intervals: n,
		}
	}

	cagr := math.Pow(dLast/dFirst, 1/float64(n)) - 1
	clamped := Clamp(cagr, opts.Floor, opts.Ceiling)
	return GrowthEstimate{
		Rate:      clamped,
		RawCAGR:   cagr,
		Clamped:   clamped != cagr,
		FirstYear: firstYear,
		LastYear:  lastYear,
		Intervals: n,
	}
}

// Clamp bounds v to the closed interval [floor, ceiling]. Idempotent.
func Clamp(v, floor, ceiling float64) float64 {
	if v < floor {
		return floor
	}
	if v > ceiling {
		return ceiling
	}
	return v
}
