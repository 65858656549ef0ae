// Package models defines the immutable data entities shared by the
// calculation engines: price and return series, financial statement periods,
// and dividend histories. Entities are built fresh per analysis run from
// caller-supplied data; nothing in this package mutates after validation.
package models

import (
	"sort"
	"time"
)

// PricePoint is one (date, closing price) observation.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is a time-ordered sequence of closing prices for one
// instrument, either an equity or a benchmark index.
// Invariant: dates strictly increasing, prices strictly positive.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}

// Validate enforces the series invariants. It returns an InvalidInputError
// on an empty series, a non-positive price, or a date that does not strictly
// increase.
func (s PriceSeries) Validate() error {
	if len(s.Points) == 0 {
		return &InvalidInputError{Field: "price_series", Reason: "series is empty"}
	}
	for i, p := range s.Points {
		if p.Close <= 0 {
			return &InvalidInputError{
				Field:  "price_series",
				Reason: "price must be strictly positive at " + p.Date.Format("2006-01-02"),
			}
		}
		if i > 0 && !s.Points[i-1].Date.Before(p.Date) {
			return &InvalidInputError{
				Field:  "price_series",
				Reason: "dates must be strictly increasing at " + p.Date.Format("2006-01-02"),
			}
		}
	}
	return nil
}

// Returns derives the simple period-over-period return series: one element
// shorter than the price series. The receiver is not modified.
func (s PriceSeries) Returns() []float64 {
	if len(s.Points) < 2 {
		return nil
	}
	rets := make([]float64, 0, len(s.Points)-1)
	for i := 1; i < len(s.Points); i++ {
		rets = append(rets, s.Points[i].Close/s.Points[i-1].Close-1)
	}
	return rets
}

// Latest returns the most recent closing price. The series must be non-empty.
func (s PriceSeries) Latest() float64 {
	return s.Points[len(s.Points)-1].Close
}

// DividendEvent is one cash dividend payment. Amount >= 0.
type DividendEvent struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// DividendHistory is an unordered, append-only collection of dividend events
// for one entity, sourced once per analysis run.
type DividendHistory struct {
	Symbol string          `json:"symbol"`
	Events []DividendEvent `json:"events"`
}

// Validate rejects negative dividend amounts.
func (h DividendHistory) Validate() error {
	for _, ev := range h.Events {
		if ev.Amount < 0 {
			return &InvalidInputError{
				Field:  "dividend_history",
				Reason: "dividend amount must be >= 0 at " + ev.Date.Format("2006-01-02"),
			}
		}
	}
	return nil
}

// AnnualTotals aggregates events into calendar-year totals, returned with the
// years sorted ascending. Years with no events are simply not present.
func (h DividendHistory) AnnualTotals() ([]int, map[int]float64) {
	totals := make(map[int]float64)
	for _, ev := range h.Events {
		totals[ev.Date.Year()] += ev.Amount
	}
	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, totals
}
