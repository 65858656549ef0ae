package valuation

import (
	"sort"
	"time"

	"equity_research/pkg/models"
)

// DividendMetrics summarizes a dividend history against the current price.
type DividendMetrics struct {
	Total           float64   `json:"total"`
	Count           int       `json:"count"`
	Average         float64   `json:"average"`
	Latest          float64   `json:"latest"`
	Yield           float64   `json:"yield"`
	FirstDate       time.Time `json:"first_date,omitempty"`
	LatestDate      time.Time `json:"latest_date,omitempty"`
	PayoutFrequency string    `json:"payout_frequency"`
}

// DividendSummary computes descriptive dividend metrics. The payout
// frequency is estimated from the average spacing between events: under 120
// days reads as quarterly, under 200 as semi-annual, otherwise annual.
func DividendSummary(history models.DividendHistory, currentPrice float64) DividendMetrics {
	if len(history.Events) == 0 {
		return DividendMetrics{PayoutFrequency: "None"}
	}

	events := make([]models.DividendEvent, len(history.Events))
	copy(events, history.Events)
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })

	var total float64
	for _, ev := range events {
		total += ev.Amount
	}
	latest := events[len(events)-1].Amount

	m := DividendMetrics{
		Total:           total,
		Count:           len(events),
		Average:         total / float64(len(events)),
		Latest:          latest,
		FirstDate:       events[0].Date,
		LatestDate:      events[len(events)-1].Date,
		PayoutFrequency: "Unknown",
	}
	if currentPrice > 0 {
		m.Yield = latest / currentPrice
	}

	if len(events) >= 2 {
		span := events[len(events)-1].Date.Sub(events[0].Date)
		avgDays := span.Hours() / 24 / float64(len(events)-1)
		switch {
		case avgDays < 120:
			m.PayoutFrequency = "Quarterly"
		case avgDays < 200:
			m.PayoutFrequency = "Semi-Annual"
		default:
			m.PayoutFrequency = "Annual"
		}
	}
	return m
}
