package valuation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equity_research/pkg/models"
)

func TestDividendSummaryQuarterly(t *testing.T) {
	var h models.DividendHistory
	// Eight quarterly payouts of 5, delivered out of order.
	start := time.Date(2022, 2, 15, 0, 0, 0, 0, time.UTC)
	for _, i := range []int{3, 0, 7, 1, 5, 2, 6, 4} {
		h.Events = append(h.Events, models.DividendEvent{
			Date:   start.AddDate(0, 3*i, 0),
			Amount: 5,
		})
	}

	m := DividendSummary(h, 200)
	assert.InDelta(t, 40, m.Total, 1e-12)
	assert.Equal(t, 8, m.Count)
	assert.InDelta(t, 5, m.Average, 1e-12)
	assert.InDelta(t, 5, m.Latest, 1e-12)
	assert.InDelta(t, 0.025, m.Yield, 1e-12)
	assert.Equal(t, start, m.FirstDate)
	assert.Equal(t, start.AddDate(0, 21, 0), m.LatestDate)
	assert.Equal(t, "Quarterly", m.PayoutFrequency)
}

func TestDividendSummaryAnnual(t *testing.T) {
	var h models.DividendHistory
	for year := 2020; year <= 2023; year++ {
		h.Events = append(h.Events, models.DividendEvent{
			Date:   time.Date(year, 6, 15, 0, 0, 0, 0, time.UTC),
			Amount: 10,
		})
	}
	m := DividendSummary(h, 0) // no price: no yield
	assert.Equal(t, "Annual", m.PayoutFrequency)
	assert.Zero(t, m.Yield)
}

func TestDividendSummaryEdges(t *testing.T) {
	none := DividendSummary(models.DividendHistory{}, 100)
	assert.Equal(t, "None", none.PayoutFrequency)
	assert.Zero(t, none.Count)

	single := DividendSummary(models.DividendHistory{Events: []models.DividendEvent{
		{Date: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), Amount: 10},
	}}, 100)
	require.Equal(t, 1, single.Count)
	assert.Equal(t, "Unknown", single.PayoutFrequency)
	assert.InDelta(t, 0.1, single.Yield, 1e-12)
}
