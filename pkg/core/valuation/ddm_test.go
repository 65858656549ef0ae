package valuation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equity_research/pkg/models"
)

// geometricDividends builds annual events 2019..2023 growing at rate g with
// the 2023 total equal to d0, so the estimated growth comes out at g exactly.
func geometricDividends(d0, g float64) models.DividendHistory {
	var h models.DividendHistory
	base := d0 / math.Pow(1+g, 4)
	for i := 0; i <= 4; i++ {
		h.Events = append(h.Events, models.DividendEvent{
			Date:   time.Date(2019+i, 6, 15, 0, 0, 0, 0, time.UTC),
			Amount: base * math.Pow(1+g, float64(i)),
		})
	}
	return h
}

func TestDividendDiscountValueWorkedExample(t *testing.T) {
	// D0 = 68.93, g = 8.37%, r = 11.85%:
	// fair value = 68.93 * 1.0837 / (0.1185 - 0.0837) = 2146.55.
	// Against a price of 3739.94 that is -42.6%, a Strong Sell.
	history := geometricDividends(68.93, 0.0837)

	res, err := DividendDiscountValue(history, 0.1185, 3739.94, defaultGrowthOpts())
	require.NoError(t, err)
	require.True(t, res.Applicable)

	assert.InDelta(t, 68.93, res.D0, 1e-9)
	assert.InDelta(t, 0.0837, res.GrowthRate, 1e-9)
	require.NotNil(t, res.FairValue)
	assert.InDelta(t, 2146.55, *res.FairValue, 0.5)
	require.NotNil(t, res.UpsideDownside)
	assert.InDelta(t, -0.426, *res.UpsideDownside, 0.001)
	assert.Equal(t, StrongSell, res.Recommendation)
}

func TestDividendDiscountValueGrowthGate(t *testing.T) {
	// 19% growth is not below a 12% cost of equity: the model refuses
	// rather than producing a negative denominator.
	history := geometricDividends(10, 0.19)

	res, err := DividendDiscountValue(history, 0.12, 500, defaultGrowthOpts())
	require.NoError(t, err)
	assert.False(t, res.Applicable)
	assert.Contains(t, res.Reason, "cost of equity")
	assert.Nil(t, res.FairValue)
	assert.Nil(t, res.UpsideDownside)
	assert.Empty(t, res.Recommendation)
	// Diagnostics still populated up to the gate.
	assert.InDelta(t, 10, res.D0, 1e-9)
	assert.InDelta(t, 0.19, res.GrowthRate, 1e-9)
}

func TestDividendDiscountValueNoDividends(t *testing.T) {
	res, err := DividendDiscountValue(models.DividendHistory{}, 0.12, 500, defaultGrowthOpts())
	require.NoError(t, err)
	assert.False(t, res.Applicable)
	assert.Equal(t, "company pays no dividends", res.Reason)
	assert.Nil(t, res.FairValue)
}

func TestDividendDiscountValueZeroBase(t *testing.T) {
	// Events exist but the latest annual total is zero.
	h := annualDividends(map[int]float64{2022: 5, 2023: 0})
	res, err := DividendDiscountValue(h, 0.12, 500, defaultGrowthOpts())
	require.NoError(t, err)
	assert.False(t, res.Applicable)
	assert.Contains(t, res.Reason, "D0")
}

func TestDividendDiscountValueInvalidInput(t *testing.T) {
	h := geometricDividends(10, 0.05)
	_, err := DividendDiscountValue(h, 0.12, 0, defaultGrowthOpts())
	assert.True(t, models.IsInvalidInput(err))
	_, err = DividendDiscountValue(h, 0.12, -5, defaultGrowthOpts())
	assert.True(t, models.IsInvalidInput(err))

	bad := models.DividendHistory{Events: []models.DividendEvent{
		{Date: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), Amount: -1},
	}}
	_, err = DividendDiscountValue(bad, 0.12, 500, defaultGrowthOpts())
	assert.True(t, models.IsInvalidInput(err))
}

func TestRecommendBands(t *testing.T) {
	cases := []struct {
		upside float64
		want   Recommendation
	}{
		{0.35, StrongBuy},
		{0.21, StrongBuy},
		{0.20, Buy}, // boundaries lean toward Hold
		{0.15, Buy},
		{0.10, HoldUndervalued},
		{0.05, HoldUndervalued},
		{0.0, HoldOvervalued},
		{-0.05, HoldOvervalued},
		{-0.10, HoldOvervalued},
		{-0.15, Sell},
		{-0.20, Sell},
		{-0.21, StrongSell},
		{-0.426, StrongSell},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Recommend(tc.upside), "upside=%v", tc.upside)
	}
}
