package ratios

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equity_research/pkg/core/normalize"
)

var periodEnd = time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)

// fullPeriod carries every field the catalog touches, with round numbers so
// each expected ratio is checkable by hand.
func fullPeriod() normalize.CanonicalPeriod {
	return normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.TotalRevenue:       1000,
		normalize.CostOfRevenue:      600,
		normalize.OperatingIncome:    200,
		normalize.EBIT:               200,
		normalize.NetIncome:          150,
		normalize.InterestExpense:    -20,
		normalize.TotalAssets:        2000,
		normalize.CurrentAssets:      500,
		normalize.Cash:               100,
		normalize.Inventory:          150,
		normalize.Receivables:        200,
		normalize.TotalLiabilities:   1200,
		normalize.CurrentLiabilities: 250,
		normalize.TotalDebt:          600,
		normalize.TotalEquity:        800,
	})
}

func TestCatalogAgainstFullPeriod(t *testing.T) {
	p := fullPeriod()
	want := map[string]float64{
		"current_ratio":           2.0,       // 500 / 250
		"quick_ratio":             1.4,       // (500 - 150) / 250
		"cash_ratio":              0.4,       // 100 / 250
		"asset_turnover":          0.5,       // 1000 / 2000
		"inventory_turnover":      4.0,       // 600 / 150
		"receivables_turnover":    5.0,       // 1000 / 200
		"days_sales_outstanding":  73.0,      // 365 / 5
		"debt_to_equity":          0.75,      // 600 / 800
		"debt_ratio":              0.6,       // 1200 / 2000
		"interest_coverage":       10.0,      // 200 / |-20|
		"equity_multiplier":       2.5,       // 2000 / 800
		"gross_profit_margin":     0.4,       // (1000 - 600) / 1000
		"operating_profit_margin": 0.2,       // 200 / 1000
		"net_profit_margin":       0.15,      // 150 / 1000
		"return_on_assets":        0.075,     // 150 / 2000
		"return_on_equity":        0.1875,    // 150 / 800
		"return_on_invested_capital": 0.10714285714,
		// ROIC: tax = 1 - 150/200 = 0.25, NOPAT = 200*0.75 = 150,
		// capital = 800 + 600 = 1400, 150/1400.
	}

	for _, def := range Catalog() {
		got := def.Compute(p)
		expected, known := want[def.Name]
		require.Truef(t, known, "catalog entry %s not covered", def.Name)
		require.Truef(t, got.Defined, "%s unexpectedly undefined", def.Name)
		assert.InDeltaf(t, expected, got.Num, 1e-9, "ratio %s", def.Name)
	}
	assert.Len(t, Catalog(), 17)
}

func TestUndefinedNotZero(t *testing.T) {
	// Positive current liabilities but no current assets: the ratio must be
	// undefined, not zero.
	p := normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.CurrentLiabilities: 250,
	})
	v := currentRatio(p)
	assert.False(t, v.Defined)
	assert.NotEqual(t, Defined(0), v)
}

func TestZeroDenominatorUndefined(t *testing.T) {
	p := normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.CurrentAssets:      500,
		normalize.CurrentLiabilities: 0,
	})
	assert.False(t, currentRatio(p).Defined)

	// Negative denominators still divide: negative equity produces a negative
	// debt-to-equity, it does not vanish.
	neg := normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.TotalDebt:   600,
		normalize.TotalEquity: -200,
	})
	v := debtToEquity(neg)
	require.True(t, v.Defined)
	assert.InDelta(t, -3.0, v.Num, 1e-12)
}

func TestQuickRatioAbsentInventory(t *testing.T) {
	// A services firm with no inventory line still gets a quick ratio equal
	// to its current ratio.
	p := normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.CurrentAssets:      500,
		normalize.CurrentLiabilities: 250,
	})
	v := quickRatio(p)
	require.True(t, v.Defined)
	assert.InDelta(t, 2.0, v.Num, 1e-12)
}

func TestInterestCoverageFallsBackToOperatingIncome(t *testing.T) {
	p := normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.OperatingIncome: 300,
		normalize.InterestExpense: 30,
	})
	v := interestCoverage(p)
	require.True(t, v.Defined)
	assert.InDelta(t, 10.0, v.Num, 1e-12)
}

func TestGrossMarginPrefersRevenueMinusCOGS(t *testing.T) {
	p := normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.TotalRevenue:  1000,
		normalize.CostOfRevenue: 600,
		normalize.GrossProfit:   999, // inconsistent reported figure, ignored
	})
	v := grossProfitMargin(p)
	require.True(t, v.Defined)
	assert.InDelta(t, 0.4, v.Num, 1e-12)

	reportedOnly := normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.TotalRevenue: 1000,
		normalize.GrossProfit:  350,
	})
	v = grossProfitMargin(reportedOnly)
	require.True(t, v.Defined)
	assert.InDelta(t, 0.35, v.Num, 1e-12)
}

func TestROICWithoutNetIncomeUsesStatutoryTax(t *testing.T) {
	p := normalize.FromValues(periodEnd, map[normalize.Field]float64{
		normalize.OperatingIncome: 200,
		normalize.TotalEquity:     800,
	})
	v := returnOnInvestedCapital(p)
	require.True(t, v.Defined)
	// NOPAT = 200 * (1 - 0.25) = 150; no debt resolved, capital = 800.
	assert.InDelta(t, 0.1875, v.Num, 1e-12)
}

func TestCalculateAllPeriodAlignment(t *testing.T) {
	sparse := normalize.FromValues(periodEnd.AddDate(-1, 0, 0), map[normalize.Field]float64{
		normalize.TotalRevenue: 900,
		normalize.TotalAssets:  1800,
	})
	all := CalculateAll([]normalize.CanonicalPeriod{sparse, fullPeriod()})

	at := all["asset_turnover"]
	require.Len(t, at, 2)
	assert.InDelta(t, 0.5, at[0].Num, 1e-12)
	assert.InDelta(t, 0.5, at[1].Num, 1e-12)

	// Ratios the sparse period cannot support stay undefined in slot 0 while
	// defined in slot 1.
	cr := all["current_ratio"]
	require.Len(t, cr, 2)
	assert.False(t, cr[0].Defined)
	assert.True(t, cr[1].Defined)
}
