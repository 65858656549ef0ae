package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equity_research/pkg/core/analysis"
	"equity_research/pkg/core/marketrisk"
	"equity_research/pkg/core/ratios"
	"equity_research/pkg/core/valuation"
)

func sampleReport() *analysis.Report {
	fair := 2146.55
	downside := -0.426
	ke := 0.1185
	return &analysis.Report{
		RunID:        "test-run",
		Entity:       "ACME",
		GeneratedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		CurrentPrice: 3739.94,
		Ratios: map[string][]ratios.Value{
			"current_ratio": {ratios.Defined(1.8), ratios.Defined(2.0)},
		},
		Trends: map[string]ratios.Trend{
			"current_ratio": {Direction: ratios.Improving, Magnitude: 0.11},
		},
		Beta: &marketrisk.BetaResult{
			Beta:           1.1,
			Interpretation: "Aggressive",
			Observations:   250,
		},
		CostOfEquity: &ke,
		DDM: &valuation.ValuationResult{
			Applicable:     true,
			FairValue:      &fair,
			D0:             68.93,
			D1:             74.70,
			GrowthRate:     0.0837,
			CurrentPrice:   3739.94,
			UpsideDownside: &downside,
			Recommendation: valuation.StrongSell,
		},
		Warnings: []string{"return metrics skipped: need at least 2 observations"},
	}
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(sampleReport())

	assert.Contains(t, md, "# Equity Analysis: ACME")
	assert.Contains(t, md, "| current_ratio |")
	assert.Contains(t, md, "2.000") // latest defined value, not the first
	assert.Contains(t, md, "improving")
	assert.Contains(t, md, "Beta: 1.100 (Aggressive)")
	assert.Contains(t, md, "Cost of equity (CAPM): 11.85%")
	assert.Contains(t, md, "Fair value: 2146.55")
	assert.Contains(t, md, "**Strong Sell**")
	assert.Contains(t, md, "## Warnings")
}

func TestMarkdownUndefinedRatio(t *testing.T) {
	r := sampleReport()
	r.Ratios["current_ratio"] = []ratios.Value{ratios.Undefined}
	md := Markdown(r)
	// An undefined ratio renders as n/a, never as a number.
	assert.Contains(t, md, "| current_ratio | liquidity | n/a |")
}

func TestMarkdownInapplicableDDM(t *testing.T) {
	r := sampleReport()
	r.DDM = &valuation.ValuationResult{Reason: "company pays no dividends"}
	md := Markdown(r)
	assert.Contains(t, md, "Not applicable: company pays no dividends")
}

func TestMarkdownFirmVariant(t *testing.T) {
	r := sampleReport()
	perShare := 1820.40
	r.WACC = &valuation.WACCResult{
		WACC:               0.102,
		WeightEquity:       0.6,
		WeightDebt:         0.4,
		CostOfEquity:       0.13,
		AfterTaxCostOfDebt: 0.06,
	}
	r.DCFFirm = &valuation.DCFResult{
		Applicable:        true,
		Method:            "FCF (free cash flow to firm)",
		GrowthRate:        0.08,
		EquityValue:       1820400,
		FairValuePerShare: &perShare,
	}
	md := Markdown(r)
	assert.Contains(t, md, "## Cost of Capital")
	assert.Contains(t, md, "WACC: 10.20%")
	assert.Contains(t, md, "## DCF Supplement (firm, at WACC)")
	assert.Contains(t, md, "Fair value per share: 1820.40")
}

func TestHTML(t *testing.T) {
	html, err := HTML(sampleReport())
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "ACME")
}
