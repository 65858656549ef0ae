package valuation

import (
	"fmt"
	"math"

	"equity_research/pkg/core/normalize"
)

// DCFInput parameterizes a two-stage discounted cash flow valuation over
// historical canonical periods (ordered oldest to newest).
type DCFInput struct {
	Periods           []normalize.CanonicalPeriod
	DiscountRate      float64 // WACC for the firm variant, cost of equity for the equity variant
	TerminalGrowth    float64
	ForecastYears     int
	SharesOutstanding float64
	CurrentPrice      float64 // optional; <= 0 skips the price comparison
	GrowthFloor       float64
	GrowthCeiling     float64
}

// DCFResult is the complete outcome of one DCF evaluation. Like the dividend
// model, inapplicability is a structured outcome with a reason, never an
// error.
type DCFResult struct {
	Applicable        bool           `json:"applicable"`
	Reason            string         `json:"reason,omitempty"`
	Method            string         `json:"method"`
	HistoricalFlows   []float64      `json:"historical_flows,omitempty"`
	GrowthRate        float64        `json:"growth_rate"`
	ProjectedFlows    []float64      `json:"projected_flows,omitempty"`
	TerminalValue     float64        `json:"terminal_value"`
	PVProjected       float64        `json:"pv_projected"`
	PVTerminal        float64        `json:"pv_terminal"`
	EnterpriseValue   float64        `json:"enterprise_value,omitempty"`
	NetDebt           float64        `json:"net_debt,omitempty"`
	EquityValue       float64        `json:"equity_value"`
	FairValuePerShare *float64       `json:"fair_value_per_share"`
	UpsideDownside    *float64       `json:"upside_downside"`
	Recommendation    Recommendation `json:"recommendation,omitempty"`
}

// DiscountedCashFlowFirm values the firm from free cash flow: historical FCF
// growth (clamped to the same bounds as dividend growth), ForecastYears of
// projected flows, a Gordon terminal value, and a net-debt adjustment from
// the latest period's balance sheet to reach equity value.
func DiscountedCashFlowFirm(input DCFInput) DCFResult {
	result := runDCF(input, "FCF (free cash flow to firm)", FreeCashFlow)
	if !result.Applicable {
		return result
	}

	// Enterprise -> equity: subtract net debt from the latest period.
	latest := input.Periods[len(input.Periods)-1]
	debt, _ := latest.Get(normalize.TotalDebt)
	cash, _ := latest.Get(normalize.Cash)
	result.EnterpriseValue = result.EquityValue
	result.NetDebt = debt - cash
	result.EquityValue = result.EnterpriseValue - result.NetDebt

	finishPerShare(&result, input)
	return result
}

// DiscountedCashFlowEquity values equity directly from free cash flow to
// equity; no net-debt adjustment applies.
func DiscountedCashFlowEquity(input DCFInput) DCFResult {
	result := runDCF(input, "FCFE (free cash flow to equity)", FreeCashFlowToEquity)
	if !result.Applicable {
		return result
	}
	finishPerShare(&result, input)
	return result
}

// runDCF carries the shared projection and discounting. EquityValue holds
// the undiscounted-entity value (enterprise or equity, per the extractor).
func runDCF(input DCFInput, method string, extract func(normalize.CanonicalPeriod) (float64, bool)) DCFResult {
	result := DCFResult{Method: method}

	if input.ForecastYears < 1 {
		result.Reason = "forecast horizon must be at least one year"
		return result
	}
	if input.DiscountRate <= input.TerminalGrowth {
		result.Reason = fmt.Sprintf(
			"discount rate (%.2f%%) is not above terminal growth (%.2f%%)",
			input.DiscountRate*100, input.TerminalGrowth*100,
		)
		return result
	}

	var history []float64
	for _, p := range input.Periods {
		if flow, ok := extract(p); ok {
			history = append(history, flow)
		}
	}
	if len(history) < 2 {
		result.Reason = "insufficient cash flow history for projection"
		return result
	}
	first, latest := history[0], history[len(history)-1]
	if first <= 0 || latest <= 0 {
		result.Reason = "cash flow history is not positive throughout"
		return result
	}

	n := len(history) - 1
	growth := math.Pow(latest/first, 1/float64(n)) - 1
	growth = Clamp(growth, input.GrowthFloor, input.GrowthCeiling)

	var pvProjected float64
	projected := make([]float64, 0, input.ForecastYears)
	for year := 1; year <= input.ForecastYears; year++ {
		flow := latest * math.Pow(1+growth, float64(year))
		projected = append(projected, flow)
		pvProjected += flow / math.Pow(1+input.DiscountRate, float64(year))
	}

	terminalFlow := projected[len(projected)-1] * (1 + input.TerminalGrowth)
	terminalValue := terminalFlow / (input.DiscountRate - input.TerminalGrowth)
	pvTerminal := terminalValue / math.Pow(1+input.DiscountRate, float64(input.ForecastYears))

	result.Applicable = true
	result.HistoricalFlows = history
	result.GrowthRate = growth
	result.ProjectedFlows = projected
	result.TerminalValue = terminalValue
	result.PVProjected = pvProjected
	result.PVTerminal = pvTerminal
	result.EquityValue = pvProjected + pvTerminal
	return result
}

func finishPerShare(result *DCFResult, input DCFInput) {
	if input.SharesOutstanding <= 0 {
		return
	}
	perShare := result.EquityValue / input.SharesOutstanding
	result.FairValuePerShare = &perShare

	if input.CurrentPrice > 0 {
		upside := (perShare - input.CurrentPrice) / input.CurrentPrice
		result.UpsideDownside = &upside
		result.Recommendation = Recommend(upside)
	}
}
