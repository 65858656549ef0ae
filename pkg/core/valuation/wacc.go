package valuation

// WACCInput holds the capital-structure parameters for the cost of capital.
type WACCInput struct {
	CostOfEquity      float64 // Ke, typically from CAPM
	PreTaxCostOfDebt  float64 // Kd before the tax shield
	MarketValueEquity float64 // market capitalization
	MarketValueDebt   float64 // total debt at market value
	TaxRate           float64
}

// WACCResult holds the blended rate and its components.
type WACCResult struct {
	WACC               float64 `json:"wacc"`
	WeightEquity       float64 `json:"weight_equity"`
	WeightDebt         float64 `json:"weight_debt"`
	CostOfEquity       float64 `json:"cost_of_equity"`
	AfterTaxCostOfDebt float64 `json:"after_tax_cost_of_debt"`
}

// CalculateWACC computes the weighted average cost of capital:
// WACC = E/V * Ke + D/V * Kd * (1 - t). A degenerate capital structure
// (E + D = 0) falls back to the cost of equity with full equity weight.
func CalculateWACC(input WACCInput) WACCResult {
	totalValue := input.MarketValueEquity + input.MarketValueDebt
	if totalValue == 0 {
		return WACCResult{
			WACC:         input.CostOfEquity,
			WeightEquity: 1,
			CostOfEquity: input.CostOfEquity,
		}
	}

	we := input.MarketValueEquity / totalValue
	wd := input.MarketValueDebt / totalValue
	kd := input.PreTaxCostOfDebt * (1 - input.TaxRate)

	return WACCResult{
		WACC:               we*input.CostOfEquity + wd*kd,
		WeightEquity:       we,
		WeightDebt:         wd,
		CostOfEquity:       input.CostOfEquity,
		AfterTaxCostOfDebt: kd,
	}
}
