package valuation

import (
	"fmt"

	"equity_research/pkg/models"
)

// ValuationResult is the complete outcome of one dividend-discount
// evaluation. Every field is produced by the same call: when the model is
// inapplicable, Applicable is false, Reason explains why, and FairValue,
// UpsideDownside and Recommendation stay empty.
type ValuationResult struct {
	Applicable     bool           `json:"applicable"`
	Reason         string         `json:"reason,omitempty"`
	FairValue      *float64       `json:"fair_value"`
	GrowthRate     float64        `json:"growth_rate"`
	CostOfEquity   float64        `json:"cost_of_equity"`
	D0             float64        `json:"d0"`
	D1             float64        `json:"d1"`
	CurrentPrice   float64        `json:"current_price"`
	UpsideDownside *float64       `json:"upside_downside"`
	Recommendation Recommendation `json:"recommendation,omitempty"`
	Growth         GrowthEstimate `json:"growth"`
}

// DividendDiscountValue prices a constant-growth dividend claim (Gordon
// model): fair value = D1 / (r - g), with D0 the most recent annual dividend
// total and D1 = D0 * (1 + g). Model inapplicability (no positive D0, or
// g >= r) is a result, not an error; the division by r - g only happens after
// the gate has proven it positive. The only hard failure is invalid input:
// a non-positive current price or a malformed dividend history.
func DividendDiscountValue(history models.DividendHistory, costOfEquity, currentPrice float64, opts GrowthOptions) (ValuationResult, error) {
	if currentPrice <= 0 {
		return ValuationResult{}, &models.InvalidInputError{
			Field:  "current_price",
			Reason: "price must be strictly positive",
		}
	}
	if err := history.Validate(); err != nil {
		return ValuationResult{}, err
	}

	result := ValuationResult{
		CostOfEquity: costOfEquity,
		CurrentPrice: currentPrice,
	}

	years, totals := history.AnnualTotals()
	if len(years) == 0 {
		result.Reason = "company pays no dividends"
		return result, nil
	}
	d0 := totals[years[len(years)-1]]
	result.D0 = d0
	if d0 <= 0 {
		result.Reason = "no positive dividend base (D0)"
		return result, nil
	}

	growth := DividendGrowthRate(history, opts)
	result.Growth = growth
	result.GrowthRate = growth.Rate
	result.D1 = d0 * (1 + growth.Rate)

	if growth.Rate >= costOfEquity {
		result.Reason = fmt.Sprintf(
			"growth rate (%.2f%%) is not below cost of equity (%.2f%%)",
			growth.Rate*100, costOfEquity*100,
		)
		return result, nil
	}

	fairValue := result.D1 / (costOfEquity - growth.Rate)
	upside := (fairValue - currentPrice) / currentPrice

	result.Applicable = true
	result.FairValue = &fairValue
	result.UpsideDownside = &upside
	result.Recommendation = Recommend(upside)
	return result, nil
}
