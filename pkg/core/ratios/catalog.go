// Package ratios computes the fixed catalog of financial ratios over
// canonical statement periods. Every ratio is a pure function of one period;
// a missing input or zero denominator yields an Undefined value, never an
// exception and never infinity.
package ratios

import (
	"equity_research/pkg/core/normalize"
)

// Category groups ratios by what they measure.
type Category string

const (
	Liquidity     Category = "liquidity"
	Efficiency    Category = "efficiency"
	Solvency      Category = "solvency"
	Profitability Category = "profitability"
)

// Value is a ratio outcome: either a finite number or explicitly undefined.
// Undefined is never coerced to zero.
type Value struct {
	Num     float64
	Defined bool
}

// Undefined marks a ratio that could not be computed.
var Undefined = Value{}

// Defined wraps a computed ratio value.
func Defined(v float64) Value {
	return Value{Num: v, Defined: true}
}

// Definition is one catalog entry. HigherIsBetter drives the trend
// classification polarity: DSO and the leverage ratios improve downward.
type Definition struct {
	Name           string
	Category       Category
	HigherIsBetter bool
	Compute        func(p normalize.CanonicalPeriod) Value
}

// Catalog returns the fixed ratio catalog in its stable output order.
func Catalog() []Definition {
	return []Definition{
		// Liquidity
		{Name: "current_ratio", Category: Liquidity, HigherIsBetter: true, Compute: currentRatio},
		{Name: "quick_ratio", Category: Liquidity, HigherIsBetter: true, Compute: quickRatio},
		{Name: "cash_ratio", Category: Liquidity, HigherIsBetter: true, Compute: cashRatio},

		// Efficiency
		{Name: "asset_turnover", Category: Efficiency, HigherIsBetter: true, Compute: assetTurnover},
		{Name: "inventory_turnover", Category: Efficiency, HigherIsBetter: true, Compute: inventoryTurnover},
		{Name: "receivables_turnover", Category: Efficiency, HigherIsBetter: true, Compute: receivablesTurnover},
		{Name: "days_sales_outstanding", Category: Efficiency, HigherIsBetter: false, Compute: daysSalesOutstanding},

		// Solvency / leverage
		{Name: "debt_to_equity", Category: Solvency, HigherIsBetter: false, Compute: debtToEquity},
		{Name: "debt_ratio", Category: Solvency, HigherIsBetter: false, Compute: debtRatio},
		{Name: "interest_coverage", Category: Solvency, HigherIsBetter: true, Compute: interestCoverage},
		{Name: "equity_multiplier", Category: Solvency, HigherIsBetter: false, Compute: equityMultiplier},

		// Profitability
		{Name: "gross_profit_margin", Category: Profitability, HigherIsBetter: true, Compute: grossProfitMargin},
		{Name: "operating_profit_margin", Category: Profitability, HigherIsBetter: true, Compute: operatingProfitMargin},
		{Name: "net_profit_margin", Category: Profitability, HigherIsBetter: true, Compute: netProfitMargin},
		{Name: "return_on_assets", Category: Profitability, HigherIsBetter: true, Compute: returnOnAssets},
		{Name: "return_on_equity", Category: Profitability, HigherIsBetter: true, Compute: returnOnEquity},
		{Name: "return_on_invested_capital", Category: Profitability, HigherIsBetter: true, Compute: returnOnInvestedCapital},
	}
}

// CalculateAll applies every catalog ratio to every period independently.
// The value slice for each ratio matches the period ordering of the input.
func CalculateAll(periods []normalize.CanonicalPeriod) map[string][]Value {
	results := make(map[string][]Value, len(Catalog()))
	for _, def := range Catalog() {
		values := make([]Value, len(periods))
		for i, p := range periods {
			values[i] = def.Compute(p)
		}
		results[def.Name] = values
	}
	return results
}
