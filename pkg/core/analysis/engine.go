// Package analysis orchestrates the calculation engines into one report:
// normalization, ratios and trends, beta regression, market risk premium,
// CAPM cost of equity, dividend valuation, and the DCF supplement. Data flows
// one way through the engines; the orchestrator owns no state between runs.
package analysis

import (
	"fmt"
	"math"
	"time"

	"equity_research/pkg/config"
	"equity_research/pkg/core/marketrisk"
	"equity_research/pkg/core/normalize"
	"equity_research/pkg/core/ratios"
	"equity_research/pkg/core/valuation"
	"equity_research/pkg/models"

	"github.com/google/uuid"
	"github.com/phuslu/log"
)

// Input is everything one analysis run consumes, supplied by the upstream
// data collaborator. CurrentPrice and SharesOutstanding are optional:
// a zero CurrentPrice falls back to the latest asset close, and a zero
// SharesOutstanding disables the per-share DCF output.
type Input struct {
	Entity            string                 `json:"entity"`
	Statements        models.StatementSeries `json:"statements"`
	AssetPrices       models.PriceSeries     `json:"asset_prices"`
	BenchmarkPrices   models.PriceSeries     `json:"benchmark_prices"`
	Dividends         models.DividendHistory `json:"dividends"`
	CurrentPrice      float64                `json:"current_price,omitempty"`
	SharesOutstanding float64                `json:"shares_outstanding,omitempty"`
}

// Report is the complete output of one run. Sections that could not be
// computed are nil, with the reason recorded in Warnings; a partial report is
// still a valid report.
type Report struct {
	RunID       string    `json:"run_id"`
	Entity      string    `json:"entity"`
	GeneratedAt time.Time `json:"generated_at"`

	PeriodEnds []time.Time `json:"period_ends"`

	Ratios map[string][]ratios.Value `json:"ratios"`
	Trends map[string]ratios.Trend   `json:"trends"`

	Beta          *marketrisk.BetaResult    `json:"beta,omitempty"`
	MarketPremium *marketrisk.PremiumResult `json:"market_premium,omitempty"`
	AssetMetrics  *marketrisk.ReturnMetrics `json:"asset_metrics,omitempty"`
	CostOfEquity  *float64                  `json:"cost_of_equity,omitempty"`

	CurrentPrice float64                    `json:"current_price"`
	Dividends    valuation.DividendMetrics  `json:"dividends"`
	DDM          *valuation.ValuationResult `json:"ddm,omitempty"`
	DCF          *valuation.DCFResult       `json:"dcf,omitempty"`
	WACC         *valuation.WACCResult      `json:"wacc,omitempty"`
	DCFFirm      *valuation.DCFResult       `json:"dcf_firm,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Run executes the full analysis for one entity. It fails hard only on
// invalid input or invalid configuration; recoverable shortfalls (too few
// return pairs for regression, no dividends) degrade into warnings and nil
// report sections.
func Run(input Input, cfg config.Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := input.Statements.Validate(); err != nil {
		return nil, err
	}
	if err := input.AssetPrices.Validate(); err != nil {
		return nil, err
	}
	if err := input.BenchmarkPrices.Validate(); err != nil {
		return nil, err
	}
	if err := input.Dividends.Validate(); err != nil {
		return nil, err
	}

	currentPrice := input.CurrentPrice
	if currentPrice <= 0 {
		currentPrice = input.AssetPrices.Latest()
	}

	report := &Report{
		RunID:        uuid.NewString(),
		Entity:       input.Entity,
		GeneratedAt:  time.Now().UTC(),
		CurrentPrice: currentPrice,
	}

	// 1. Normalize statements and run the ratio catalog.
	normalizer, err := normalize.New()
	if err != nil {
		return nil, fmt.Errorf("failed to build normalizer: %w", err)
	}
	periods := normalizer.NormalizeSeries(input.Statements)
	for _, p := range periods {
		report.PeriodEnds = append(report.PeriodEnds, p.EndDate)
	}
	report.Ratios = ratios.CalculateAll(periods)
	report.Trends = ratios.Trends(periods, cfg.TrendThreshold)

	// 2. Market risk: alignment, beta, premium, CAPM.
	assetReturns, benchReturns, err := marketrisk.AlignReturns(
		input.AssetPrices, input.BenchmarkPrices, cfg.MinRegressionObservations)
	switch {
	case models.IsInsufficientData(err):
		report.warn("beta regression skipped: " + err.Error())
	case err != nil:
		return nil, err
	default:
		beta, betaErr := marketrisk.CalculateBeta(assetReturns, benchReturns, cfg.TradingPeriodsPerYear)
		if betaErr != nil {
			report.warn("beta regression failed: " + betaErr.Error())
		} else {
			report.Beta = &beta
			ke := marketrisk.CostOfEquity(beta.Beta, cfg.RiskFreeRate, cfg.ExpectedMarketReturn)
			report.CostOfEquity = &ke
		}
		if premium, premErr := marketrisk.MarketRiskPremium(benchReturns, cfg.RiskFreeRate, cfg.TradingPeriodsPerYear); premErr != nil {
			report.warn("market risk premium skipped: " + premErr.Error())
		} else {
			report.MarketPremium = &premium
		}
	}

	if metrics, metErr := marketrisk.Metrics(input.AssetPrices, cfg.TradingPeriodsPerYear); metErr != nil {
		report.warn("return metrics skipped: " + metErr.Error())
	} else {
		report.AssetMetrics = &metrics
	}

	// 3. Valuation: dividend summary, DDM, DCF (equity variant, discounted
	// at the CAPM cost of equity).
	report.Dividends = valuation.DividendSummary(input.Dividends, currentPrice)

	growthOpts := valuation.GrowthOptions{
		LookbackYears: cfg.DividendLookbackYears,
		DefaultRate:   cfg.DefaultDividendGrowth,
		Floor:         cfg.GrowthFloor,
		Ceiling:       cfg.GrowthCeiling,
	}
	if report.CostOfEquity == nil {
		report.warn("valuation skipped: cost of equity unavailable without beta")
	} else {
		ddm, ddmErr := valuation.DividendDiscountValue(input.Dividends, *report.CostOfEquity, currentPrice, growthOpts)
		if ddmErr != nil {
			return nil, ddmErr
		}
		report.DDM = &ddm

		dcfInput := valuation.DCFInput{
			Periods:           periods,
			DiscountRate:      *report.CostOfEquity,
			TerminalGrowth:    cfg.TerminalGrowthRate,
			ForecastYears:     cfg.ForecastYears,
			SharesOutstanding: input.SharesOutstanding,
			CurrentPrice:      currentPrice,
			GrowthFloor:       cfg.GrowthFloor,
			GrowthCeiling:     cfg.GrowthCeiling,
		}
		dcf := valuation.DiscountedCashFlowEquity(dcfInput)
		report.DCF = &dcf

		// Firm-variant supplement: blend the CAPM cost of equity with the
		// cost of debt implied by the latest balance sheet, then discount
		// free cash flow to the firm at that WACC. Needs a market
		// capitalization, so shares outstanding must be supplied.
		if input.SharesOutstanding > 0 {
			latest := periods[len(periods)-1]
			debt, _ := latest.Get(normalize.TotalDebt)
			preTaxKd := 0.0
			if ie, ok := latest.Get(normalize.InterestExpense); ok && debt > 0 {
				preTaxKd = math.Abs(ie) / debt
			}
			wacc := valuation.CalculateWACC(valuation.WACCInput{
				CostOfEquity:      *report.CostOfEquity,
				PreTaxCostOfDebt:  preTaxKd,
				MarketValueEquity: currentPrice * input.SharesOutstanding,
				MarketValueDebt:   debt,
				TaxRate:           cfg.TaxRate,
			})
			report.WACC = &wacc

			firmInput := dcfInput
			firmInput.DiscountRate = wacc.WACC
			firm := valuation.DiscountedCashFlowFirm(firmInput)
			report.DCFFirm = &firm
		}
	}

	log.Info().
		Str("component", "analysis").
		Str("run_id", report.RunID).
		Str("entity", report.Entity).
		Int("periods", len(periods)).
		Int("warnings", len(report.Warnings)).
		Msg("analysis run complete")
	return report, nil
}

func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// BatchResult pairs one entity with its report or its error.
type BatchResult struct {
	Entity string  `json:"entity"`
	Report *Report `json:"report,omitempty"`
	Err    error   `json:"-"`
}

// RunBatch analyzes many entities independently. Invalid input on one entity
// yields an error in its own slot and never blocks the others.
func RunBatch(inputs []Input, cfg config.Config) []BatchResult {
	results := make([]BatchResult, len(inputs))
	for i, input := range inputs {
		report, err := Run(input, cfg)
		results[i] = BatchResult{Entity: input.Entity, Report: report, Err: err}
	}
	return results
}
