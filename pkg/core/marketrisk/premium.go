package marketrisk

import (
	"math"

	"equity_research/pkg/models"
)

// PremiumResult describes the benchmark's historical excess return over the
// risk-free rate.
type PremiumResult struct {
	AnnualizedReturn float64 `json:"annualized_return"`
	Volatility       float64 `json:"volatility"`
	RiskFreeRate     float64 `json:"risk_free_rate"`
	Premium          float64 `json:"premium"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	Observations     int     `json:"observations"`
}

// MarketRiskPremium annualizes the benchmark's mean return, subtracts the
// risk-free rate, and reports volatility and the Sharpe ratio alongside.
func MarketRiskPremium(benchmarkReturns []float64, riskFreeRate, periodsPerYear float64) (PremiumResult, error) {
	if len(benchmarkReturns) < 2 {
		return PremiumResult{}, &models.InsufficientDataError{
			Required: 2,
			Got:      len(benchmarkReturns),
			Context:  "market risk premium",
		}
	}

	annualReturn := math.Pow(1+mean(benchmarkReturns), periodsPerYear) - 1
	volatility := sampleStd(benchmarkReturns) * math.Sqrt(periodsPerYear)

	sharpe := 0.0
	if volatility != 0 {
		sharpe = (annualReturn - riskFreeRate) / volatility
	}

	return PremiumResult{
		AnnualizedReturn: annualReturn,
		Volatility:       volatility,
		RiskFreeRate:     riskFreeRate,
		Premium:          annualReturn - riskFreeRate,
		SharpeRatio:      sharpe,
		Observations:     len(benchmarkReturns),
	}, nil
}

// CostOfEquity is the CAPM required return: Rf + beta * (Rm - Rf).
// Pure arithmetic; no bounds are applied here.
func CostOfEquity(beta, riskFreeRate, expectedMarketReturn float64) float64 {
	return riskFreeRate + beta*(expectedMarketReturn-riskFreeRate)
}
