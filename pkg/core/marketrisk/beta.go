package marketrisk

import (
	"math"

	"equity_research/pkg/models"
)

// BetaResult describes the regression of asset returns on benchmark returns.
// Volatilities are annualized sample standard deviations.
type BetaResult struct {
	Beta                float64 `json:"beta"`
	Alpha               float64 `json:"alpha"`
	RSquared            float64 `json:"r_squared"`
	Correlation         float64 `json:"correlation"`
	AssetVolatility     float64 `json:"asset_volatility"`
	BenchmarkVolatility float64 `json:"benchmark_volatility"`
	Observations        int     `json:"observations"`
	Interpretation      string  `json:"interpretation"`
}

// CalculateBeta regresses asset returns on benchmark returns with ordinary
// least squares: beta is the slope, alpha the intercept. The two slices must
// be aligned (same length, same dates), normally via AlignReturns.
func CalculateBeta(assetReturns, benchmarkReturns []float64, periodsPerYear float64) (BetaResult, error) {
	n := len(assetReturns)
	if n != len(benchmarkReturns) {
		return BetaResult{}, &models.InvalidInputError{
			Field:  "returns",
			Reason: "asset and benchmark return series must have equal length",
		}
	}
	if n < 2 {
		return BetaResult{}, &models.InsufficientDataError{Required: 2, Got: n, Context: "beta regression"}
	}

	meanAsset := mean(assetReturns)
	meanBench := mean(benchmarkReturns)

	var covar, varBench, varAsset float64
	for i := 0; i < n; i++ {
		da := assetReturns[i] - meanAsset
		db := benchmarkReturns[i] - meanBench
		covar += da * db
		varBench += db * db
		varAsset += da * da
	}
	if varBench == 0 {
		return BetaResult{}, &models.InvalidInputError{
			Field:  "benchmark_returns",
			Reason: "benchmark returns have zero variance",
		}
	}

	beta := covar / varBench
	alpha := meanAsset - beta*meanBench

	correlation := 0.0
	if varAsset > 0 {
		correlation = covar / math.Sqrt(varBench*varAsset)
	}

	annualize := math.Sqrt(periodsPerYear)
	nf := float64(n - 1)
	return BetaResult{
		Beta:                beta,
		Alpha:               alpha,
		RSquared:            correlation * correlation,
		Correlation:         correlation,
		AssetVolatility:     math.Sqrt(varAsset/nf) * annualize,
		BenchmarkVolatility: math.Sqrt(varBench/nf) * annualize,
		Observations:        n,
		Interpretation:      InterpretBeta(beta),
	}, nil
}

// InterpretBeta labels a beta value relative to the benchmark. Descriptive
// only; nothing downstream branches on it.
func InterpretBeta(beta float64) string {
	switch {
	case beta > 1.2:
		return "Highly Aggressive"
	case beta > 1.0:
		return "Aggressive"
	case beta > 0.8:
		return "Moderately Aggressive"
	case beta > 0.5:
		return "Defensive"
	default:
		return "Highly Defensive"
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd is the n-1 sample standard deviation.
func sampleStd(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
