package marketrisk

import (
	"math"

	"equity_research/pkg/models"
)

// ReturnMetrics summarizes one price series' own return behaviour,
// independent of any benchmark.
type ReturnMetrics struct {
	TotalReturn          float64 `json:"total_return"`
	MeanReturn           float64 `json:"mean_return"`
	AnnualizedReturn     float64 `json:"annualized_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	BestPeriod           float64 `json:"best_period"`
	WorstPeriod          float64 `json:"worst_period"`
	WinRate              float64 `json:"win_rate"`
	Observations         int     `json:"observations"`
}

// Metrics computes return statistics for a single price series.
func Metrics(prices models.PriceSeries, periodsPerYear float64) (ReturnMetrics, error) {
	if err := prices.Validate(); err != nil {
		return ReturnMetrics{}, err
	}
	returns := prices.Returns()
	if len(returns) < 2 {
		return ReturnMetrics{}, &models.InsufficientDataError{
			Required: 2,
			Got:      len(returns),
			Context:  "return metrics",
		}
	}

	best, worst := returns[0], returns[0]
	positive := 0
	for _, r := range returns {
		if r > best {
			best = r
		}
		if r < worst {
			worst = r
		}
		if r > 0 {
			positive++
		}
	}

	m := mean(returns)
	return ReturnMetrics{
		TotalReturn:          prices.Latest()/prices.Points[0].Close - 1,
		MeanReturn:           m,
		AnnualizedReturn:     math.Pow(1+m, periodsPerYear) - 1,
		AnnualizedVolatility: sampleStd(returns) * math.Sqrt(periodsPerYear),
		BestPeriod:           best,
		WorstPeriod:          worst,
		WinRate:              float64(positive) / float64(len(returns)),
		Observations:         len(returns),
	}, nil
}
