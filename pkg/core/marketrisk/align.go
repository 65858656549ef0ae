// Package marketrisk quantifies systematic risk: return alignment, beta via
// ordinary least squares, market risk premium statistics, and the CAPM cost
// of equity. All statistics are computed directly; the engines carry no
// numeric dependencies beyond the standard library.
package marketrisk

import (
	"time"

	"equity_research/pkg/models"
)

// joinKey is the UTC calendar date, so provider timestamp noise (time of
// day, zone representation) cannot break the join.
func joinKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// AlignReturns inner-joins the asset and benchmark price series on date,
// computes simple period returns over the joined prices, and returns the two
// paired return slices. The contract is exact: len(returns) equals the number
// of common trading dates minus one. Fewer than minObservations pairs is an
// InsufficientDataError.
func AlignReturns(asset, benchmark models.PriceSeries, minObservations int) (assetReturns, benchmarkReturns []float64, err error) {
	if err := asset.Validate(); err != nil {
		return nil, nil, err
	}
	if err := benchmark.Validate(); err != nil {
		return nil, nil, err
	}

	benchByDate := make(map[string]float64, len(benchmark.Points))
	for _, p := range benchmark.Points {
		benchByDate[joinKey(p.Date)] = p.Close
	}

	// Walk the asset series in order; dates are strictly increasing, so the
	// joined sequence stays chronological.
	var assetPrices, benchPrices []float64
	for _, p := range asset.Points {
		if bc, ok := benchByDate[joinKey(p.Date)]; ok {
			assetPrices = append(assetPrices, p.Close)
			benchPrices = append(benchPrices, bc)
		}
	}

	pairs := len(assetPrices) - 1
	if pairs < minObservations {
		if pairs < 0 {
			pairs = 0
		}
		return nil, nil, &models.InsufficientDataError{
			Required: minObservations,
			Got:      pairs,
			Context:  "return alignment",
		}
	}

	assetReturns = make([]float64, 0, pairs)
	benchmarkReturns = make([]float64, 0, pairs)
	for i := 1; i < len(assetPrices); i++ {
		assetReturns = append(assetReturns, assetPrices[i]/assetPrices[i-1]-1)
		benchmarkReturns = append(benchmarkReturns, benchPrices[i]/benchPrices[i-1]-1)
	}
	return assetReturns, benchmarkReturns, nil
}
