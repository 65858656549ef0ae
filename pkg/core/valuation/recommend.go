package valuation

// Recommendation is the categorical outcome of a fair-value comparison.
type Recommendation string

const (
	StrongBuy       Recommendation = "Strong Buy"
	Buy             Recommendation = "Buy"
	HoldUndervalued Recommendation = "Hold (undervalued)"
	HoldOvervalued  Recommendation = "Hold (overvalued)"
	Sell            Recommendation = "Sell"
	StrongSell      Recommendation = "Strong Sell"
)

// Recommend maps an upside/downside fraction onto the recommendation bands.
// The bands partition the whole real line; every boundary belongs to the
// band closer to Hold, so +20% is a Buy, -10% is a Hold, -20% is a Sell,
// and exactly 0 counts as Hold (overvalued).
func Recommend(upsideDownside float64) Recommendation {
	u := upsideDownside
	switch {
	case u > 0.20:
		return StrongBuy
	case u > 0.10:
		return Buy
	case u > 0:
		return HoldUndervalued
	case u >= -0.10:
		return HoldOvervalued
	case u >= -0.20:
		return Sell
	default:
		return StrongSell
	}
}
