package ratios

import (
	"math"

	"equity_research/pkg/core/normalize"
)

// divide is the single division gate: an absent operand or a zero denominator
// yields Undefined.
func divide(num float64, numOK bool, den float64, denOK bool) Value {
	if !numOK || !denOK || den == 0 {
		return Undefined
	}
	return Defined(num / den)
}

// ===== Liquidity =====

func currentRatio(p normalize.CanonicalPeriod) Value {
	ca, caOK := p.Get(normalize.CurrentAssets)
	cl, clOK := p.Get(normalize.CurrentLiabilities)
	return divide(ca, caOK, cl, clOK)
}

func quickRatio(p normalize.CanonicalPeriod) Value {
	ca, caOK := p.Get(normalize.CurrentAssets)
	cl, clOK := p.Get(normalize.CurrentLiabilities)
	// Absent inventory counts as zero here: firms without inventory still
	// have a quick ratio. Current assets themselves must resolve.
	inv, _ := p.Get(normalize.Inventory)
	return divide(ca-inv, caOK, cl, clOK)
}

func cashRatio(p normalize.CanonicalPeriod) Value {
	cash, cashOK := p.Get(normalize.Cash)
	cl, clOK := p.Get(normalize.CurrentLiabilities)
	return divide(cash, cashOK, cl, clOK)
}

// ===== Efficiency =====

func assetTurnover(p normalize.CanonicalPeriod) Value {
	rev, revOK := p.Get(normalize.TotalRevenue)
	ta, taOK := p.Get(normalize.TotalAssets)
	return divide(rev, revOK, ta, taOK)
}

func inventoryTurnover(p normalize.CanonicalPeriod) Value {
	cogs, cogsOK := p.Get(normalize.CostOfRevenue)
	inv, invOK := p.Get(normalize.Inventory)
	return divide(cogs, cogsOK, inv, invOK)
}

func receivablesTurnover(p normalize.CanonicalPeriod) Value {
	rev, revOK := p.Get(normalize.TotalRevenue)
	recv, recvOK := p.Get(normalize.Receivables)
	return divide(rev, revOK, recv, recvOK)
}

func daysSalesOutstanding(p normalize.CanonicalPeriod) Value {
	rt := receivablesTurnover(p)
	if !rt.Defined || rt.Num == 0 {
		return Undefined
	}
	return Defined(365 / rt.Num)
}

// ===== Solvency =====

func debtToEquity(p normalize.CanonicalPeriod) Value {
	// total_debt already carries the long-term + short-term fallback from
	// the normalizer.
	debt, debtOK := p.Get(normalize.TotalDebt)
	eq, eqOK := p.Get(normalize.TotalEquity)
	return divide(debt, debtOK, eq, eqOK)
}

func debtRatio(p normalize.CanonicalPeriod) Value {
	tl, tlOK := p.Get(normalize.TotalLiabilities)
	ta, taOK := p.Get(normalize.TotalAssets)
	return divide(tl, tlOK, ta, taOK)
}

func interestCoverage(p normalize.CanonicalPeriod) Value {
	ebit, ebitOK := p.Get(normalize.EBIT)
	if !ebitOK {
		ebit, ebitOK = p.Get(normalize.OperatingIncome)
	}
	// Providers report interest expense with either sign.
	ie, ieOK := p.Get(normalize.InterestExpense)
	return divide(ebit, ebitOK, math.Abs(ie), ieOK)
}

func equityMultiplier(p normalize.CanonicalPeriod) Value {
	ta, taOK := p.Get(normalize.TotalAssets)
	eq, eqOK := p.Get(normalize.TotalEquity)
	return divide(ta, taOK, eq, eqOK)
}

// ===== Profitability =====

func grossProfitMargin(p normalize.CanonicalPeriod) Value {
	rev, revOK := p.Get(normalize.TotalRevenue)
	if cogs, ok := p.Get(normalize.CostOfRevenue); ok {
		return divide(rev-cogs, revOK, rev, revOK)
	}
	// Fall back to a directly reported gross profit.
	gp, gpOK := p.Get(normalize.GrossProfit)
	return divide(gp, gpOK, rev, revOK)
}

func operatingProfitMargin(p normalize.CanonicalPeriod) Value {
	oi, oiOK := p.Get(normalize.OperatingIncome)
	rev, revOK := p.Get(normalize.TotalRevenue)
	return divide(oi, oiOK, rev, revOK)
}

func netProfitMargin(p normalize.CanonicalPeriod) Value {
	ni, niOK := p.Get(normalize.NetIncome)
	rev, revOK := p.Get(normalize.TotalRevenue)
	return divide(ni, niOK, rev, revOK)
}

func returnOnAssets(p normalize.CanonicalPeriod) Value {
	ni, niOK := p.Get(normalize.NetIncome)
	ta, taOK := p.Get(normalize.TotalAssets)
	return divide(ni, niOK, ta, taOK)
}

func returnOnEquity(p normalize.CanonicalPeriod) Value {
	ni, niOK := p.Get(normalize.NetIncome)
	eq, eqOK := p.Get(normalize.TotalEquity)
	return divide(ni, niOK, eq, eqOK)
}

// returnOnInvestedCapital computes NOPAT / (equity + debt). The effective tax
// rate is inferred from net income vs EBIT when both resolve, otherwise a 25%
// statutory assumption is used.
func returnOnInvestedCapital(p normalize.CanonicalPeriod) Value {
	oi, oiOK := p.Get(normalize.OperatingIncome)
	if !oiOK {
		return Undefined
	}
	eq, eqOK := p.Get(normalize.TotalEquity)
	if !eqOK {
		return Undefined
	}

	taxRate := 0.25
	ni, niOK := p.Get(normalize.NetIncome)
	ebit, ebitOK := p.Get(normalize.EBIT)
	if !ebitOK {
		ebit, ebitOK = p.Get(normalize.OperatingIncome)
	}
	if niOK && ebitOK && ebit != 0 {
		taxRate = math.Min(math.Max(1-ni/ebit, 0), 1)
	}

	nopat := oi * (1 - taxRate)
	debt, _ := p.Get(normalize.TotalDebt) // absent debt treated as zero
	return divide(nopat, true, eq+debt, true)
}
