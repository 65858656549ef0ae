package valuation

import (
	"equity_research/pkg/core/normalize"
)

// FreeCashFlow computes free cash flow to the firm for one period:
// operating cash flow less capital expenditures. Providers report capex with
// either sign; a negative value is an outflow already.
// Returns false when either input is absent.
func FreeCashFlow(p normalize.CanonicalPeriod) (float64, bool) {
	ocf, ocfOK := p.Get(normalize.OperatingCashFlow)
	capex, capexOK := p.Get(normalize.CapitalExpenditure)
	if !ocfOK || !capexOK {
		return 0, false
	}
	if capex < 0 {
		return ocf + capex, true
	}
	return ocf - capex, true
}

// FreeCashFlowToEquity adds net borrowing to free cash flow: debt issuance
// plus debt repayment as reported (repayments normally carry a negative
// sign). Missing issuance or repayment counts as zero; missing operating
// cash flow or capex makes the result absent.
func FreeCashFlowToEquity(p normalize.CanonicalPeriod) (float64, bool) {
	fcf, ok := FreeCashFlow(p)
	if !ok {
		return 0, false
	}
	issuance, _ := p.Get(normalize.DebtIssuance)
	repayment, _ := p.Get(normalize.DebtRepayment)
	return fcf + issuance + repayment, true
}
