package models

import "time"

// Statement identifies which financial statement a raw line item came from.
type Statement string

const (
	IncomeStatement   Statement = "income_statement"
	BalanceSheet      Statement = "balance_sheet"
	CashFlowStatement Statement = "cash_flow"
)

// RawPeriod is one reporting period exactly as a data provider delivered it:
// provider-specific labels mapped to values, with nil meaning the provider
// reported the item but carried no number. Immutable once constructed.
type RawPeriod struct {
	EndDate  time.Time           `json:"end_date"`
	Income   map[string]*float64 `json:"income_statement"`
	Balance  map[string]*float64 `json:"balance_sheet"`
	CashFlow map[string]*float64 `json:"cash_flow"`
}

// Items returns the label map for the given statement.
func (p RawPeriod) Items(st Statement) map[string]*float64 {
	switch st {
	case IncomeStatement:
		return p.Income
	case BalanceSheet:
		return p.Balance
	case CashFlowStatement:
		return p.CashFlow
	}
	return nil
}

// StatementSeries is an ordered (oldest to newest) sequence of reporting
// periods for one entity in one currency. Periods need not be contiguous but
// must carry comparable end dates.
type StatementSeries struct {
	Entity   string      `json:"entity"`
	Currency string      `json:"currency"`
	Periods  []RawPeriod `json:"periods"`
}

// Validate enforces the series invariants: at least one period, every period
// dated, end dates strictly increasing.
func (s StatementSeries) Validate() error {
	if len(s.Periods) == 0 {
		return &InvalidInputError{Field: "statement_series", Reason: "series is empty"}
	}
	for i, p := range s.Periods {
		if p.EndDate.IsZero() {
			return &InvalidInputError{Field: "statement_series", Reason: "period is missing an end date"}
		}
		if i > 0 && !s.Periods[i-1].EndDate.Before(p.EndDate) {
			return &InvalidInputError{
				Field:  "statement_series",
				Reason: "period end dates must be strictly increasing at " + p.EndDate.Format("2006-01-02"),
			}
		}
	}
	return nil
}
