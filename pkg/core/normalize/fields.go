// Package normalize maps heterogeneous provider statement labels onto a fixed
// canonical field vocabulary. Providers name the same concept differently
// ("Total Revenue" vs "Net Sales", "Stockholders Equity" vs "Total Equity");
// resolution happens once per period here so the calculation layers never see
// a raw label.
package normalize

// Field is a canonical financial-statement line-item name.
type Field string

// Income statement fields.
const (
	TotalRevenue    Field = "total_revenue"
	CostOfRevenue   Field = "cost_of_revenue"
	GrossProfit     Field = "gross_profit"
	OperatingIncome Field = "operating_income"
	EBIT            Field = "ebit"
	NetIncome       Field = "net_income"
	InterestExpense Field = "interest_expense"
)

// Balance sheet fields.
const (
	TotalAssets        Field = "total_assets"
	CurrentAssets      Field = "current_assets"
	Cash               Field = "cash"
	Inventory          Field = "inventory"
	Receivables        Field = "receivables"
	TotalLiabilities   Field = "total_liabilities"
	CurrentLiabilities Field = "current_liabilities"
	TotalDebt          Field = "total_debt"
	LongTermDebt       Field = "long_term_debt"
	ShortTermDebt      Field = "short_term_debt"
	TotalEquity        Field = "total_equity"
)

// Cash flow fields.
const (
	OperatingCashFlow  Field = "operating_cash_flow"
	CapitalExpenditure Field = "capital_expenditure"
	DebtIssuance       Field = "debt_issuance"
	DebtRepayment      Field = "debt_repayment"
)

// AllFields lists the complete canonical vocabulary in a stable order.
func AllFields() []Field {
	return []Field{
		TotalRevenue, CostOfRevenue, GrossProfit, OperatingIncome, EBIT,
		NetIncome, InterestExpense,
		TotalAssets, CurrentAssets, Cash, Inventory, Receivables,
		TotalLiabilities, CurrentLiabilities, TotalDebt, LongTermDebt,
		ShortTermDebt, TotalEquity,
		OperatingCashFlow, CapitalExpenditure, DebtIssuance, DebtRepayment,
	}
}
