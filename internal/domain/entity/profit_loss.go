package entity

import "github.com/shopspring/decimal"

// NetResult classifies the net of a profit/loss run.
type NetResult int

const (
	BreakEven NetResult = iota
	Profit
	Loss
)

// String returns the label printed in the report.
func (n NetResult) String() string {
	switch n {
	case Profit:
		return "PROFIT"
	case Loss:
		return "LOSS"
	default:
		return "BREAK-EVEN"
	}
}

// DescriptionTotal groups expense amounts by description.
type DescriptionTotal struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// ProfitLossSummary holds the derived figures of a profit/loss snapshot.
type ProfitLossSummary struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal
	Result        NetResult
	Revenues      []Record
	Expenses      []Record
	TopRevenues   []Record
	TopExpenses   []DescriptionTotal
}
