package service

import (
	"sort"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TopN is the size of the profit/loss rankings.
const TopN = 3

var growthFactor = decimal.RequireFromString("1.05")

// FormatAmount renders an amount as currency rounded to two decimals.
func FormatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Average returns GrandTotal / Count, or zero for an empty snapshot.
func Average(s entity.Snapshot) decimal.Decimal {
	if s.Count == 0 {
		return decimal.Zero
	}
	return s.GrandTotal.Div(decimal.NewFromInt(int64(s.Count)))
}

// Prediction is the naive next-month projection: the grand total plus 5%.
func Prediction(s entity.Snapshot) decimal.Decimal {
	return s.GrandTotal.Mul(growthFactor)
}

// MonthlyTrend returns the period totals sorted by month key.
func MonthlyTrend(s entity.Snapshot) []entity.KeyTotal {
	trend := s.Periods.Entries()
	sort.SliceStable(trend, func(i, j int) bool { return trend[i].Key < trend[j].Key })
	return trend
}

// SummarizeProfitLoss derives revenue/expense totals, rankings and the net
// result from a profit/loss snapshot.
func SummarizeProfitLoss(s entity.Snapshot) entity.ProfitLossSummary {
	sum := entity.ProfitLossSummary{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, r := range s.Records {
		switch r.Key {
		case entity.TypeRevenue:
			sum.Revenues = append(sum.Revenues, r)
			sum.TotalRevenue = sum.TotalRevenue.Add(r.Amount)
		case entity.TypeExpense:
			sum.Expenses = append(sum.Expenses, r)
			sum.TotalExpenses = sum.TotalExpenses.Add(r.Amount)
		}
	}

	sum.Net = sum.TotalRevenue.Sub(sum.TotalExpenses)
	switch sum.Net.Sign() {
	case 1:
		sum.Result = entity.Profit
	case -1:
		sum.Result = entity.Loss
	default:
		sum.Result = entity.BreakEven
	}

	// Ordenação estável: empates mantêm a ordem de entrada.
	top := make([]entity.Record, len(sum.Revenues))
	copy(top, sum.Revenues)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Amount.GreaterThan(top[j].Amount) })
	if len(top) > TopN {
		top = top[:TopN]
	}
	sum.TopRevenues = top

	byDesc := entity.NewOrderedTotals()
	for _, r := range sum.Expenses {
		byDesc.Add(r.Description, r.Amount)
	}
	grouped := byDesc.Entries()
	sort.SliceStable(grouped, func(i, j int) bool { return grouped[i].Amount.GreaterThan(grouped[j].Amount) })
	if len(grouped) > TopN {
		grouped = grouped[:TopN]
	}
	for _, g := range grouped {
		sum.TopExpenses = append(sum.TopExpenses, entity.DescriptionTotal{Description: g.Key, Amount: g.Amount})
	}

	return sum
}
