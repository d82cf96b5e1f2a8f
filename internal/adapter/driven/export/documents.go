package export

import (
	"time"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/domain/service"
	"github.com/shopspring/decimal"
)

type amountEntry struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}

type expenseDocument struct {
	RunID           string        `json:"run_id"`
	GeneratedAt     string        `json:"generated_at"`
	Mode            string        `json:"mode"`
	Categories      []amountEntry `json:"categories"`
	Monthly         []amountEntry `json:"monthly"`
	Count           int           `json:"count"`
	GrandTotal      float64       `json:"grand_total"`
	Average         float64       `json:"average"`
	Prediction      float64       `json:"prediction"`
	UndatedExcluded int           `json:"undated_excluded,omitempty"`
}

type transactionEntry struct {
	Date        string  `json:"date,omitempty"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type profitLossDocument struct {
	RunID         string             `json:"run_id"`
	GeneratedAt   string             `json:"generated_at"`
	Revenues      []transactionEntry `json:"revenues"`
	Expenses      []transactionEntry `json:"expenses"`
	TotalRevenue  float64            `json:"total_revenue"`
	TotalExpenses float64            `json:"total_expenses"`
	NetProfit     float64            `json:"net_profit"`
	Result        string             `json:"result"`
}

func (r *ExportRepositoryImpl) expenseDocument(s entity.Snapshot) expenseDocument {
	return expenseDocument{
		RunID:           r.newID(),
		GeneratedAt:     r.now().UTC().Format(time.RFC3339),
		Mode:            s.Mode.String(),
		Categories:      amountEntries(s.Totals.Entries()),
		Monthly:         amountEntries(service.MonthlyTrend(s)),
		Count:           s.Count,
		GrandTotal:      money(s.GrandTotal),
		Average:         money(service.Average(s)),
		Prediction:      money(service.Prediction(s)),
		UndatedExcluded: s.UndatedExcluded,
	}
}

func (r *ExportRepositoryImpl) profitLossDocument(s entity.Snapshot) profitLossDocument {
	sum := service.SummarizeProfitLoss(s)
	return profitLossDocument{
		RunID:         r.newID(),
		GeneratedAt:   r.now().UTC().Format(time.RFC3339),
		Revenues:      transactionEntries(sum.Revenues),
		Expenses:      transactionEntries(sum.Expenses),
		TotalRevenue:  money(sum.TotalRevenue),
		TotalExpenses: money(sum.TotalExpenses),
		NetProfit:     money(sum.Net),
		Result:        sum.Result.String(),
	}
}

func amountEntries(entries []entity.KeyTotal) []amountEntry {
	out := make([]amountEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, amountEntry{Key: e.Key, Amount: money(e.Amount)})
	}
	return out
}

func transactionEntries(records []entity.Record) []transactionEntry {
	out := make([]transactionEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, transactionEntry{
			Date:        rec.DateString(),
			Type:        rec.Key,
			Amount:      money(rec.Amount),
			Description: rec.Description,
		})
	}
	return out
}

// money arredonda para centavos antes de converter para float64.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
