package service

import (
	"fmt"
	"strings"

	"github.com/ledgerlab/finutil/internal/domain/entity"
)

// NoMatchingRecords is written instead of the totals section when nothing
// passed the filters.
const NoMatchingRecords = "No matching records found."

const (
	expenseTitle = "Monthly Expense Summary"
	pnlTitle     = "PROFIT/LOSS CALCULATOR RESULTS"
	ruleWidth    = 50
)

// Format renders a snapshot as the plain-text report of its mode.
func Format(s entity.Snapshot) string {
	if s.Mode == entity.ModeProfitLoss {
		return formatProfitLoss(s)
	}
	return formatExpenses(s)
}

func formatExpenses(s entity.Snapshot) string {
	var b strings.Builder
	b.WriteString(expenseTitle + "\n\n")

	if s.IsEmpty() {
		b.WriteString(NoMatchingRecords + "\n")
		return b.String()
	}

	for _, t := range s.Totals.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", t.Key, FormatAmount(t.Amount))
	}

	b.WriteString("\n\nAdvanced Analytics:\n")
	writeSummary(&b, s, "Total Spending")
	b.WriteString("Monthly Trends:\n")
	for _, m := range MonthlyTrend(s) {
		fmt.Fprintf(&b, "  %s: %s\n", m.Key, FormatAmount(m.Amount))
	}
	fmt.Fprintf(&b, "Predicted Next Month: %s (5%% increase)\n", FormatAmount(Prediction(s)))

	return b.String()
}

func formatProfitLoss(s entity.Snapshot) string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	b.WriteString(rule + "\n")
	b.WriteString("          " + pnlTitle + "\n")
	b.WriteString(rule + "\n\n")

	if s.IsEmpty() {
		b.WriteString(NoMatchingRecords + "\n")
		return b.String()
	}

	for _, t := range s.Totals.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", t.Key, FormatAmount(t.Amount))
	}
	b.WriteString("\n")
	writeSummary(&b, s, "Total Volume")

	sum := SummarizeProfitLoss(s)

	b.WriteString("\nREVENUE SUMMARY:\n")
	fmt.Fprintf(&b, "Total Revenue: %s\n", FormatAmount(sum.TotalRevenue))
	fmt.Fprintf(&b, "Number of Revenue Transactions: %d\n", len(sum.Revenues))
	if len(sum.TopRevenues) > 0 {
		b.WriteString("Top Revenue Sources:\n")
		for _, r := range sum.TopRevenues {
			fmt.Fprintf(&b, "  %s - %s (%s)\n", FormatAmount(r.Amount), r.Description, r.DateString())
		}
	}

	b.WriteString("\nEXPENSE SUMMARY:\n")
	fmt.Fprintf(&b, "Total Expenses: %s\n", FormatAmount(sum.TotalExpenses))
	fmt.Fprintf(&b, "Number of Expense Transactions: %d\n", len(sum.Expenses))
	if len(sum.TopExpenses) > 0 {
		b.WriteString("Top Expense Categories:\n")
		for _, e := range sum.TopExpenses {
			fmt.Fprintf(&b, "  %s - %s\n", FormatAmount(e.Amount), e.Description)
		}
	}

	b.WriteString("\nNET RESULT:\n")
	switch sum.Result {
	case entity.Profit:
		fmt.Fprintf(&b, "[%s] %s\n", sum.Result, FormatAmount(sum.Net))
		b.WriteString("Great job! You're in the green.\n")
	case entity.Loss:
		fmt.Fprintf(&b, "[%s] %s\n", sum.Result, FormatAmount(sum.Net.Abs()))
		b.WriteString("Consider reviewing expenses or increasing revenue.\n")
	default:
		fmt.Fprintf(&b, "[%s] %s\n", sum.Result, FormatAmount(sum.Net))
		b.WriteString("Balanced budget achieved.\n")
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// writeSummary escreve total, contagem e média.
func writeSummary(b *strings.Builder, s entity.Snapshot, totalLabel string) {
	fmt.Fprintf(b, "%s: %s\n", totalLabel, FormatAmount(s.GrandTotal))
	fmt.Fprintf(b, "Number of Transactions: %d\n", s.Count)
	if s.Count > 0 {
		fmt.Fprintf(b, "Average Transaction: %s\n", FormatAmount(Average(s)))
	}
}
