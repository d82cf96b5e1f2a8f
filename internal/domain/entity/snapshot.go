package entity

import "github.com/shopspring/decimal"

// Snapshot is the result of folding records under a set of filters.
// It must be treated as read-only once returned by the aggregator.
type Snapshot struct {
	Mode            Mode
	Totals          *OrderedTotals
	Periods         *OrderedTotals
	Count           int
	GrandTotal      decimal.Decimal
	Records         []Record
	Filtered        int
	UndatedExcluded int
}

// IsEmpty reports whether no record passed the filters.
func (s Snapshot) IsEmpty() bool {
	return s.Count == 0
}
