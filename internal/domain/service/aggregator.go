package service

import (
	"slices"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Aggregator folds records into a snapshot one at a time.
type Aggregator struct {
	filters  entity.Filters
	snapshot entity.Snapshot
}

// NewAggregator cria um agregador vazio para o modo e filtros informados.
func NewAggregator(mode entity.Mode, filters entity.Filters) *Aggregator {
	return &Aggregator{
		filters: filters,
		snapshot: entity.Snapshot{
			Mode:       mode,
			Totals:     entity.NewOrderedTotals(),
			Periods:    entity.NewOrderedTotals(),
			GrandTotal: decimal.Zero,
		},
	}
}

// Add folds record into the running totals. It returns false when the record
// is dropped by a filter.
func (a *Aggregator) Add(record entity.Record) bool {
	f := a.filters

	if len(f.Categories) > 0 && !slices.Contains(f.Categories, record.Key) {
		a.snapshot.Filtered++
		return false
	}

	if f.HasDateRange() {
		if !record.HasDate {
			a.snapshot.Filtered++
			a.snapshot.UndatedExcluded++
			return false
		}
		if f.From != nil && record.Date.Before(*f.From) {
			a.snapshot.Filtered++
			return false
		}
		if f.To != nil && record.Date.After(*f.To) {
			a.snapshot.Filtered++
			return false
		}
	}

	a.snapshot.Totals.Add(record.Key, record.Amount)
	if record.HasDate {
		a.snapshot.Periods.Add(record.MonthKey(), record.Amount)
	}
	a.snapshot.Count++
	a.snapshot.GrandTotal = a.snapshot.GrandTotal.Add(record.Amount)
	a.snapshot.Records = append(a.snapshot.Records, record)
	return true
}

// Snapshot returns the aggregate built so far. The aggregator must not be
// used after calling it.
func (a *Aggregator) Snapshot() entity.Snapshot {
	return a.snapshot
}

// Fold reduces records, in order, into a snapshot.
func Fold(mode entity.Mode, records []entity.Record, filters entity.Filters) entity.Snapshot {
	agg := NewAggregator(mode, filters)
	for _, r := range records {
		agg.Add(r)
	}
	return agg.Snapshot()
}
