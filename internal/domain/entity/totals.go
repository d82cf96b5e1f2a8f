package entity

import "github.com/shopspring/decimal"

// KeyTotal is a single key/amount pair of an OrderedTotals.
type KeyTotal struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderedTotals accumulates amounts per key and remembers the order in which
// keys were first seen.
type OrderedTotals struct {
	keys   []string
	values map[string]decimal.Decimal
}

// NewOrderedTotals creates an empty OrderedTotals.
func NewOrderedTotals() *OrderedTotals {
	return &OrderedTotals{values: make(map[string]decimal.Decimal)}
}

// Add adds amount to key, creating the key on first use.
func (t *OrderedTotals) Add(key string, amount decimal.Decimal) {
	if t.values == nil {
		t.values = make(map[string]decimal.Decimal)
	}
	current, ok := t.values[key]
	if !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = current.Add(amount)
}

// Get returns the total for key and whether the key exists.
func (t *OrderedTotals) Get(key string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of keys.
func (t *OrderedTotals) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns a copy of the keys in first-seen order.
func (t *OrderedTotals) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Entries returns the totals in first-seen order.
func (t *OrderedTotals) Entries() []KeyTotal {
	if t == nil {
		return nil
	}
	out := make([]KeyTotal, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, KeyTotal{Key: k, Amount: t.values[k]})
	}
	return out
}

// Sum returns the sum of every total.
func (t *OrderedTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	if t == nil {
		return sum
	}
	for _, k := range t.keys {
		sum = sum.Add(t.values[k])
	}
	return sum
}
