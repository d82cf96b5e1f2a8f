package entity

import "time"

// Filters restricts which records are folded into a snapshot. The zero value
// accepts everything.
type Filters struct {
	Categories []string
	From       *time.Time
	To         *time.Time
}

// HasDateRange reports whether either date bound is set.
func (f Filters) HasDateRange() bool {
	return f.From != nil || f.To != nil
}
