package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects which tool's schema and report layout a run uses.
type Mode int

const (
	ModeExpense Mode = iota
	ModeProfitLoss
)

// String returns the command name associated with the mode.
func (m Mode) String() string {
	switch m {
	case ModeExpense:
		return "expenses"
	case ModeProfitLoss:
		return "pnl"
	default:
		return "unknown"
	}
}

// Transaction types accepted by the profit/loss schema.
const (
	TypeRevenue = "revenue"
	TypeExpense = "expense"
)

// DateFormat is the only accepted date layout (ISO-8601 calendar date).
const DateFormat = "2006-01-02"

// MonthFormat is the layout of the month keys used for trend buckets.
const MonthFormat = "2006-01"

// RawRow represents one data line of a delimited file, keyed by header name.
type RawRow struct {
	Line   int
	Fields map[string]string
}

// Record is a validated row. It is only ever built by the validator.
type Record struct {
	Line        int             `json:"line"`
	Date        time.Time       `json:"date"`
	HasDate     bool            `json:"-"`
	Key         string          `json:"key"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// MonthKey retorna a chave YYYY-MM do registro, ou "" quando não há data.
func (r Record) MonthKey() string {
	if !r.HasDate {
		return ""
	}
	return r.Date.Format(MonthFormat)
}

// DateString returns the ISO date of the record, or "" when undated.
func (r Record) DateString() string {
	if !r.HasDate {
		return ""
	}
	return r.Date.Format(DateFormat)
}
