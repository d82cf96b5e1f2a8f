package service

import (
	"testing"
	"time"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func row(line int, kv ...string) entity.RawRow {
	fields := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}
	return entity.RawRow{Line: line, Fields: fields}
}

func mustValidate(t *testing.T, r entity.RawRow, schema Schema) entity.Record {
	t.Helper()
	rec, err := Validate(r, schema)
	if err != nil {
		t.Fatalf("Validate(line %d) unexpected error: %v", r.Line, err)
	}
	return rec
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) *time.Time {
	d, err := time.Parse(entity.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return &d
}

func expenseRecords(t *testing.T) []entity.Record {
	t.Helper()
	return []entity.Record{
		mustValidate(t, row(2, "Category", "Food", "Amount", "10.00", "Date", "2024-01-05"), ExpenseSchema),
		mustValidate(t, row(3, "Category", "Rent", "Amount", "500.00", "Date", "2024-01-01"), ExpenseSchema),
	}
}
