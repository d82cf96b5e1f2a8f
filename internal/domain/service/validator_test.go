package service

import (
	"errors"
	"testing"

	"github.com/ledgerlab/finutil/internal/domain/entity"
)

func TestValidate_Expense(t *testing.T) {
	tests := []struct {
		name     string
		row      entity.RawRow
		wantErr  error
		wantKey  string
		wantAmt  string
		wantDate bool
	}{
		{
			name:     "full row",
			row:      row(2, "Category", " Food ", "Amount", "10.00", "Date", "2024-01-05"),
			wantKey:  "Food",
			wantAmt:  "10",
			wantDate: true,
		},
		{
			name:    "date column absent",
			row:     row(2, "Category", "Rent", "Amount", "500"),
			wantKey: "Rent",
			wantAmt: "500",
		},
		{
			name:    "unparseable date is soft",
			row:     row(2, "Category", "Rent", "Amount", "500", "Date", "01/02/2024"),
			wantKey: "Rent",
			wantAmt: "500",
		},
		{
			name:    "negative amount accepted",
			row:     row(2, "Category", "Refund", "Amount", "-12.5"),
			wantKey: "Refund",
			wantAmt: "-12.5",
		},
		{
			name:    "zero amount accepted",
			row:     row(2, "Category", "Misc", "Amount", "0"),
			wantKey: "Misc",
			wantAmt: "0",
		},
		{
			name:    "missing category",
			row:     row(2, "Amount", "10"),
			wantErr: entity.ErrMissingField,
		},
		{
			name:    "blank category",
			row:     row(2, "Category", "   ", "Amount", "10"),
			wantErr: entity.ErrMissingField,
		},
		{
			name:    "malformed amount",
			row:     row(2, "Category", "Food", "Amount", "abc"),
			wantErr: entity.ErrMalformedAmount,
		},
		{
			name:    "exponent notation",
			row:     row(2, "Category", "Food", "Amount", "1.5e2"),
			wantKey: "Food",
			wantAmt: "150",
		},
		{
			name:    "tiny exponent",
			row:     row(3, "Category", "Food", "Amount", "1e-300000000"),
			wantErr: entity.ErrMalformedAmount,
		},
		{
			name:    "huge exponent",
			row:     row(3, "Category", "Food", "Amount", "1e30"),
			wantErr: entity.ErrMalformedAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Validate(tt.row, ExpenseSchema)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				var rej *entity.Rejection
				if !errors.As(err, &rej) {
					t.Fatalf("Validate() error type = %T, want *entity.Rejection", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if rec.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", rec.Key, tt.wantKey)
			}
			if !rec.Amount.Equal(dec(tt.wantAmt)) {
				t.Errorf("Amount = %s, want %s", rec.Amount, tt.wantAmt)
			}
			if rec.HasDate != tt.wantDate {
				t.Errorf("HasDate = %v, want %v", rec.HasDate, tt.wantDate)
			}
		})
	}
}

func TestValidate_ProfitLoss(t *testing.T) {
	valid := func(kv ...string) entity.RawRow {
		base := map[string]string{"Date": "2024-01-01", "Type": "revenue", "Amount": "1000", "Description": "Sale"}
		for i := 0; i+1 < len(kv); i += 2 {
			base[kv[i]] = kv[i+1]
		}
		return entity.RawRow{Line: 2, Fields: base}
	}

	tests := []struct {
		name     string
		row      entity.RawRow
		wantErr  error
		wantCode string
	}{
		{name: "valid revenue", row: valid()},
		{name: "type is case-insensitive", row: valid("Type", " Expense ")},
		{name: "missing date", row: valid("Date", ""), wantErr: entity.ErrMissingField, wantCode: "MissingField"},
		{name: "missing description", row: valid("Description", " "), wantErr: entity.ErrMissingField, wantCode: "MissingField"},
		{name: "malformed amount", row: valid("Amount", "abc"), wantErr: entity.ErrMalformedAmount, wantCode: "MalformedAmount"},
		{name: "zero amount", row: valid("Amount", "0"), wantErr: entity.ErrNonPositiveAmount, wantCode: "NonPositiveAmount"},
		{name: "negative amount", row: valid("Amount", "-3"), wantErr: entity.ErrNonPositiveAmount, wantCode: "NonPositiveAmount"},
		{name: "unknown type", row: valid("Type", "transfer"), wantErr: entity.ErrUnknownTransactionType, wantCode: "UnknownTransactionType"},
		{name: "malformed date", row: valid("Date", "2024/01/01"), wantErr: entity.ErrMalformedDate, wantCode: "MalformedDate"},
		// amount is checked before type, type before date
		{name: "check order", row: valid("Amount", "x", "Type", "bogus", "Date", "bad"), wantErr: entity.ErrMalformedAmount, wantCode: "MalformedAmount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Validate(tt.row, ProfitLossSchema)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				if rec.Key != entity.TypeRevenue && rec.Key != entity.TypeExpense {
					t.Fatalf("Key = %q, want a lower-cased transaction type", rec.Key)
				}
				if !rec.HasDate {
					t.Fatalf("HasDate = false, want true")
				}
				return
			}
			var rej *entity.Rejection
			if !errors.As(err, &rej) || !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if rej.Code() != tt.wantCode {
				t.Errorf("Code() = %q, want %q", rej.Code(), tt.wantCode)
			}
		})
	}
}

func TestRejection_ErrorNamesField(t *testing.T) {
	_, err := Validate(row(4, "Category", "Food"), ExpenseSchema)
	if err == nil {
		t.Fatal("expected rejection")
	}
	if got, want := err.Error(), "missing field: Amount"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
