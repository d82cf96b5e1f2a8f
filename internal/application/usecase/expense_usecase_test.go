package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ledgerlab/finutil/internal/adapter/driven/export"
	"github.com/ledgerlab/finutil/internal/adapter/driven/ledger"
	"github.com/ledgerlab/finutil/internal/domain/service"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func date(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func newExpenseUseCase(c *fakeConsole) *ExpenseUseCase {
	return NewExpenseUseCase(ledger.NewCSVLedgerRepository(), export.NewExportRepository(), c)
}

const purchases = `Category,Amount,Date
Food,10.00,2024-01-05
Rent,500.00,2024-01-01
Food,abc,2024-01-07
Misc,3.00,
`

func TestExpenseUseCase_Run(t *testing.T) {
	tests := []struct {
		name       string
		args       func(dir string) *types.ExpenseArgs
		wantTotal  string
		wantCount  int
		wantReport string
	}{
		{
			name: "no filters",
			args: func(dir string) *types.ExpenseArgs {
				return &types.ExpenseArgs{}
			},
			wantTotal:  "513.00",
			wantCount:  3,
			wantReport: "Total Spending: $513.00",
		},
		{
			name: "category allowlist",
			args: func(dir string) *types.ExpenseArgs {
				return &types.ExpenseArgs{Categories: []string{"Rent"}}
			},
			wantTotal:  "500.00",
			wantCount:  1,
			wantReport: "Rent: $500.00",
		},
		{
			name: "date range drops undated rows",
			args: func(dir string) *types.ExpenseArgs {
				return &types.ExpenseArgs{From: date("2024-01-01"), To: date("2024-01-31")}
			},
			wantTotal:  "510.00",
			wantCount:  2,
			wantReport: "Predicted Next Month: $535.50 (5% increase)",
		},
		{
			name: "nothing matches",
			args: func(dir string) *types.ExpenseArgs {
				return &types.ExpenseArgs{Categories: []string{"Travel"}}
			},
			wantTotal:  "0.00",
			wantCount:  0,
			wantReport: service.NoMatchingRecords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := tt.args(dir)
			args.InputFile = writeInput(t, dir, "purchases.csv", purchases)
			args.OutputFile = filepath.Join(dir, "Monthly_Summary.txt")

			c := &fakeConsole{}
			snap, err := newExpenseUseCase(c).Run(context.Background(), args)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if snap.GrandTotal.StringFixed(2) != tt.wantTotal || snap.Count != tt.wantCount {
				t.Fatalf("snapshot = %s/%d, want %s/%d", snap.GrandTotal.StringFixed(2), snap.Count, tt.wantTotal, tt.wantCount)
			}

			if !containsLine(c.warnings, "Skipping row 4 - invalid amount format") {
				t.Errorf("missing rejection warning, got %v", c.warnings)
			}

			data, err := os.ReadFile(args.OutputFile)
			if err != nil {
				t.Fatalf("report not written: %v", err)
			}
			if !strings.Contains(string(data), tt.wantReport) {
				t.Errorf("report does not contain %q:\n%s", tt.wantReport, data)
			}
			if string(data) != service.Format(snap) {
				t.Error("written report differs from the formatted snapshot")
			}
		})
	}
}

func TestExpenseUseCase_ReportsUndatedExclusions(t *testing.T) {
	dir := t.TempDir()
	c := &fakeConsole{}
	_, err := newExpenseUseCase(c).Run(context.Background(), &types.ExpenseArgs{
		InputFile:  writeInput(t, dir, "purchases.csv", purchases),
		OutputFile: filepath.Join(dir, "out.txt"),
		From:       date("2024-01-01"),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !containsLine(c.warnings, "1 record(s) without a valid date") {
		t.Errorf("warnings = %v", c.warnings)
	}
}

func TestExpenseUseCase_StatusFollowsPhases(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "purchases.csv", purchases)
	c := &fakeConsole{}
	_, err := newExpenseUseCase(c).Run(context.Background(), &types.ExpenseArgs{
		InputFile:  input,
		OutputFile: filepath.Join(dir, "out.txt"),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []string{"Reading " + input + "...", "Validating 4 rows..."}
	if c.status == nil || !reflect.DeepEqual(c.status.updates, want) {
		t.Fatalf("status updates = %+v, want %v", c.status, want)
	}
	if c.status.stops != 1 {
		t.Errorf("status stopped %d times, want 1", c.status.stops)
	}
}

func TestExpenseUseCase_TrendBars(t *testing.T) {
	dir := t.TempDir()
	c := &fakeConsole{}
	_, err := newExpenseUseCase(c).Run(context.Background(), &types.ExpenseArgs{
		InputFile:  writeInput(t, dir, "purchases.csv", "Category,Amount,Date\nA,1,2024-02-01\nA,2,2024-01-01\n"),
		OutputFile: filepath.Join(dir, "out.txt"),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(c.trend) != 2 || c.trend[0].Month != "2024-01" || c.trend[1].Amount != 1 {
		t.Errorf("trend = %+v", c.trend)
	}
}

func TestExpenseUseCase_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "purchases.csv", purchases)
	blocker := writeInput(t, dir, "blocker", "")

	tests := []struct {
		name    string
		args    *types.ExpenseArgs
		wantErr error
	}{
		{
			name:    "missing input",
			args:    &types.ExpenseArgs{InputFile: filepath.Join(dir, "nope.csv"), OutputFile: filepath.Join(dir, "o.txt")},
			wantErr: types.ErrInputNotFound,
		},
		{
			name:    "inverted range",
			args:    &types.ExpenseArgs{InputFile: input, From: date("2024-02-01"), To: date("2024-01-01")},
			wantErr: types.ErrInvalidDateRange,
		},
		{
			name: "unwritable output",
			args: &types.ExpenseArgs{InputFile: input, OutputFile: filepath.Join(blocker, "o.txt")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &fakeConsole{}
			_, err := newExpenseUseCase(c).Run(context.Background(), tt.args)
			if err == nil {
				t.Fatal("Run() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpenseUseCase_ExportsReportTypes(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "exports")
	c := &fakeConsole{}
	args := &types.ExpenseArgs{
		CommonArgs: types.CommonArgs{ReportName: "summary", ReportType: []string{"csv", "json", "xml"}, Dir: out},
		InputFile:  writeInput(t, dir, "purchases.csv", purchases),
		OutputFile: filepath.Join(dir, "Monthly_Summary.txt"),
	}
	if _, err := newExpenseUseCase(c).Run(context.Background(), args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("exported %d files, want 2", len(entries))
	}
	if !containsLine(c.warnings, "Unsupported report type 'xml'") {
		t.Errorf("warnings = %v", c.warnings)
	}
}
