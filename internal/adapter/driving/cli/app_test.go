package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ledgerlab/finutil/internal/adapter/driven/config"
	"github.com/ledgerlab/finutil/internal/adapter/driven/filesystem"
	"github.com/ledgerlab/finutil/internal/application/usecase"
	"github.com/ledgerlab/finutil/internal/shared/types"
	"github.com/spf13/cobra"
)

// scriptedConsole answers AskText prompts in order and records warnings.
type scriptedConsole struct {
	answers  []string
	selects  []string
	confirms []bool
	warnings []string
}

func (c *scriptedConsole) Print(...interface{})              {}
func (c *scriptedConsole) Printf(string, ...interface{})     {}
func (c *scriptedConsole) Println(...interface{})            {}
func (c *scriptedConsole) LogInfo(string, ...interface{})    {}
func (c *scriptedConsole) LogError(string, ...interface{})   {}
func (c *scriptedConsole) LogSuccess(string, ...interface{}) {}

func (c *scriptedConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *scriptedConsole) Status(string) types.StatusHandle           { return nil }
func (c *scriptedConsole) ProgressWithTotal(int) types.ProgressHandle { return nil }
func (c *scriptedConsole) CreateTable() types.TableInterface          { return nil }
func (c *scriptedConsole) DisplayTrendBars([]types.MonthlyTotal)      {}

func (c *scriptedConsole) AskText(_, defaultValue string) (string, error) {
	if len(c.answers) == 0 {
		return defaultValue, nil
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	if a == "" {
		return defaultValue, nil
	}
	return a, nil
}

func (c *scriptedConsole) Confirm(_ string, defaultValue bool) (bool, error) {
	if len(c.confirms) == 0 {
		return defaultValue, nil
	}
	v := c.confirms[0]
	c.confirms = c.confirms[1:]
	return v, nil
}

func (c *scriptedConsole) Select(_ string, _ []string, defaultOption string) (string, error) {
	if len(c.selects) == 0 {
		return defaultOption, nil
	}
	v := c.selects[0]
	c.selects = c.selects[1:]
	return v, nil
}

func newTestApp(t *testing.T, c types.ConsoleInterface, cfg *types.Config) *CLIApp {
	t.Helper()
	app := NewCLIApp("test")
	app.SetConsole(c)
	app.SetConfigRepository(config.NewConfigRepository())
	app.SetRenameUseCase(usecase.NewRenameUseCase(
		filesystem.NewFileSystemRepository(),
		config.NewConfigRepository(),
		c,
		[]string{filepath.Join(t.TempDir(), "finutil.json")},
	))
	if cfg != nil {
		app.config = cfg
	}
	return app
}

func subcommand(t *testing.T, app *CLIApp, name string, flags ...string) *cobra.Command {
	t.Helper()
	cmd, _, err := app.rootCmd.Find([]string{name})
	if err != nil {
		t.Fatalf("Find(%s): %v", name, err)
	}
	if err := cmd.ParseFlags(flags); err != nil {
		t.Fatalf("ParseFlags(%v): %v", flags, err)
	}
	return cmd
}

func TestExpenseArgs_Precedence(t *testing.T) {
	cfg := &types.Config{
		ReportType: []string{"pdf"},
		Expenses: types.ExpenseConfig{
			Input:      "from-config.csv",
			Categories: []string{"Rent"},
			From:       "2024-01-01",
		},
	}

	tests := []struct {
		name       string
		flags      []string
		wantInput  string
		wantOutput string
		wantCats   []string
		wantTypes  []string
	}{
		{
			name:       "config over defaults",
			wantInput:  "from-config.csv",
			wantOutput: defaultExpenseOutput,
			wantCats:   []string{"Rent"},
			wantTypes:  []string{"pdf"},
		},
		{
			name:       "flags over config",
			flags:      []string{"--input", "cli.csv", "-c", "Food, Travel", "-y", "csv,json"},
			wantInput:  "cli.csv",
			wantOutput: defaultExpenseOutput,
			wantCats:   []string{"Food", "Travel"},
			wantTypes:  []string{"csv", "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &scriptedConsole{}, cfg)
			args, err := app.expenseArgs(subcommand(t, app, "expenses", tt.flags...))
			if err != nil {
				t.Fatalf("expenseArgs() error = %v", err)
			}
			if args.InputFile != tt.wantInput || args.OutputFile != tt.wantOutput {
				t.Errorf("files = %q/%q, want %q/%q", args.InputFile, args.OutputFile, tt.wantInput, tt.wantOutput)
			}
			if !reflect.DeepEqual(args.Categories, tt.wantCats) {
				t.Errorf("categories = %v, want %v", args.Categories, tt.wantCats)
			}
			if !reflect.DeepEqual(args.ReportType, tt.wantTypes) {
				t.Errorf("report types = %v, want %v", args.ReportType, tt.wantTypes)
			}
			if args.From == nil || args.From.Format("2006-01-02") != "2024-01-01" {
				t.Errorf("from = %v", args.From)
			}
			if !filepath.IsAbs(args.Dir) {
				t.Errorf("dir %q is not absolute", args.Dir)
			}
		})
	}
}

func TestExpenseArgs_InvalidDates(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		wantErr error
	}{
		{"malformed", []string{"--from", "01/02/2024"}, nil},
		{"inverted", []string{"--from", "2024-02-01", "--to", "2024-01-01"}, types.ErrInvalidDateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &scriptedConsole{}, nil)
			_, err := app.expenseArgs(subcommand(t, app, "expenses", tt.flags...))
			if err == nil {
				t.Fatal("expenseArgs() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpenseArgs_InteractiveInvalidDateDropsFilter(t *testing.T) {
	c := &scriptedConsole{answers: []string{"", "", "Food,Rent", "not-a-date", "2024-12-31"}}
	app := newTestApp(t, c, nil)

	args, err := app.expenseArgs(subcommand(t, app, "expenses", "-i"))
	if err != nil {
		t.Fatalf("expenseArgs() error = %v", err)
	}
	if args.From != nil {
		t.Errorf("from = %v, want nil", args.From)
	}
	if args.To == nil || args.To.Format("2006-01-02") != "2024-12-31" {
		t.Errorf("to = %v", args.To)
	}
	if !reflect.DeepEqual(args.Categories, []string{"Food", "Rent"}) {
		t.Errorf("categories = %v", args.Categories)
	}
	if len(c.warnings) != 1 {
		t.Errorf("warnings = %v", c.warnings)
	}
}

func TestProfitLossArgs(t *testing.T) {
	app := newTestApp(t, &scriptedConsole{}, nil)
	args, err := app.profitLossArgs(subcommand(t, app, "pnl", "--types", "Revenue", "--save-json", "out.json"))
	if err != nil {
		t.Fatalf("profitLossArgs() error = %v", err)
	}
	if args.InputFile != defaultProfitLossInput || !reflect.DeepEqual(args.Types, []string{"revenue"}) || args.SaveJSON != "out.json" {
		t.Errorf("args = %+v", args)
	}

	app = newTestApp(t, &scriptedConsole{}, nil)
	if _, err := app.profitLossArgs(subcommand(t, app, "pnl", "--types", "refund")); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestProfitLossArgs_Interactive(t *testing.T) {
	c := &scriptedConsole{selects: []string{"expense"}, confirms: []bool{true}}
	app := newTestApp(t, c, nil)

	args, err := app.profitLossArgs(subcommand(t, app, "pnl", "-i"))
	if err != nil {
		t.Fatalf("profitLossArgs() error = %v", err)
	}
	if !reflect.DeepEqual(args.Types, []string{"expense"}) || args.SaveJSON != defaultProcessedData {
		t.Errorf("args = %+v", args)
	}
}

func TestRenameArgs(t *testing.T) {
	cfg := &types.Config{Rename: types.RenameConfig{ProtectedFiles: []string{"keep.me"}}}
	app := newTestApp(t, &scriptedConsole{}, cfg)

	args, err := app.renameArgs(subcommand(t, app, "rename", "-p", "/tmp", "--op", "number", "--start", "5", "-Y"))
	if err != nil {
		t.Fatalf("renameArgs() error = %v", err)
	}
	if args.Directory != "/tmp" || args.Operation != "number" || args.Start != 5 || !args.Yes {
		t.Errorf("args = %+v", args)
	}
	for _, want := range []string{"README.md", "LICENSE", "keep.me"} {
		found := false
		for _, p := range args.Protected {
			found = found || p == want
		}
		if !found {
			t.Errorf("protected files %v missing %s", args.Protected, want)
		}
	}

	app = newTestApp(t, &scriptedConsole{}, nil)
	if _, err := app.renameArgs(subcommand(t, app, "rename", "-p", "/tmp")); !errors.Is(err, types.ErrInvalidRenameOperation) {
		t.Errorf("missing --op error = %v", err)
	}
}

func TestRenameArgs_Interactive(t *testing.T) {
	c := &scriptedConsole{answers: []string{"/srv/photos", "IMG-", ""}, selects: []string{"add-prefix"}}
	app := newTestApp(t, c, nil)

	args, err := app.renameArgs(subcommand(t, app, "rename", "-i"))
	if err != nil {
		t.Fatalf("renameArgs() error = %v", err)
	}
	if args.Directory != "/srv/photos" || args.Operation != "add-prefix" || args.Text != "IMG-" {
		t.Errorf("args = %+v", args)
	}
}

func TestPrepare_LoadsConfigFile(t *testing.T) {
	t.Setenv(config.EnvConfigFile, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "finutil.yaml")
	repo := config.NewConfigRepository()
	if err := repo.SaveConfigFile(path, &types.Config{ReportName: "monthly"}); err != nil {
		t.Fatal(err)
	}

	app := newTestApp(t, &scriptedConsole{}, nil)
	cmd := subcommand(t, app, "expenses", "--no-banner", "-C", path)
	if err := app.prepare(cmd, nil); err != nil {
		t.Fatalf("prepare() error = %v", err)
	}
	if app.config.ReportName != "monthly" {
		t.Errorf("config = %+v", app.config)
	}

	app = newTestApp(t, &scriptedConsole{}, nil)
	cmd = subcommand(t, app, "expenses", "--no-banner", "-C", filepath.Join(dir, "missing.toml"))
	if err := app.prepare(cmd, nil); err == nil {
		t.Error("prepare() accepted a missing config file")
	}
}
