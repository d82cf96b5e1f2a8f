package usecase

import (
	"fmt"
	"strings"

	"github.com/ledgerlab/finutil/internal/shared/types"
)

// fakeConsole records everything written to it and answers prompts from
// fixed values.
type fakeConsole struct {
	out      strings.Builder
	infos    []string
	warnings []string
	errors   []string
	success  []string
	trend    []types.MonthlyTotal
	confirm  bool
	prompted int
	status   *statusRecorder
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(text string) types.StatusHandle {
	c.status = &statusRecorder{updates: []string{text}}
	return c.status
}

func (c *fakeConsole) ProgressWithTotal(int) types.ProgressHandle   { return nopHandle{} }
func (c *fakeConsole) CreateTable() types.TableInterface            { return &fakeTable{} }
func (c *fakeConsole) DisplayTrendBars(totals []types.MonthlyTotal) { c.trend = totals }

func (c *fakeConsole) AskText(_, defaultValue string) (string, error) { return defaultValue, nil }

func (c *fakeConsole) Confirm(string, bool) (bool, error) {
	c.prompted++
	return c.confirm, nil
}

func (c *fakeConsole) Select(_ string, _ []string, defaultOption string) (string, error) {
	return defaultOption, nil
}

type nopHandle struct{}

func (nopHandle) Update(string) {}
func (nopHandle) Increment()    {}
func (nopHandle) Stop()         {}

// statusRecorder keeps every text shown by a status spinner.
type statusRecorder struct {
	updates []string
	stops   int
}

func (s *statusRecorder) Update(text string) { s.updates = append(s.updates, text) }
func (s *statusRecorder) Stop()              { s.stops++ }

type fakeTable struct {
	rows [][]string
}

func (t *fakeTable) AddColumn(string, ...interface{}) {}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	var b strings.Builder
	for _, r := range t.rows {
		b.WriteString(strings.Join(r, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

func containsLine(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}
