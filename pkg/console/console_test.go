package console

import (
	"strings"
	"testing"

	"github.com/ledgerlab/finutil/internal/shared/types"
)

var _ types.ConsoleInterface = (*Console)(nil)

func TestTableRender(t *testing.T) {
	table := NewConsole().CreateTable()
	table.AddColumn("Category")
	table.AddColumn("Total")
	table.AddRow("Food", "$10.00")
	table.AddRow("Rent", 500)

	out := table.Render()
	for _, want := range []string{"Category", "Total", "Food", "$10.00", "Rent", "500"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q:\n%s", want, out)
		}
	}
}
