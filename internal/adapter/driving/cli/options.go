package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/spf13/cobra"
)

// stringOption devolve a flag quando informada, senão o valor do arquivo de
// configuração, senão o padrão da flag.
func stringOption(cmd *cobra.Command, name, configured string) string {
	value, _ := cmd.Flags().GetString(name)
	if cmd.Flags().Changed(name) || configured == "" {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(configured)
}

func sliceOption(cmd *cobra.Command, name string, configured []string) []string {
	value, _ := cmd.Flags().GetStringSlice(name)
	if !cmd.Flags().Changed(name) && len(configured) > 0 {
		value = configured
	}
	return splitList(strings.Join(value, ","))
}

// splitList parses a comma-separated list, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseDate parses an optional YYYY-MM-DD date; an empty string means no bound.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(entity.DateFormat, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &d, nil
}

func normalizeTypes(types []string) ([]string, error) {
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.ToLower(t)
		if t != entity.TypeRevenue && t != entity.TypeExpense {
			return nil, fmt.Errorf("invalid transaction type %q, expected revenue or expense", t)
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// protectedFiles lists the files a rename never touches: the running binary,
// README.md, LICENSE and every configured name.
func protectedFiles(configured ...[]string) []string {
	protected := []string{"README.md", "LICENSE"}
	if exe, err := os.Executable(); err == nil {
		protected = append(protected, filepath.Base(exe))
	}
	if len(os.Args) > 0 {
		protected = append(protected, filepath.Base(os.Args[0]))
	}
	for _, list := range configured {
		protected = append(protected, list...)
	}
	return protected
}
