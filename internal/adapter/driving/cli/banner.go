package cli

import (
	"fmt"

	"github.com/ledgerlab/finutil/pkg/console"
	"github.com/ledgerlab/finutil/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
     __ _             _   _ _
    / _(_)_ __  _   _| |_(_) |
   | |_| | '_ \| | | | __| | |
   |  _| | | | | |_| | |_| | |
   |_| |_|_| |_|\__,_|\__|_|_|
`
	fmt.Println(console.BrightGreen(banner))

	fmt.Println(console.BrightCyan(fmt.Sprintf("finutil - expenses, profit/loss and file renaming (v%s)", version.FormatVersion())))
	fmt.Println()
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	version.CheckLatestVersion(currentVersion)
}
