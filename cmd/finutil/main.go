package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ledgerlab/finutil/internal/adapter/driven/config"
	"github.com/ledgerlab/finutil/internal/adapter/driven/export"
	"github.com/ledgerlab/finutil/internal/adapter/driven/filesystem"
	"github.com/ledgerlab/finutil/internal/adapter/driven/ledger"
	"github.com/ledgerlab/finutil/internal/adapter/driving/cli"
	"github.com/ledgerlab/finutil/internal/application/usecase"
	"github.com/ledgerlab/finutil/pkg/console"
	"github.com/ledgerlab/finutil/pkg/version"
)

func main() {
	// Carrega o .env antes de ler qualquer variável de ambiente
	config.LoadEnvFile()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	ledgerRepo := ledger.NewCSVLedgerRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	fsRepo := filesystem.NewFileSystemRepository()
	consoleImpl := console.NewConsole()

	// Inicializa os casos de uso
	app.SetExpenseUseCase(usecase.NewExpenseUseCase(ledgerRepo, exportRepo, consoleImpl))
	app.SetProfitLossUseCase(usecase.NewProfitLossUseCase(ledgerRepo, exportRepo, consoleImpl))
	app.SetRenameUseCase(usecase.NewRenameUseCase(fsRepo, configRepo, consoleImpl, config.DefaultSearchPaths()))
	app.SetConfigRepository(configRepo)
	app.SetConsole(consoleImpl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Executa o aplicativo
	if err := app.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
