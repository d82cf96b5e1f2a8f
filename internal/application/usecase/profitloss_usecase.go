package usecase

import (
	"context"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/domain/service"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

// ProfitLossUseCase computes revenue, expenses and the net result of a
// transactions file.
type ProfitLossUseCase struct {
	ledgerRepo repository.LedgerRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewProfitLossUseCase creates a new profit/loss use case.
func NewProfitLossUseCase(
	ledgerRepo repository.LedgerRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ProfitLossUseCase {
	return &ProfitLossUseCase{
		ledgerRepo: ledgerRepo,
		exportRepo: exportRepo,
		console:    console,
	}
}

// Run executa o cálculo de lucro/prejuízo e devolve o snapshot produzido.
func (uc *ProfitLossUseCase) Run(ctx context.Context, args *types.ProfitLossArgs) (entity.Snapshot, error) {
	if err := types.ValidateDateRange(args.From, args.To); err != nil {
		return entity.Snapshot{}, err
	}

	filters := entity.Filters{Categories: args.Types, From: args.From, To: args.To}
	result, err := ingest(ctx, uc.ledgerRepo, uc.console, args.InputFile, entity.ModeProfitLoss, filters)
	if err != nil {
		return entity.Snapshot{}, err
	}
	snapshot := result.Snapshot

	report := service.Format(snapshot)
	uc.console.Println()
	uc.console.Print(report)

	if !snapshot.IsEmpty() {
		displayTotals(uc.console, snapshot, "Type")
		uc.logNetResult(service.SummarizeProfitLoss(snapshot))
	}

	if err := writeReport(uc.exportRepo, uc.console, report, args.OutputFile); err != nil {
		return snapshot, err
	}

	if args.SaveJSON != "" {
		path, err := uc.exportRepo.SaveProcessedData(snapshot, args.SaveJSON)
		if err != nil {
			uc.console.LogError("Error saving processed data: %v", err)
			return snapshot, err
		}
		uc.console.LogSuccess("Processed data saved to %s", path)
	}

	exportReports(uc.console, snapshot, args.CommonArgs, exporters{
		csv:  uc.exportRepo.ExportProfitLossToCSV,
		json: uc.exportRepo.ExportProfitLossToJSON,
		pdf:  uc.exportRepo.ExportProfitLossToPDF,
	})

	return snapshot, nil
}

func (uc *ProfitLossUseCase) logNetResult(sum entity.ProfitLossSummary) {
	amount := service.FormatAmount(sum.Net.Abs())
	switch sum.Result {
	case entity.Profit:
		uc.console.LogSuccess("Net result: %s of %s", sum.Result, amount)
	case entity.Loss:
		uc.console.LogError("Net result: %s of %s", sum.Result, amount)
	default:
		uc.console.LogInfo("Net result: %s", sum.Result)
	}
}
