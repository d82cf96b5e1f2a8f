package usecase

import (
	"context"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/domain/service"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

// ExpenseUseCase summarizes an expense file by category and month.
type ExpenseUseCase struct {
	ledgerRepo repository.LedgerRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
}

// NewExpenseUseCase creates a new expense use case.
func NewExpenseUseCase(
	ledgerRepo repository.LedgerRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *ExpenseUseCase {
	return &ExpenseUseCase{
		ledgerRepo: ledgerRepo,
		exportRepo: exportRepo,
		console:    console,
	}
}

// Run executa o resumo de despesas e devolve o snapshot produzido.
func (uc *ExpenseUseCase) Run(ctx context.Context, args *types.ExpenseArgs) (entity.Snapshot, error) {
	if err := types.ValidateDateRange(args.From, args.To); err != nil {
		return entity.Snapshot{}, err
	}

	filters := entity.Filters{Categories: args.Categories, From: args.From, To: args.To}
	result, err := ingest(ctx, uc.ledgerRepo, uc.console, args.InputFile, entity.ModeExpense, filters)
	if err != nil {
		return entity.Snapshot{}, err
	}
	snapshot := result.Snapshot

	report := service.Format(snapshot)
	uc.console.Println()
	uc.console.Print(report)

	if !snapshot.IsEmpty() {
		displayTotals(uc.console, snapshot, "Category")

		trend := service.MonthlyTrend(snapshot)
		if len(trend) > 0 {
			monthly := make([]types.MonthlyTotal, 0, len(trend))
			for _, m := range trend {
				monthly = append(monthly, types.MonthlyTotal{Month: m.Key, Amount: m.Amount.InexactFloat64()})
			}
			uc.console.DisplayTrendBars(monthly)
		}
	}

	if err := writeReport(uc.exportRepo, uc.console, report, args.OutputFile); err != nil {
		return snapshot, err
	}

	exportReports(uc.console, snapshot, args.CommonArgs, exporters{
		csv:  uc.exportRepo.ExportExpensesToCSV,
		json: uc.exportRepo.ExportExpensesToJSON,
		pdf:  uc.exportRepo.ExportExpensesToPDF,
	})

	return snapshot, nil
}
