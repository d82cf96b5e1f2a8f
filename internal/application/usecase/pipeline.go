package usecase

import (
	"context"
	"fmt"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/domain/service"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

// ingestResult is what a run knows after reading, validating and folding its
// input file.
type ingestResult struct {
	Snapshot entity.Snapshot
	Rows     int
	Skipped  int
}

// ingest reads filePath, validates every row against the mode's schema and
// folds the accepted records. Rejected rows are reported and skipped; only
// file-level failures are returned as errors.
func ingest(
	ctx context.Context,
	ledgerRepo repository.LedgerRepository,
	console types.ConsoleInterface,
	filePath string,
	mode entity.Mode,
	filters entity.Filters,
) (ingestResult, error) {
	status := console.Status(fmt.Sprintf("Reading %s...", filePath))
	rows, err := ledgerRepo.ReadRows(filePath)
	if err != nil {
		status.Stop()
		return ingestResult{}, err
	}
	status.Update(fmt.Sprintf("Validating %d rows...", len(rows)))

	schema := service.SchemaFor(mode)
	agg := service.NewAggregator(mode, filters)
	result := ingestResult{Rows: len(rows)}

	// Avisos só depois do spinner parar, senão a linha fica embaralhada.
	var rejected []string
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			status.Stop()
			return ingestResult{}, err
		}
		record, err := service.Validate(row, schema)
		if err != nil {
			rejected = append(rejected, fmt.Sprintf("Skipping row %d - %v", row.Line, err))
			result.Skipped++
			continue
		}
		agg.Add(record)
	}
	status.Stop()

	for _, msg := range rejected {
		console.LogWarning("%s", msg)
	}

	result.Snapshot = agg.Snapshot()

	console.LogInfo("Processed %d rows: %d valid, %d skipped", result.Rows, result.Rows-result.Skipped, result.Skipped)
	if result.Snapshot.Filtered > 0 {
		console.LogInfo("%d record(s) excluded by filters", result.Snapshot.Filtered)
	}
	if n := result.Snapshot.UndatedExcluded; n > 0 {
		console.LogWarning("%d record(s) without a valid date were excluded by the date range", n)
	}

	return result, nil
}

// writeReport grava o relatório em texto; a falha é registrada e devolvida.
func writeReport(exportRepo repository.ExportRepository, console types.ConsoleInterface, report, outputFile string) error {
	path, err := exportRepo.WriteTextReport(report, outputFile)
	if err != nil {
		console.LogError("Error writing report: %v", err)
		return err
	}
	console.LogSuccess("Report saved to %s", path)
	return nil
}

type exporters struct {
	csv  func(entity.Snapshot, string, string) (string, error)
	json func(entity.Snapshot, string, string) (string, error)
	pdf  func(entity.Snapshot, string, string) (string, error)
}

// exportReports grava os relatórios adicionais pedidos via --report-type.
// Falhas individuais são registradas sem interromper os demais formatos.
func exportReports(console types.ConsoleInterface, snapshot entity.Snapshot, args types.CommonArgs, ex exporters) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = ex.csv(snapshot, args.ReportName, args.Dir)
		case "json":
			path, err = ex.json(snapshot, args.ReportName, args.Dir)
		case "pdf":
			path, err = ex.pdf(snapshot, args.ReportName, args.Dir)
		default:
			console.LogWarning("Unsupported report type '%s' ignored", reportType)
			continue
		}
		if err != nil {
			console.LogError("Failed to export %s report: %v", reportType, err)
			continue
		}
		console.LogSuccess("Successfully exported to %s: %s", reportType, path)
	}
}

func displayTotals(console types.ConsoleInterface, snapshot entity.Snapshot, keyHeader string) {
	table := console.CreateTable()
	table.AddColumn(keyHeader)
	table.AddColumn("Total")
	table.AddColumn("Share")
	for _, t := range snapshot.Totals.Entries() {
		share := "-"
		if !snapshot.GrandTotal.IsZero() {
			share = t.Amount.Div(snapshot.GrandTotal).Shift(2).StringFixed(1) + "%"
		}
		table.AddRow(t.Key, service.FormatAmount(t.Amount), share)
	}
	console.Print(table.Render())
}
