package repository

import (
	"github.com/ledgerlab/finutil/internal/domain/entity"
)

type ExportRepository interface {
	// WriteTextReport writes the formatted report to filePath and returns its absolute path.
	WriteTextReport(report string, filePath string) (string, error)

	// Expense summary
	ExportExpensesToCSV(snapshot entity.Snapshot, filename, outputDir string) (string, error)
	ExportExpensesToJSON(snapshot entity.Snapshot, filename, outputDir string) (string, error)
	ExportExpensesToPDF(snapshot entity.Snapshot, filename, outputDir string) (string, error)

	// Profit/loss
	ExportProfitLossToCSV(snapshot entity.Snapshot, filename, outputDir string) (string, error)
	ExportProfitLossToJSON(snapshot entity.Snapshot, filename, outputDir string) (string, error)
	ExportProfitLossToPDF(snapshot entity.Snapshot, filename, outputDir string) (string, error)

	// SaveProcessedData writes the processed profit/loss records to filePath as JSON.
	SaveProcessedData(snapshot entity.Snapshot, filePath string) (string, error)
}
