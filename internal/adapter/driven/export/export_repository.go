package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/domain/service"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now   func() time.Time
	newID func() string
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now, newID: uuid.NewString}
}

// WriteTextReport grava o relatório em texto no caminho indicado.
func (r *ExportRepositoryImpl) WriteTextReport(report, filePath string) (string, error) {
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
		}
	}
	if err := os.WriteFile(filePath, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("error writing summary: %w", err)
	}
	return filepath.Abs(filePath)
}

// --- Resumo de despesas ---

func (r *ExportRepositoryImpl) ExportExpensesToCSV(snapshot entity.Snapshot, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	rows := [][]string{{"Section", "Key", "Amount"}}
	for _, t := range snapshot.Totals.Entries() {
		rows = append(rows, []string{"Category", t.Key, t.Amount.StringFixed(2)})
	}
	for _, m := range service.MonthlyTrend(snapshot) {
		rows = append(rows, []string{"Month", m.Key, m.Amount.StringFixed(2)})
	}
	rows = append(rows,
		[]string{"Summary", "Total Spending", snapshot.GrandTotal.StringFixed(2)},
		[]string{"Summary", "Number of Transactions", strconv.Itoa(snapshot.Count)},
	)
	if snapshot.Count > 0 {
		rows = append(rows,
			[]string{"Summary", "Average Transaction", service.Average(snapshot).StringFixed(2)},
			[]string{"Summary", "Predicted Next Month", service.Prediction(snapshot).StringFixed(2)},
		)
	}

	if err := writeCSV(outputFilename, rows); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportExpensesToJSON(snapshot entity.Snapshot, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	if err := writeJSON(outputFilename, r.expenseDocument(snapshot)); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportExpensesToPDF(snapshot entity.Snapshot, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	doc := newReportPDF("Monthly Expense Summary", [3]int{40, 40, 40}, r.now())

	if snapshot.IsEmpty() {
		doc.section("Summary", service.NoMatchingRecords)
	} else {
		doc.section("Spending by Category", keyTotalLines(snapshot.Totals.Entries()))
		doc.section("Advanced Analytics", fmt.Sprintf(
			"Total Spending: %s\nNumber of Transactions: %d\nAverage Transaction: %s\nPredicted Next Month: %s (5%% increase)",
			service.FormatAmount(snapshot.GrandTotal),
			snapshot.Count,
			service.FormatAmount(service.Average(snapshot)),
			service.FormatAmount(service.Prediction(snapshot)),
		))
		doc.section("Monthly Trends", keyTotalLines(service.MonthlyTrend(snapshot)))
	}

	if err := doc.save(outputFilename); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

// --- Lucro/prejuízo ---

func (r *ExportRepositoryImpl) ExportProfitLossToCSV(snapshot entity.Snapshot, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	rows := [][]string{{"Date", "Type", "Amount", "Description"}}
	for _, rec := range snapshot.Records {
		rows = append(rows, []string{rec.DateString(), rec.Key, rec.Amount.StringFixed(2), rec.Description})
	}

	sum := service.SummarizeProfitLoss(snapshot)
	rows = append(rows,
		[]string{"", "total_revenue", sum.TotalRevenue.StringFixed(2), ""},
		[]string{"", "total_expenses", sum.TotalExpenses.StringFixed(2), ""},
		[]string{"", "net_profit", sum.Net.StringFixed(2), sum.Result.String()},
	)

	if err := writeCSV(outputFilename, rows); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportProfitLossToJSON(snapshot entity.Snapshot, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	if err := writeJSON(outputFilename, r.profitLossDocument(snapshot)); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportProfitLossToPDF(snapshot entity.Snapshot, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	doc := newReportPDF("Profit/Loss Report", [3]int{0, 102, 204}, r.now())

	if snapshot.IsEmpty() {
		doc.section("Summary", service.NoMatchingRecords)
	} else {
		sum := service.SummarizeProfitLoss(snapshot)

		revenue := fmt.Sprintf("Total Revenue: %s\nNumber of Revenue Transactions: %d",
			service.FormatAmount(sum.TotalRevenue), len(sum.Revenues))
		for _, rec := range sum.TopRevenues {
			revenue += fmt.Sprintf("\n  %s - %s (%s)", service.FormatAmount(rec.Amount), rec.Description, rec.DateString())
		}
		doc.section("Revenue Summary", revenue)

		expenses := fmt.Sprintf("Total Expenses: %s\nNumber of Expense Transactions: %d",
			service.FormatAmount(sum.TotalExpenses), len(sum.Expenses))
		for _, e := range sum.TopExpenses {
			expenses += fmt.Sprintf("\n  %s - %s", service.FormatAmount(e.Amount), e.Description)
		}
		doc.section("Expense Summary", expenses)

		doc.section("Net Result", fmt.Sprintf("[%s] %s", sum.Result, service.FormatAmount(sum.Net.Abs())))
	}

	if err := doc.save(outputFilename); err != nil {
		return "", err
	}
	return filepath.Abs(outputFilename)
}

// SaveProcessedData grava os registros processados e os totais em JSON.
func (r *ExportRepositoryImpl) SaveProcessedData(snapshot entity.Snapshot, filePath string) (string, error) {
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
		}
	}
	if err := writeJSON(filePath, r.profitLossDocument(snapshot)); err != nil {
		return "", err
	}
	return filepath.Abs(filePath)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", base, timestamp, ext)), nil
}

func writeCSV(path string, rows [][]string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer closeFile(file, "CSV", &err)

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing CSV record: %w", err)
	}
	return nil
}

func writeJSON(path string, v any) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating JSON file: %w", err)
	}
	defer closeFile(file, "JSON", &err)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON data: %w", err)
	}
	return nil
}

// closeFile fecha o arquivo e, se a escrita deu certo, devolve o erro do Close.
func closeFile(c io.Closer, kind string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("error closing %s file: %w", kind, cerr)
	}
}

func keyTotalLines(entries []entity.KeyTotal) string {
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("%s: %s", e.Key, service.FormatAmount(e.Amount))
	}
	return out
}

// reportPDF agrupa o layout comum das páginas de relatório.
type reportPDF struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newReportPDF(title string, headerColor [3]int, generatedAt time.Time) *reportPDF {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated by finutil | %s", generatedAt.Format("2006-01-02"))), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  "+title), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	return &reportPDF{pdf: pdf, tr: tr}
}

func (d *reportPDF) section(title, content string) {
	if content == "" {
		return
	}
	pdf := d.pdf

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, d.tr(title))
	pdf.Ln(7)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	pdf.MultiCell(190, 5, d.tr(content), "", "L", false)
	pdf.Ln(8)
}

func (d *reportPDF) save(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("error writing PDF file: %w", err)
	}
	return nil
}
