package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/ledgerlab/finutil/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightCyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso com o total informado.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Renaming files").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false). // Manter a barra após concluir
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	// Use o pterm para criar uma tabela visualmente agradável
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayTrendBars exibe gráficos de barras para análise de tendências.
func (c *Console) DisplayTrendBars(monthlyTotals []types.MonthlyTotal) {
	// Encontra o valor máximo para escala
	maxAmount := 0.0
	for _, mt := range monthlyTotals {
		if math.Abs(mt.Amount) > maxAmount {
			maxAmount = math.Abs(mt.Amount)
		}
	}

	if maxAmount == 0 {
		pterm.Warning.Println("All monthly totals are $0.00 for this period")
		return
	}

	tableData := pterm.TableData{
		{"Month", "Total", "", "MoM Change"},
	}

	var prevAmount *float64

	for _, mt := range monthlyTotals {
		barLength := int((math.Abs(mt.Amount) / maxAmount) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevAmount != nil {
			// Mudança percentual mês a mês; gasto maior é ruim, então vermelho.
			if math.Abs(*prevAmount) < 0.01 {
				if math.Abs(mt.Amount) < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = pterm.FgRed.Sprint("N/A")
					barColor = pterm.FgRed.Sprint(bar)
				}
			} else {
				changePercent := ((mt.Amount - *prevAmount) / math.Abs(*prevAmount)) * 100.0

				switch {
				case math.Abs(changePercent) < 0.01:
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				case changePercent > 999:
					change = pterm.FgRed.Sprint(">+999%")
					barColor = pterm.FgRed.Sprint(bar)
				case changePercent < -999:
					change = pterm.FgGreen.Sprint(">-999%")
					barColor = pterm.FgGreen.Sprint(bar)
				case changePercent > 0:
					change = pterm.FgRed.Sprintf("+%.2f%%", changePercent)
					barColor = pterm.FgRed.Sprint(bar)
				default:
					change = pterm.FgGreen.Sprintf("%.2f%%", changePercent)
					barColor = pterm.FgGreen.Sprint(bar)
				}
			}
		}

		tableData = append(tableData, []string{
			mt.Month,
			fmt.Sprintf("$%.2f", mt.Amount),
			barColor,
			change,
		})

		current := mt.Amount
		prevAmount = &current
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Monthly Expense Trend").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}

// AskText pede um texto ao usuário; uma resposta vazia devolve defaultValue.
func (c *Console) AskText(prompt, defaultValue string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultValue).
		Show(prompt)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm faz uma pergunta de sim/não.
func (c *Console) Confirm(prompt string, defaultValue bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(prompt)
}

// Select apresenta uma lista de opções e devolve a escolhida.
func (c *Console) Select(prompt string, options []string, defaultOption string) (string, error) {
	sel := pterm.DefaultInteractiveSelect.WithOptions(options)
	if defaultOption != "" {
		sel = sel.WithDefaultOption(defaultOption)
	}
	return sel.Show(prompt)
}
