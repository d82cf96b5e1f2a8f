package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

const allTypes = "all"

// promptDate pede uma data opcional. Uma data inválida gera um aviso e
// nenhum filtro é aplicado.
func promptDate(console types.ConsoleInterface, label string, current *time.Time) (*time.Time, error) {
	def := ""
	if current != nil {
		def = current.Format(entity.DateFormat)
	}
	answer, err := console.AskText(label+" (YYYY-MM-DD, empty for none)", def)
	if err != nil {
		return nil, err
	}
	d, err := parseDate(answer)
	if err != nil {
		console.LogWarning("Invalid date format '%s'. No date filter applied.", answer)
		return nil, nil
	}
	return d, nil
}

func promptExpenseArgs(console types.ConsoleInterface, args *types.ExpenseArgs) error {
	var err error
	if args.InputFile, err = console.AskText("Expense CSV file", args.InputFile); err != nil {
		return err
	}
	if args.OutputFile, err = console.AskText("Summary output file", args.OutputFile); err != nil {
		return err
	}

	categories, err := console.AskText("Categories to include (comma-separated, empty for all)", strings.Join(args.Categories, ", "))
	if err != nil {
		return err
	}
	args.Categories = splitList(categories)

	if args.From, err = promptDate(console, "Start date", args.From); err != nil {
		return err
	}
	if args.To, err = promptDate(console, "End date", args.To); err != nil {
		return err
	}
	return nil
}

func promptProfitLossArgs(console types.ConsoleInterface, args *types.ProfitLossArgs) error {
	var err error
	if args.InputFile, err = console.AskText("Transactions CSV file", args.InputFile); err != nil {
		return err
	}
	if args.OutputFile, err = console.AskText("Report output file", args.OutputFile); err != nil {
		return err
	}

	current := allTypes
	if len(args.Types) == 1 {
		current = args.Types[0]
	}
	choice, err := console.Select("Transaction types to include", []string{allTypes, entity.TypeRevenue, entity.TypeExpense}, current)
	if err != nil {
		return err
	}
	args.Types = nil
	if choice != allTypes {
		args.Types = []string{choice}
	}

	if args.From, err = promptDate(console, "Start date", args.From); err != nil {
		return err
	}
	if args.To, err = promptDate(console, "End date", args.To); err != nil {
		return err
	}

	save, err := console.Confirm("Save processed data to JSON?", args.SaveJSON != "")
	if err != nil {
		return err
	}
	if !save {
		args.SaveJSON = ""
		return nil
	}
	def := args.SaveJSON
	if def == "" {
		def = defaultProcessedData
	}
	args.SaveJSON, err = console.AskText("JSON file", def)
	return err
}

func promptRenameArgs(console types.ConsoleInterface, args *types.RenameArgs, lastOperation string) error {
	var err error
	if args.Directory, err = console.AskText("Directory to rename files in", args.Directory); err != nil {
		return err
	}

	options := make([]string, 0, len(entity.RenameKinds))
	for _, k := range entity.RenameKinds {
		options = append(options, string(k))
	}
	current := args.Operation
	if current == "" {
		current = lastOperation
	}
	if args.Operation, err = console.Select("Rename operation", options, current); err != nil {
		return err
	}

	switch entity.RenameKind(args.Operation) {
	case entity.RenameAddPrefix:
		args.Text, err = console.AskText("Prefix to add", args.Text)
	case entity.RenameAddSuffix:
		args.Text, err = console.AskText("Suffix to add", args.Text)
	case entity.RenameReplace:
		if args.OldText, err = console.AskText("Text to replace", args.OldText); err != nil {
			return err
		}
		args.NewText, err = console.AskText("Replace with", args.NewText)
	case entity.RenameNumber:
		var answer string
		if answer, err = console.AskText("Start numbering at", strconv.Itoa(args.Start)); err != nil {
			return err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(answer))
		if convErr != nil || n < 0 {
			console.LogWarning("Invalid start number '%s'. Starting at 1.", answer)
			n = 1
		}
		args.Start = n
	}
	return err
}
