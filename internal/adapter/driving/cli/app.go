package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledgerlab/finutil/internal/adapter/driven/config"
	"github.com/ledgerlab/finutil/internal/application/usecase"
	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/shared/types"
	"github.com/ledgerlab/finutil/pkg/version"
	"github.com/spf13/cobra"
)

// Nomes de arquivo padrão de cada comando.
const (
	defaultExpenseInput     = "purchases.csv"
	defaultExpenseOutput    = "Monthly_Summary.txt"
	defaultProfitLossInput  = "financial_data.csv"
	defaultProfitLossOutput = "profit_loss_report.txt"
	defaultProcessedData    = "processed_data.json"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd *cobra.Command
	version string

	expenseUseCase    *usecase.ExpenseUseCase
	profitLossUseCase *usecase.ProfitLossUseCase
	renameUseCase     *usecase.RenameUseCase
	configRepo        repository.ConfigRepository
	console           types.ConsoleInterface

	config *types.Config
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		config:  &types.Config{},
	}

	rootCmd := &cobra.Command{
		Use:               "finutil",
		Short:             "Personal finance and file utilities",
		Long:              "finutil summarizes expense files, computes profit/loss from transaction files and batch-renames files.",
		Version:           version.FormatVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.prepare,
	}

	rootCmd.SetVersionTemplate(`{{printf "finutil version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file (default: $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for additional report files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", nil, "Additional report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the additional report files (default: current directory)")
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Prompt for every option instead of reading flags")
	rootCmd.PersistentFlags().Bool("no-banner", false, "Do not print the welcome banner")

	rootCmd.AddCommand(app.newExpensesCommand(), app.newProfitLossCommand(), app.newRenameCommand())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// ExecuteContext runs the CLI application with ctx propagated to the use cases.
func (app *CLIApp) ExecuteContext(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

func (app *CLIApp) newExpensesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Summarize expenses by category and month",
		Args:  cobra.NoArgs,
		RunE:  app.runExpenses,
	}
	cmd.Flags().StringP("input", "f", defaultExpenseInput, "Expense CSV file (Category, Amount, Date)")
	cmd.Flags().StringP("output", "o", defaultExpenseOutput, "Text file receiving the summary")
	cmd.Flags().StringSliceP("categories", "c", nil, "Only include these categories (comma-separated)")
	cmd.Flags().String("from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End date, inclusive (YYYY-MM-DD)")
	return cmd
}

func (app *CLIApp) newProfitLossCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pnl",
		Short: "Compute revenue, expenses and net profit or loss",
		Args:  cobra.NoArgs,
		RunE:  app.runProfitLoss,
	}
	cmd.Flags().StringP("input", "f", defaultProfitLossInput, "Transactions CSV file (Date, Type, Amount, Description)")
	cmd.Flags().StringP("output", "o", defaultProfitLossOutput, "Text file receiving the report")
	cmd.Flags().StringSlice("types", nil, "Only include these transaction types: revenue, expense")
	cmd.Flags().String("from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End date, inclusive (YYYY-MM-DD)")
	cmd.Flags().String("save-json", "", "Also save the processed transactions to this JSON file")
	return cmd
}

func (app *CLIApp) newRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Batch rename the files of a directory",
		Args:  cobra.NoArgs,
		RunE:  app.runRename,
	}
	cmd.Flags().StringP("path", "p", "", "Directory whose files are renamed (default: last used directory)")
	cmd.Flags().String("op", "", "Operation: add-prefix, add-suffix, replace, number, lower, upper")
	cmd.Flags().String("text", "", "Text for add-prefix and add-suffix")
	cmd.Flags().String("old", "", "Text to replace")
	cmd.Flags().String("new", "", "Replacement text")
	cmd.Flags().Int("start", 1, "First number for the number operation")
	cmd.Flags().BoolP("yes", "Y", false, "Rename without asking for confirmation")
	cmd.Flags().Bool("dry-run", false, "Only show the preview")
	return cmd
}

// prepare roda antes de qualquer subcomando: banner, checagem de versão e
// carga do arquivo de configuração.
func (app *CLIApp) prepare(cmd *cobra.Command, _ []string) error {
	noBanner, _ := cmd.Flags().GetBool("no-banner")
	if !noBanner && !config.BannerDisabled() {
		displayWelcomeBanner(app.version)
		go checkLatestVersion(app.version)
	}

	configFile, _ := cmd.Flags().GetString("config-file")
	if configFile == "" {
		configFile = config.DefaultConfigFile()
	}
	if configFile == "" {
		return nil
	}

	cfg, err := app.configRepo.LoadConfigFile(configFile)
	if err != nil {
		return fmt.Errorf("invalid config file '%s': %w", configFile, err)
	}
	app.config = cfg
	if app.console != nil {
		app.console.LogInfo("Loaded configuration from %s", configFile)
	}
	return nil
}

// commonArgs resolve as flags compartilhadas: flag > arquivo de configuração > padrão.
func (app *CLIApp) commonArgs(cmd *cobra.Command) (types.CommonArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	interactive, _ := cmd.Flags().GetBool("interactive")

	args := types.CommonArgs{
		ConfigFile:  configFile,
		ReportName:  stringOption(cmd, "report-name", app.config.ReportName),
		ReportType:  sliceOption(cmd, "report-type", app.config.ReportType),
		Dir:         stringOption(cmd, "dir", app.config.Dir),
		Interactive: interactive,
	}

	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return args, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return args, err
		}
		args.Dir = absDir
	}

	return args, nil
}

func (app *CLIApp) expenseArgs(cmd *cobra.Command) (*types.ExpenseArgs, error) {
	common, err := app.commonArgs(cmd)
	if err != nil {
		return nil, err
	}
	cfg := app.config.Expenses

	args := &types.ExpenseArgs{
		CommonArgs: common,
		InputFile:  stringOption(cmd, "input", cfg.Input),
		OutputFile: stringOption(cmd, "output", cfg.Output),
		Categories: sliceOption(cmd, "categories", cfg.Categories),
	}
	if args.From, err = parseDate(stringOption(cmd, "from", cfg.From)); err != nil {
		return nil, err
	}
	if args.To, err = parseDate(stringOption(cmd, "to", cfg.To)); err != nil {
		return nil, err
	}

	if common.Interactive {
		if err := promptExpenseArgs(app.console, args); err != nil {
			return nil, err
		}
	}

	return args, types.ValidateDateRange(args.From, args.To)
}

func (app *CLIApp) profitLossArgs(cmd *cobra.Command) (*types.ProfitLossArgs, error) {
	common, err := app.commonArgs(cmd)
	if err != nil {
		return nil, err
	}
	cfg := app.config.ProfitLoss

	args := &types.ProfitLossArgs{
		CommonArgs: common,
		InputFile:  stringOption(cmd, "input", cfg.Input),
		OutputFile: stringOption(cmd, "output", cfg.Output),
		Types:      sliceOption(cmd, "types", cfg.Types),
		SaveJSON:   stringOption(cmd, "save-json", cfg.SaveJSON),
	}
	if args.From, err = parseDate(stringOption(cmd, "from", cfg.From)); err != nil {
		return nil, err
	}
	if args.To, err = parseDate(stringOption(cmd, "to", cfg.To)); err != nil {
		return nil, err
	}
	if args.Types, err = normalizeTypes(args.Types); err != nil {
		return nil, err
	}

	if common.Interactive {
		if err := promptProfitLossArgs(app.console, args); err != nil {
			return nil, err
		}
	}

	return args, types.ValidateDateRange(args.From, args.To)
}

func (app *CLIApp) renameArgs(cmd *cobra.Command) (*types.RenameArgs, error) {
	common, err := app.commonArgs(cmd)
	if err != nil {
		return nil, err
	}

	prefs := app.renameUseCase.Preferences()

	args := &types.RenameArgs{
		CommonArgs: common,
		Directory:  stringOption(cmd, "path", prefs.LastDirectory),
		Operation:  stringOption(cmd, "op", ""),
		Protected:  protectedFiles(app.config.Rename.ProtectedFiles, prefs.ProtectedFiles),
	}
	args.Text, _ = cmd.Flags().GetString("text")
	args.OldText, _ = cmd.Flags().GetString("old")
	args.NewText, _ = cmd.Flags().GetString("new")
	args.Start, _ = cmd.Flags().GetInt("start")
	args.Yes, _ = cmd.Flags().GetBool("yes")
	args.DryRun, _ = cmd.Flags().GetBool("dry-run")

	if common.Interactive {
		if err := promptRenameArgs(app.console, args, prefs.LastOperation); err != nil {
			return nil, err
		}
	}

	if args.Directory == "" {
		args.Directory = "."
	}
	if args.Operation == "" {
		return nil, fmt.Errorf("%w: --op is required", types.ErrInvalidRenameOperation)
	}
	return args, nil
}

func (app *CLIApp) runExpenses(cmd *cobra.Command, _ []string) error {
	args, err := app.expenseArgs(cmd)
	if err != nil {
		return err
	}
	_, err = app.expenseUseCase.Run(cmd.Context(), args)
	return err
}

func (app *CLIApp) runProfitLoss(cmd *cobra.Command, _ []string) error {
	args, err := app.profitLossArgs(cmd)
	if err != nil {
		return err
	}
	_, err = app.profitLossUseCase.Run(cmd.Context(), args)
	return err
}

func (app *CLIApp) runRename(cmd *cobra.Command, _ []string) error {
	args, err := app.renameArgs(cmd)
	if err != nil {
		return err
	}
	_, err = app.renameUseCase.Run(cmd.Context(), args)
	return err
}

// SetExpenseUseCase sets the expense use case for the CLI app.
func (app *CLIApp) SetExpenseUseCase(useCase *usecase.ExpenseUseCase) {
	app.expenseUseCase = useCase
}

// SetProfitLossUseCase sets the profit/loss use case for the CLI app.
func (app *CLIApp) SetProfitLossUseCase(useCase *usecase.ProfitLossUseCase) {
	app.profitLossUseCase = useCase
}

// SetRenameUseCase sets the rename use case for the CLI app.
func (app *CLIApp) SetRenameUseCase(useCase *usecase.RenameUseCase) {
	app.renameUseCase = useCase
}

// SetConfigRepository sets the repository used to read --config-file.
func (app *CLIApp) SetConfigRepository(repo repository.ConfigRepository) {
	app.configRepo = repo
}

// SetConsole sets the console used for prompts and messages.
func (app *CLIApp) SetConsole(console types.ConsoleInterface) {
	app.console = console
}
