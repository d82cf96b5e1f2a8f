package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	ReportName string   `json:"report_name,omitempty" yaml:"report_name,omitempty" toml:"report_name,omitempty"`
	ReportType []string `json:"report_type,omitempty" yaml:"report_type,omitempty" toml:"report_type,omitempty"`
	Dir        string   `json:"dir,omitempty" yaml:"dir,omitempty" toml:"dir,omitempty"`

	Expenses   ExpenseConfig    `json:"expenses" yaml:"expenses" toml:"expenses"`
	ProfitLoss ProfitLossConfig `json:"profit_loss" yaml:"profit_loss" toml:"profit_loss"`
	Rename     RenameConfig     `json:"rename" yaml:"rename" toml:"rename"`
}

// ExpenseConfig holds the defaults of the expenses command.
type ExpenseConfig struct {
	Input      string   `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty"`
	Output     string   `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty"`
	From       string   `json:"from,omitempty" yaml:"from,omitempty" toml:"from,omitempty"`
	To         string   `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
}

// ProfitLossConfig holds the defaults of the pnl command.
type ProfitLossConfig struct {
	Input    string   `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty"`
	Output   string   `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
	Types    []string `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty"`
	From     string   `json:"from,omitempty" yaml:"from,omitempty" toml:"from,omitempty"`
	To       string   `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
	SaveJSON string   `json:"save_json,omitempty" yaml:"save_json,omitempty" toml:"save_json,omitempty"`
}

// RenameConfig holds the rename preferences. LastDirectory and LastOperation
// are rewritten after every rename run.
type RenameConfig struct {
	LastDirectory  string   `json:"last_directory,omitempty" yaml:"last_directory,omitempty" toml:"last_directory,omitempty"`
	LastOperation  string   `json:"last_operation,omitempty" yaml:"last_operation,omitempty" toml:"last_operation,omitempty"`
	ProtectedFiles []string `json:"protected_files,omitempty" yaml:"protected_files,omitempty" toml:"protected_files,omitempty"`
}
