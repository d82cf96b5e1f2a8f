package types

import "time"

// CommonArgs holds the flags shared by every subcommand.
type CommonArgs struct {
	ConfigFile  string
	ReportName  string
	ReportType  []string
	Dir         string
	Interactive bool
}

// ExpenseArgs represents the resolved arguments of the expenses command.
type ExpenseArgs struct {
	CommonArgs
	InputFile  string
	OutputFile string
	Categories []string
	From       *time.Time
	To         *time.Time
}

// ProfitLossArgs represents the resolved arguments of the pnl command.
type ProfitLossArgs struct {
	CommonArgs
	InputFile  string
	OutputFile string
	Types      []string
	From       *time.Time
	To         *time.Time
	SaveJSON   string
}

// RenameArgs represents the resolved arguments of the rename command.
type RenameArgs struct {
	CommonArgs
	Directory string
	Operation string
	Text      string
	OldText   string
	NewText   string
	Start     int
	Yes       bool
	DryRun    bool
	Protected []string
}

// ValidateDateRange checks that from is not after to.
func ValidateDateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return ErrInvalidDateRange
	}
	return nil
}
