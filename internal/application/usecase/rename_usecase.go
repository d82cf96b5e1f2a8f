package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/domain/service"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

// RenameUseCase previews and applies a batch rename in one directory.
type RenameUseCase struct {
	fsRepo      repository.FileSystemRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
	searchPaths []string
}

// NewRenameUseCase creates a new rename use case. searchPaths lists, in
// priority order, where preferences are read from and saved to.
func NewRenameUseCase(
	fsRepo repository.FileSystemRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
	searchPaths []string,
) *RenameUseCase {
	return &RenameUseCase{
		fsRepo:      fsRepo,
		configRepo:  configRepo,
		console:     console,
		searchPaths: append([]string(nil), searchPaths...),
	}
}

// Preferences devolve as preferências salvas da última execução.
func (uc *RenameUseCase) Preferences() types.RenameConfig {
	cfg, _, err := uc.configRepo.LoadPreferences(uc.searchPaths)
	if err != nil {
		uc.console.LogWarning("Could not load preferences: %v", err)
	}
	if cfg == nil {
		return types.RenameConfig{}
	}
	return cfg.Rename
}

// Run lists the files of args.Directory, shows the preview and, once
// confirmed, renames them.
func (uc *RenameUseCase) Run(ctx context.Context, args *types.RenameArgs) (entity.RenameResult, error) {
	var result entity.RenameResult

	dir, err := uc.fsRepo.ValidateDirectory(args.Directory)
	if err != nil {
		return result, err
	}

	op, err := service.ParseRenameOperation(entity.RenameKind(args.Operation), args.Text, args.OldText, args.NewText, args.Start)
	if err != nil {
		return result, err
	}

	files, err := uc.fsRepo.ListFiles(dir)
	if err != nil {
		return result, err
	}
	if len(files) == 0 {
		return result, fmt.Errorf("%w: %s", types.ErrNoFilesFound, dir)
	}
	uc.console.LogInfo("Found %d file(s) in %s", len(files), dir)

	plan := service.PlanRenames(files, op, args.Protected)
	uc.displayPreview(plan)

	pending := service.PendingRenames(plan)
	if pending == 0 {
		uc.console.LogInfo("No files would be renamed.")
		return result, nil
	}

	if args.DryRun {
		uc.console.LogInfo("Dry run: %d file(s) would be renamed", pending)
		return result, nil
	}

	if !args.Yes {
		ok, err := uc.console.Confirm(fmt.Sprintf("Rename %d file(s)?", pending), false)
		if err != nil {
			return result, err
		}
		if !ok {
			uc.console.LogWarning("Operation cancelled.")
			return result, nil
		}
	}

	result = uc.execute(ctx, dir, plan, pending)
	uc.displayResult(result)
	uc.savePreferences(dir, args.Operation)

	return result, ctx.Err()
}

func (uc *RenameUseCase) displayPreview(plan []entity.RenamePlanEntry) {
	table := uc.console.CreateTable()
	table.AddColumn("Current Name")
	table.AddColumn("New Name")
	for _, e := range plan {
		target := e.Target
		switch e.Status {
		case entity.RenameUnchanged:
			target = "(no change)"
		case entity.RenameProtected:
			target = "(protected)"
		}
		table.AddRow(e.Original, target)
	}
	uc.console.Print(table.Render())
}

// execute aplica o plano. Alvos existentes e conflitos de caixa em sistemas
// de arquivos que não diferenciam maiúsculas são ignorados e reportados.
func (uc *RenameUseCase) execute(ctx context.Context, dir string, plan []entity.RenamePlanEntry, pending int) entity.RenameResult {
	var result entity.RenameResult

	caseSensitive := uc.fsRepo.IsCaseSensitive(dir)

	present := make(map[string]int, len(plan))
	for _, e := range plan {
		present[strings.ToLower(e.Original)]++
	}

	progress := uc.console.ProgressWithTotal(pending)
	defer progress.Stop()

	for _, e := range plan {
		if e.Status != entity.RenamePending {
			continue
		}
		if ctx.Err() != nil {
			break
		}

		problem := uc.checkTarget(dir, e, caseSensitive, present)
		if problem == "" {
			if err := uc.fsRepo.Rename(dir, e.Original, e.Target); err != nil {
				problem = err.Error()
			}
		}

		if problem != "" {
			result.Skipped++
			result.Problems = append(result.Problems, problem)
			uc.console.LogWarning("Skipped %s: %s", e.Original, problem)
		} else {
			result.Renamed++
			present[strings.ToLower(e.Original)]--
			present[strings.ToLower(e.Target)]++
		}
		progress.Increment()
	}

	return result
}

func (uc *RenameUseCase) checkTarget(dir string, e entity.RenamePlanEntry, caseSensitive bool, present map[string]int) string {
	if !uc.fsRepo.Exists(dir, e.Original) {
		return fmt.Sprintf("source file %s no longer exists", e.Original)
	}

	sameFile := !caseSensitive && strings.EqualFold(e.Original, e.Target)
	if sameFile {
		return ""
	}

	if uc.fsRepo.Exists(dir, e.Target) {
		return fmt.Sprintf("target file %s already exists", e.Target)
	}
	if !caseSensitive && present[strings.ToLower(e.Target)] > 0 {
		return fmt.Sprintf("case conflict: %s would clash with an existing file on a case-insensitive filesystem", e.Target)
	}
	return ""
}

func (uc *RenameUseCase) displayResult(result entity.RenameResult) {
	uc.console.LogSuccess("Renamed %d file(s)", result.Renamed)
	if len(result.Problems) > 0 {
		uc.console.LogWarning("%d problem(s) encountered:", len(result.Problems))
		for _, p := range result.Problems {
			uc.console.Printf("  - %s\n", p)
		}
	}
}

func (uc *RenameUseCase) savePreferences(dir, operation string) {
	cfg, _, _ := uc.configRepo.LoadPreferences(uc.searchPaths)
	if cfg == nil {
		cfg = &types.Config{}
	}
	cfg.Rename.LastDirectory = dir
	cfg.Rename.LastOperation = operation

	if _, err := uc.configRepo.SavePreferences(uc.searchPaths, cfg); err != nil {
		uc.console.LogWarning("Could not save preferences: %v", err)
	}
}
