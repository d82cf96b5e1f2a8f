package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

// NewName computes the name original gets under op. index is the position of
// the file in the listing and only matters for AddNumbers.
func NewName(original string, op entity.RenameOperation, index int) string {
	if original == "" || op == nil {
		return original
	}

	ext := filepath.Ext(original)
	name := strings.TrimSuffix(original, ext)
	// Arquivos ocultos como ".env" não têm extensão.
	if name == "" {
		name, ext = original, ""
	}

	switch o := op.(type) {
	case entity.AddPrefix:
		return o.Text + name + ext
	case entity.AddSuffix:
		return name + o.Text + ext
	case entity.ReplaceText:
		if o.Old == "" {
			return original
		}
		return strings.ReplaceAll(name, o.Old, o.New) + ext
	case entity.AddNumbers:
		return fmt.Sprintf("%s_%03d%s", name, o.Start+index, ext)
	case entity.MakeLowercase:
		return strings.ToLower(name) + strings.ToLower(ext)
	case entity.MakeUppercase:
		return strings.ToUpper(name) + strings.ToUpper(ext)
	default:
		return original
	}
}

// PlanRenames computes the target name of every file. Files whose name matches
// one of protected (case-insensitively) are never renamed.
func PlanRenames(files []string, op entity.RenameOperation, protected []string) []entity.RenamePlanEntry {
	plan := make([]entity.RenamePlanEntry, 0, len(files))
	for i, f := range files {
		entry := entity.RenamePlanEntry{Original: f, Target: NewName(f, op, i)}
		switch {
		case isProtected(f, protected):
			entry.Status = entity.RenameProtected
			entry.Target = f
		case entry.Target == f:
			entry.Status = entity.RenameUnchanged
		default:
			entry.Status = entity.RenamePending
		}
		plan = append(plan, entry)
	}
	return plan
}

// PendingRenames counts the entries that would actually change a name.
func PendingRenames(plan []entity.RenamePlanEntry) int {
	n := 0
	for _, e := range plan {
		if e.Status == entity.RenamePending {
			n++
		}
	}
	return n
}

// ParseRenameOperation builds an operation from its command-line name and
// parameters.
func ParseRenameOperation(kind entity.RenameKind, text, oldText, newText string, start int) (entity.RenameOperation, error) {
	switch kind {
	case entity.RenameAddPrefix:
		if text == "" {
			return nil, fmt.Errorf("%w: %s requires --text", types.ErrInvalidRenameOperation, kind)
		}
		return entity.AddPrefix{Text: text}, nil
	case entity.RenameAddSuffix:
		if text == "" {
			return nil, fmt.Errorf("%w: %s requires --text", types.ErrInvalidRenameOperation, kind)
		}
		return entity.AddSuffix{Text: text}, nil
	case entity.RenameReplace:
		if oldText == "" {
			return nil, fmt.Errorf("%w: %s requires --old", types.ErrInvalidRenameOperation, kind)
		}
		return entity.ReplaceText{Old: oldText, New: newText}, nil
	case entity.RenameNumber:
		if start < 0 {
			return nil, fmt.Errorf("%w: %s requires a non-negative --start, got %d", types.ErrInvalidRenameOperation, kind, start)
		}
		return entity.AddNumbers{Start: start}, nil
	case entity.RenameLower:
		return entity.MakeLowercase{}, nil
	case entity.RenameUpper:
		return entity.MakeUppercase{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown operation %q", types.ErrInvalidRenameOperation, kind)
	}
}

func isProtected(name string, protected []string) bool {
	for _, p := range protected {
		if strings.EqualFold(name, p) {
			return true
		}
	}
	return false
}
