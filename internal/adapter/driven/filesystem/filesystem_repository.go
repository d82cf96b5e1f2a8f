package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

const probeDir = ".finutil_case_probe"

// FileSystemRepositoryImpl implementa o FileSystemRepository sobre o sistema de arquivos local.
type FileSystemRepositoryImpl struct{}

// NewFileSystemRepository cria uma nova implementação do FileSystemRepository.
func NewFileSystemRepository() repository.FileSystemRepository {
	return &FileSystemRepositoryImpl{}
}

// ValidateDirectory resolve dir para um caminho absoluto e verifica se é um diretório legível.
func (r *FileSystemRepositoryImpl) ValidateDirectory(dir string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", fmt.Errorf("directory path cannot be empty")
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid directory path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("directory '%s' does not exist", absPath)
		}
		return "", fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: '%s'", types.ErrNotADirectory, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("no permission to read directory '%s'", absPath)
		}
		return "", fmt.Errorf("cannot access directory: %w", err)
	}

	return absPath, nil
}

// ListFiles returns the sorted names of the regular files in dir.
func (r *FileSystemRepositoryImpl) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("problem reading directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// Exists reports whether name exists in dir.
func (r *FileSystemRepositoryImpl) Exists(dir, name string) bool {
	_, err := os.Lstat(filepath.Join(dir, name))
	return err == nil
}

// IsCaseSensitive cria um arquivo de teste em minúsculas e verifica se a
// variante em maiúsculas é visível. Se o teste falhar, assume o padrão do SO.
func (r *FileSystemRepositoryImpl) IsCaseSensitive(dir string) bool {
	probe, err := os.MkdirTemp(dir, probeDir)
	if err != nil {
		return osDefaultCaseSensitive()
	}
	defer os.RemoveAll(probe)

	lower := filepath.Join(probe, "testfile.txt")
	if err := os.WriteFile(lower, []byte("test"), 0600); err != nil {
		return osDefaultCaseSensitive()
	}
	_, err = os.Stat(filepath.Join(probe, "TESTFILE.txt"))
	return err != nil
}

// Rename renames oldName to newName inside dir.
func (r *FileSystemRepositoryImpl) Rename(dir, oldName, newName string) error {
	if err := os.Rename(filepath.Join(dir, oldName), filepath.Join(dir, newName)); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("no permission to rename %s: %w", oldName, err)
		}
		return fmt.Errorf("OS error renaming %s: %w", oldName, err)
	}
	return nil
}
