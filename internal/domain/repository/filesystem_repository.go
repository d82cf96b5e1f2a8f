package repository

// FileSystemRepository lists and renames files of a single directory.
type FileSystemRepository interface {
	// ValidateDirectory returns the absolute path of dir if it is a readable directory.
	ValidateDirectory(dir string) (string, error)
	// ListFiles returns the sorted names of the regular files in dir.
	ListFiles(dir string) ([]string, error)
	Exists(dir, name string) bool
	// IsCaseSensitive probes whether dir lives on a case-sensitive filesystem.
	IsCaseSensitive(dir string) bool
	Rename(dir, oldName, newName string) error
}
