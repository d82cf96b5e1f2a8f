package repository

import (
	"github.com/ledgerlab/finutil/internal/shared/types"
)

// ConfigRepository defines the interface for loading and saving configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	SaveConfigFile(filePath string, config *types.Config) error

	// LoadPreferences returns the first readable config among searchPaths.
	LoadPreferences(searchPaths []string) (*types.Config, string, error)
	// SavePreferences writes config to the first writable path of searchPaths.
	SavePreferences(searchPaths []string, config *types.Config) (string, error)
}
