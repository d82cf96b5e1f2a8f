package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Environment variables read at startup.
const (
	EnvConfigFile = "FINUTIL_CONFIG"
	EnvNoBanner   = "FINUTIL_NO_BANNER"
)

const preferencesFile = "finutil.json"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadEnvFile carrega o arquivo .env, se existir. A ausência do arquivo não é erro.
func LoadEnvFile(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// DefaultConfigFile returns the config path set through FINUTIL_CONFIG.
func DefaultConfigFile() string {
	return strings.TrimSpace(os.Getenv(EnvConfigFile))
}

// BannerDisabled reports whether FINUTIL_NO_BANNER is set to a truthy value.
func BannerDisabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvNoBanner))) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// DefaultSearchPaths returns the locations where rename preferences are looked
// up, in priority order: ~/.finutil.json, ~/finutil.json, ./finutil.json.
func DefaultSearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, "."+preferencesFile),
			filepath.Join(home, preferencesFile),
		)
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, preferencesFile))
	}
	return paths
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, ext)
	}

	return &config, nil
}

// SaveConfigFile grava a configuração no formato indicado pela extensão.
func (r *ConfigRepositoryImpl) SaveConfigFile(filePath string, config *types.Config) error {
	var (
		data []byte
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".toml":
		data, err = toml.Marshal(*config)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		return fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("error encoding config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// LoadPreferences returns the first config among searchPaths that exists and
// parses. A corrupted file is skipped; when nothing is found an empty config
// is returned with an empty path.
func (r *ConfigRepositoryImpl) LoadPreferences(searchPaths []string) (*types.Config, string, error) {
	var lastErr error
	for _, p := range searchPaths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		cfg, err := r.LoadConfigFile(p)
		if err != nil {
			lastErr = err
			continue
		}
		return cfg, p, nil
	}
	return &types.Config{}, "", lastErr
}

// SavePreferences tenta cada caminho em ordem e para no primeiro que funcionar.
func (r *ConfigRepositoryImpl) SavePreferences(searchPaths []string, config *types.Config) (string, error) {
	var errs []error
	for _, p := range searchPaths {
		if err := r.SaveConfigFile(p, config); err != nil {
			errs = append(errs, err)
			continue
		}
		return p, nil
	}
	if len(errs) == 0 {
		return "", errors.New("no preference path available")
	}
	return "", errors.Join(errs...)
}
