// Package config loads and persists YAML configuration from
// ~/.llmshell/config.yaml (overridable via LLMSHELL_CONFIG).
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/llmshell/llmshell/assets"
	"github.com/llmshell/llmshell/internal/domain"
	"github.com/llmshell/llmshell/internal/ports"
)

// FileLoader loads and saves the configuration file.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path means the default
// location resolution applies.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults; a present file is merged over them so new keys pick up
// default values.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Save writes the full configuration back to disk.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, raw)
}

// Path resolves the active config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("LLMSHELL_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".llmshell", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

// Defaults returns the embedded default configuration with hydration
// applied, for comparison against a loaded config.
func Defaults() domain.Config {
	return hydrateDefaults(defaultConfig())
}

func defaultConfig() domain.Config {
	var cfg domain.Config
	// The embedded defaults are authoritative; a parse failure here is a
	// build defect, so fall back to hard-coded values instead of erroring.
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		cfg = domain.Config{
			ConfigFormatVersion: "1",
			Provider:            "openai",
			Providers: []domain.ProviderSettings{
				{Name: "openai", Model: "gpt-3.5-turbo", Temperature: 0.1, BaseURL: "https://api.openai.com/v1"},
			},
		}
	}
	return cfg
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Provider == "" && len(cfg.Providers) > 0 {
		cfg.Provider = cfg.Providers[0].Name
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = domain.DefaultTheme
	}
	if cfg.UI.MaxOutputLines == 0 {
		cfg.UI.MaxOutputLines = domain.DefaultMaxOutputLines
	}
	if cfg.Safety.TimeoutSeconds == 0 {
		cfg.Safety.TimeoutSeconds = domain.DefaultTimeoutSeconds
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
