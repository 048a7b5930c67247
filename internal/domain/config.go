package domain

import (
	"os"
	"strings"
)

// Config mirrors ~/.llmshell/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Provider            string             `yaml:"provider"`
	Providers           []ProviderSettings `yaml:"providers"`
	UI                  UISettings         `yaml:"ui"`
	Safety              SafetySettings     `yaml:"safety"`
}

// ProviderSettings describes one LLM provider endpoint declared in the config file.
type ProviderSettings struct {
	Name        string  `yaml:"name"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
}

// UISettings captures display toggles.
type UISettings struct {
	Theme             string `yaml:"theme"`
	MaxOutputLines    int    `yaml:"max_output_lines"`
	ShowConfirmations bool   `yaml:"show_confirmations"`
}

// SafetySettings controls the sanitizer and execution bounds.
type SafetySettings struct {
	EnableSanitization bool `yaml:"enable_sanitization"`
	TimeoutSeconds     int  `yaml:"timeout"`
}

// ActiveProvider resolves the settings for the configured provider name.
// An empty name falls back to the first declared provider.
func (c Config) ActiveProvider() (ProviderSettings, bool) {
	name := c.Provider
	if name == "" && len(c.Providers) > 0 {
		return c.Providers[0], true
	}
	for _, p := range c.Providers {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return ProviderSettings{}, false
}

// Credential returns the API key for the provider, preferring the config
// field and falling back to <NAME>_API_KEY, then OPENAI_API_KEY.
func (p ProviderSettings) Credential() string {
	if p.APIKey != "" {
		return p.APIKey
	}
	if key := os.Getenv(strings.ToUpper(p.Name) + "_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("OPENAI_API_KEY")
}
