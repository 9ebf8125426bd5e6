package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.finslides.yaml",
	"~/.config/finslides/config.yaml",
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	envFiles    []string
	warn        func(path string, err error)
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		envFiles:    []string{".env"},
		warn: func(path string, err error) {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", path, err)
		},
	}
}

// LoadConfig loads configuration from, lowest priority first:
// built-in defaults, ~/.config/finslides/config.yaml, ./.finslides.yaml,
// .env, then environment variables. Flags are applied by the caller.
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		if err := l.loadFromFile(cfg, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			path := expandPath(l.configPaths[i])
			if !fileExists(path) {
				continue
			}
			if err := l.loadFromFile(cfg, path); err != nil {
				l.warn(path, err)
			}
		}
	}

	// .env never overrides variables already set in the environment
	for _, f := range l.envFiles {
		if fileExists(f) {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", f, err)
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (l *Loader) loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - config paths come from the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	mergeConfigs(cfg, &fileCfg)
	return nil
}

// mergeConfigs copies every non-zero field of src over dst
func mergeConfigs(dst, src *Config) {
	if src.AI.Provider != "" {
		dst.AI.Provider = src.AI.Provider
	}
	if src.AI.Model != "" {
		dst.AI.Model = src.AI.Model
	}
	if src.AI.APIKey != "" {
		dst.AI.APIKey = src.AI.APIKey
	}
	if src.AI.BaseURL != "" {
		dst.AI.BaseURL = src.AI.BaseURL
	}
	if len(src.Document.Accept) > 0 {
		dst.Document.Accept = src.Document.Accept
	}
	if src.Document.MaxSizeMB != 0 {
		dst.Document.MaxSizeMB = src.Document.MaxSizeMB
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.JSON {
		dst.Log.JSON = true
	}
}

func applyEnvOverrides(cfg *Config) error {
	envMappings := []struct {
		name string
		set  func(string) error
	}{
		// the provider SDKs' conventional names first, ours win
		{"GOOGLE_API_KEY", func(v string) error { cfg.AI.APIKey = v; return nil }},
		{"GEMINI_API_KEY", func(v string) error { cfg.AI.APIKey = v; return nil }},
		{"FINSLIDES_AI_PROVIDER", func(v string) error { cfg.AI.Provider = v; return nil }},
		{"FINSLIDES_AI_MODEL", func(v string) error { cfg.AI.Model = v; return nil }},
		{"FINSLIDES_AI_BASE_URL", func(v string) error { cfg.AI.BaseURL = v; return nil }},
		{"FINSLIDES_DOCUMENT_ACCEPT", func(v string) error { cfg.Document.Accept = splitList(v); return nil }},
		{"FINSLIDES_DOCUMENT_MAX_SIZE_MB", func(v string) error { return parseInt(v, &cfg.Document.MaxSizeMB) }},
		{"FINSLIDES_LOG_LEVEL", func(v string) error { cfg.Log.Level = strings.ToLower(v); return nil }},
		{"FINSLIDES_LOG_JSON", func(v string) error { return parseBool(v, &cfg.Log.JSON) }},
	}
	for _, m := range envMappings {
		if v := os.Getenv(m.name); v != "" {
			if err := m.set(v); err != nil {
				return fmt.Errorf("invalid value for %s: %w", m.name, err)
			}
		}
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseInt(v string, dst *int) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func parseBool(v string, dst *bool) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
