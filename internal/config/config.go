package config

import (
	"fmt"
	"strings"

	"github.com/thywilljoshua/finslides/internal/ai"
	"github.com/thywilljoshua/finslides/internal/document"
)

// Config represents the complete configuration structure
type Config struct {
	AI       AIConfig       `yaml:"ai"`
	Document DocumentConfig `yaml:"document"`
	Log      LogConfig      `yaml:"log"`
}

// AIConfig selects the inference provider. The prompt is not configurable.
type AIConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
}

// DocumentConfig controls file selection.
type DocumentConfig struct {
	Accept []string `yaml:"accept"`
	// MaxSizeMB is advisory; oversized files are analyzed anyway.
	MaxSizeMB int `yaml:"max_size_mb"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider: "gemini",
			Model:    ai.DefaultModel,
		},
		Document: DocumentConfig{
			Accept:    append([]string(nil), document.DefaultAccept...),
			MaxSizeMB: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	switch c.AI.Provider {
	case "gemini", "off":
	default:
		return fmt.Errorf("invalid AI provider: %s (must be one of: gemini, off)", c.AI.Provider)
	}
	if c.AI.Provider == "gemini" && strings.TrimSpace(c.AI.Model) == "" {
		return fmt.Errorf("ai.model must not be empty")
	}
	if len(c.Document.Accept) == 0 {
		return fmt.Errorf("document.accept must list at least one media type")
	}
	for _, a := range c.Document.Accept {
		if !strings.Contains(a, "/") {
			return fmt.Errorf("invalid media type pattern: %q", a)
		}
	}
	if c.Document.MaxSizeMB < 0 {
		return fmt.Errorf("document.max_size_mb must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Log.Level)
	}
	return nil
}
