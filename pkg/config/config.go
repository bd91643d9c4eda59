// Package config loads the lax tool configuration from YAML.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsimmons/lax/pkg/errors"
	"github.com/jsimmons/lax/pkg/logger"
)

// Token output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Diagnostic sinks
const (
	DiagnosticsConsole = "console"
	DiagnosticsLog     = "log"
)

// Config holds the lax CLI configuration
type Config struct {
	// Prompt is the interactive session prompt
	Prompt string `yaml:"prompt"`
	// HistoryFile is where the interactive session stores its line history
	HistoryFile string `yaml:"history_file"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// TokenFormat is one of text, json
	TokenFormat string `yaml:"token_format"`
	// Diagnostics selects the sink for lexical errors: console or log
	Diagnostics string `yaml:"diagnostics"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Prompt:      "lax> ",
		HistoryFile: "/tmp/.lax-history",
		LogLevel:    "info",
		TokenFormat: FormatText,
		Diagnostics: DiagnosticsConsole,
	}
}

// Load reads and validates a configuration file. Missing fields keep
// their defaults.
func Load(path string, log *logger.Logger) (*Config, error) {
	if log != nil {
		log.Debug("Loading configuration", slog.String("path", path))
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.ConfigNotFound(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(
			err,
			errors.ErrCodeConfigParseError,
			fmt.Sprintf("Failed to read configuration file: %s", path),
			"Permission denied or file is not readable",
			"Check file permissions with 'ls -l' and ensure the file is readable",
		)
	}

	// Strict mode rejects unknown fields so typos surface at load time
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, errors.ConfigParseError(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(
			err,
			errors.ErrCodeConfigValidation,
			"Configuration validation failed",
			"Configuration contains invalid values",
			"Review the error details and fix the configuration file",
		)
	}

	if log != nil {
		log.Info("Configuration loaded",
			slog.String("path", path),
			slog.String("token_format", cfg.TokenFormat),
			slog.String("diagnostics", cfg.Diagnostics),
		)
	}

	return cfg, nil
}

// Validate checks the enumerated fields
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s (expected debug, info, warn, or error)", c.LogLevel)
	}

	switch c.TokenFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid token_format: %s (expected %s or %s)", c.TokenFormat, FormatText, FormatJSON)
	}

	switch c.Diagnostics {
	case DiagnosticsConsole, DiagnosticsLog:
	default:
		return fmt.Errorf("invalid diagnostics: %s (expected %s or %s)", c.Diagnostics, DiagnosticsConsole, DiagnosticsLog)
	}

	if c.Prompt == "" {
		return fmt.Errorf("prompt must not be empty")
	}

	return nil
}
