// Package config holds the run options for the rename tool and validates them.
package config

import (
	"fmt"
	"strings"

	"rename/internal/journal"
	"rename/internal/output"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	MissingDirectory ConfigErrorType = "MISSING_DIRECTORY"
	ConflictingModes ConfigErrorType = "CONFLICTING_MODES"
	InvalidLogFile   ConfigErrorType = "INVALID_LOG_FILE"
	InvalidColorMode ConfigErrorType = "INVALID_COLOR_MODE"
)

// ConfigError represents an invalid combination of options.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Options holds all settings for a single invocation.
type Options struct {
	Directory string // Tree to normalize; ignored for undo
	DryRun    bool   // Report the plan without renaming
	Undo      bool   // Replay the log in reverse instead of renaming
	LogFile   string // Where the rename log is written and read
	Verbose   bool
	Color     string // auto, always or never

	// SkipNormalizedDirs stops scheduling directories whose names are
	// already canonical. Off by default: every directory is renamed.
	SkipNormalizedDirs bool
}

// DefaultOptions returns options with the log in the working directory.
func DefaultOptions() Options {
	return Options{
		LogFile: journal.DefaultLogFile,
		Color:   string(output.ColorAuto),
	}
}

// Validate checks that the options describe a runnable invocation.
func (o *Options) Validate() error {
	if o.DryRun && o.Undo {
		return &ConfigError{
			Type:    ConflictingModes,
			Message: "--dry-run and --undo cannot be combined",
		}
	}

	if !o.Undo && strings.TrimSpace(o.Directory) == "" {
		return &ConfigError{
			Type:    MissingDirectory,
			Message: "a directory is required",
		}
	}

	if strings.TrimSpace(o.LogFile) == "" {
		return &ConfigError{
			Type:    InvalidLogFile,
			Message: "log file path cannot be empty",
		}
	}

	if _, err := output.ParseColorMode(o.Color); err != nil {
		return &ConfigError{
			Type:    InvalidColorMode,
			Message: err.Error(),
		}
	}

	return nil
}

// ColorMode returns the parsed color mode, falling back to auto.
func (o *Options) ColorMode() output.ColorMode {
	mode, err := output.ParseColorMode(o.Color)
	if err != nil {
		return output.ColorAuto
	}
	return mode
}
