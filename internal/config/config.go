// Package config loads CLI configuration files for mdsplit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsplit/internal/fileutil"
	"github.com/alnah/go-mdsplit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all file-based configuration for site generation.
// Command-line flags override any value set here.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Split  SplitConfig  `yaml:"split"`
	Images ImagesConfig `yaml:"images"`
	CSS    CSSConfig    `yaml:"css"`
}

// OutputConfig defines output destination and naming options.
type OutputConfig struct {
	Dir        string `yaml:"dir"`        // Output directory (empty = timestamped dir next to input)
	Name       string `yaml:"name"`       // Base name for page files (empty = derive from input filename)
	IndexFirst bool   `yaml:"indexFirst"` // First page becomes index.html
}

// SplitConfig defines where page boundaries are placed.
type SplitConfig struct {
	Level int `yaml:"level"` // Heading level that starts a new page (default: 1)
}

// ImagesConfig defines image asset options.
type ImagesConfig struct {
	Subdir string `yaml:"subdir"` // Images subdirectory next to the input file (empty = none)
}

// CSSConfig defines stylesheet options.
type CSSConfig struct {
	File string `yaml:"file"` // External stylesheet filename (empty = embed default styles)
}

// DefaultConfig returns a neutral configuration with all options unset.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdsplit/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdsplit", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
