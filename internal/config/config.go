package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2wiki/internal/fileutil"
	"github.com/alnah/go-md2wiki/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidExtension = errors.New("invalid output extension")
)

// AppDir is the directory under the user config dir searched for named configs.
const AppDir = "go-md2wiki"

// DefaultExtension is the output file extension when none is configured.
const DefaultExtension = ".wiki"

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxExtensionLength = 16   // ".wiki", ".mediawiki", ".txt"
)

// Config holds all configuration for the CLI.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Conversion ConversionConfig `yaml:"conversion"`
	Check      CheckConfig      `yaml:"check"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Extension  string `yaml:"extension"`  // Output file extension (default: ".wiki")
}

// ConversionConfig defines the conversion options.
type ConversionConfig struct {
	UseHTMLTables      bool `yaml:"useHtmlTables"`
	PreserveLineBreaks bool `yaml:"preserveLineBreaks"`
}

// CheckConfig defines the check command options.
type CheckConfig struct {
	Strict bool `yaml:"strict"` // Warnings fail the run
}

// Validate checks field lengths and the output extension.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if c.Output.Extension != "" {
		if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
			return err
		}
		if err := ValidateExtension(c.Output.Extension); err != nil {
			return fmt.Errorf("output.extension: %w", err)
		}
	}
	return nil
}

// ValidateExtension checks that ext is a dot followed by a safe file
// extension, such as ".wiki".
func ValidateExtension(ext string) error {
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		return fmt.Errorf("%w: %q (must start with a dot, e.g. %q)", ErrInvalidExtension, ext, DefaultExtension)
	}
	if err := fileutil.ValidateExtension(ext[1:]); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidExtension, ext, err)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:      InputConfig{DefaultDir: ""},
		Output:     OutputConfig{DefaultDir: "", Extension: DefaultExtension},
		Conversion: ConversionConfig{},
		Check:      CheckConfig{Strict: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Fields the file leaves out keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
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

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Output.Extension == "" {
		cfg.Output.Extension = DefaultExtension
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// ./<name>.yaml, ./<name>.yml, then the same names under
// <user config dir>/go-md2wiki/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
