package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2wiki/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2WIKI_CONFIG: config file name or path
	InputDir   string // MD2WIKI_INPUT_DIR: default input directory
	OutputDir  string // MD2WIKI_OUTPUT_DIR: default output directory
	HTMLTables *bool  // MD2WIKI_HTML_TABLES: emit HTML tables
	Workers    int    // MD2WIKI_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2WIKI_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2WIKI_CONFIG":      true,
	"MD2WIKI_INPUT_DIR":   true,
	"MD2WIKI_OUTPUT_DIR":  true,
	"MD2WIKI_HTML_TABLES": true,
	"MD2WIKI_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparseable values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2WIKI_CONFIG"),
		InputDir:   os.Getenv("MD2WIKI_INPUT_DIR"),
		OutputDir:  os.Getenv("MD2WIKI_OUTPUT_DIR"),
	}

	if v := os.Getenv("MD2WIKI_HTML_TABLES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.HTMLTables = &b
		}
	}

	if workers := os.Getenv("MD2WIKI_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes warnings for unrecognized MD2WIKI_* variables.
// Helps catch typos like MD2WIKI_OUTPUT instead of MD2WIKI_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MD2WIKI_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values on top of the config
// file. CLI flags are merged afterwards, giving:
// CLI flags > env vars > config file > defaults
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.HTMLTables != nil {
		cfg.Conversion.UseHTMLTables = *env.HTMLTables
	}
}
