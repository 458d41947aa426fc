// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// appDir identifies the user config directory of the CLI in searched paths.
const appDir = "go-md2wiki"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/"+appDir+"/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidExtension returns hints for a rejected output extension.
func ForInvalidExtension() string {
	return format(`use a dot-prefixed extension such as ".wiki" or ".txt"`)
}

// ForNoMarkdownFiles returns hints when a directory holds no Markdown sources.
func ForNoMarkdownFiles() string {
	return format("only .md and .markdown files are converted")
}

// ForWarnings returns hints for lint warnings that failed a strict run.
func ForWarnings(count int) string {
	if count == 0 {
		return ""
	}
	return format("run without --strict to treat warnings as informational")
}

// ForFrontMatter returns hints for front matter decoding errors.
func ForFrontMatter() string {
	return formatHints([]string{
		"front matter must be YAML between --- lines",
		"use --front-matter=false to convert the file as plain Markdown",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
