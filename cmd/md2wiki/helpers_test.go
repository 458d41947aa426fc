package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and file helpers
// ---------------------------------------------------------------------------

// newTestEnv returns an Environment reading stdin and capturing output.
func newTestEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// defaultConvertFlags returns convert flags as parsed from an empty command line.
func defaultConvertFlags() *convertFlags {
	return &convertFlags{common: commonFlags{frontMatter: true, quiet: true}}
}

// defaultCheckFlags returns check flags as parsed from an empty command line.
func defaultCheckFlags() *checkFlags {
	return &checkFlags{common: commonFlags{frontMatter: true}}
}
