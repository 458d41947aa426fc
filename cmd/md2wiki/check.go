package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/hints"
)

// ErrWarnings reports that check --strict found unconvertible constructs.
var ErrWarnings = errors.New("warnings found")

// runCheck reports the constructs of each input that conversion leaves
// unhandled, one "path:line: kind: message" line per warning.
func runCheck(ctx context.Context, positionalArgs []string, flags *checkFlags, env *Environment) error {
	cfg, err := loadConfiguration(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	strict := cfg.Check.Strict
	if flags.strictSet {
		strict = flags.strict
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	var total int
	if inputPath == stdinPath {
		content, err := io.ReadAll(env.Stdin)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		n, err := checkContent(env.Stdout, "<stdin>", content, flags.common.frontMatter)
		if err != nil {
			return err
		}
		total = n
	} else {
		files, err := discoverFiles(inputPath, "", cfg.Output.Extension)
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		if len(files) == 0 {
			return fmt.Errorf("%w in %s%s", ErrNoMarkdownFiles, inputPath, hints.ForNoMarkdownFiles())
		}

		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("check interrupted: %w", err)
			}
			content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
			if err != nil {
				return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
			}
			n, err := checkContent(env.Stdout, f.InputPath, content, flags.common.frontMatter)
			if err != nil {
				return fmt.Errorf("%s: %w", f.InputPath, err)
			}
			total += n
		}
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%d warning(s)\n", total)
	}
	if strict && total > 0 {
		return fmt.Errorf("%w: %d warning(s)%s", ErrWarnings, total, hints.ForWarnings(total))
	}
	return nil
}

// checkContent writes the warnings for one source and returns their count.
func checkContent(w io.Writer, name string, content []byte, frontMatter bool) (int, error) {
	doc, err := loadDocument(content, frontMatter)
	if err != nil {
		return 0, err
	}
	warnings := md2wiki.CheckDocument(doc)
	for _, warn := range warnings {
		fmt.Fprintf(w, "%s:%d: %s: %s\n", name, warn.Line, warn.Kind, warn.Message)
	}
	return len(warnings), nil
}
