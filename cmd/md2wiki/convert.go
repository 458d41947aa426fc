package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/config"
	"github.com/alnah/go-md2wiki/internal/fileutil"
	"github.com/alnah/go-md2wiki/internal/hints"
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfiguration(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	conv := md2wiki.NewConverter(
		md2wiki.WithHTMLTables(cfg.Conversion.UseHTMLTables),
		md2wiki.WithPreserveLineBreaks(cfg.Conversion.PreserveLineBreaks),
		md2wiki.WithLogger(logger),
	)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if inputPath == stdinPath {
		return convertStdin(conv, flags, env)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputPath, outputDir, cfg.Output.Extension)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoMarkdownFiles, inputPath, hints.ForNoMarkdownFiles())
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	logger.Debug("starting conversion",
		slog.Int("files", len(files)),
		slog.Int("workers", workers),
		slog.Bool("html_tables", cfg.Conversion.UseHTMLTables),
	)

	results := convertBatch(ctx, conv, files, batchOptions{
		workers:     workers,
		frontMatter: flags.common.frontMatter,
		logger:      logger,
	})

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env.Stdout, env.Stderr)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("conversion interrupted: %w", err)
	}
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d file(s)", ErrConversionFailed, failedCount, len(results))
	}

	return nil
}

// convertStdin converts standard input to stdout, or to --output when set.
func convertStdin(conv DocumentConverter, flags *convertFlags, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	doc, err := loadDocument(content, flags.common.frontMatter)
	if err != nil {
		return err
	}
	wikitext := withTrailingNewline(conv.ConvertDocument(doc))

	if flags.output == "" {
		_, err := io.WriteString(env.Stdout, wikitext)
		return err
	}

	if err := fileutil.WriteFileAtomic(flags.output, []byte(wikitext), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteWiki, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	}
	return nil
}

// loadConfiguration loads the named config (flag, then MD2WIKI_CONFIG) and
// applies environment overrides. Without a name it starts from defaults.
func loadConfiguration(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w%s", err, configHint(name, err))
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// configHint selects the hint for a config loading error.
func configHint(name string, err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name):
		return hints.ForConfigNotFound(config.SearchPaths(name))
	case errors.Is(err, config.ErrInvalidExtension):
		return hints.ForInvalidExtension()
	default:
		return ""
	}
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.htmlTablesSet {
		cfg.Conversion.UseHTMLTables = flags.htmlTables
	}
	if flags.preserveSet {
		cfg.Conversion.PreserveLineBreaks = flags.preserveLineBreaks
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
