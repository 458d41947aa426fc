package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	md2wiki "github.com/alnah/go-md2wiki"
	"github.com/alnah/go-md2wiki/internal/fileutil"
	"github.com/alnah/go-md2wiki/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteWiki        = errors.New("failed to write wikitext file")
	ErrConversionFailed = errors.New("conversion failed")
)

// DocumentConverter is the conversion service used by the batch runner.
type DocumentConverter interface {
	ConvertDocument(doc *md2wiki.Document) string
}

// Compile-time interface implementation check.
var _ DocumentConverter = (*md2wiki.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// batchOptions groups parameters shared across the files of a batch.
type batchOptions struct {
	workers     int
	frontMatter bool
	logger      *slog.Logger
}

// convertBatch converts files concurrently with a fixed worker pool sharing
// one converter. Files still queued when ctx is canceled fail with ctx.Err().
func convertBatch(ctx context.Context, conv DocumentConverter, files []FileToConvert, opts batchOptions) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(1, min(opts.workers, len(files)))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(conv, files[idx], opts)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(conv DocumentConverter, f FileToConvert, opts batchOptions) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	doc, err := loadDocument(content, opts.frontMatter)
	if err != nil {
		return fail(err)
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}

	wikitext := withTrailingNewline(conv.ConvertDocument(doc))
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(wikitext), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteWiki, err))
	}

	result.Duration = time.Since(start)
	opts.logger.Debug("converted",
		slog.String("input", f.InputPath),
		slog.String("output", f.OutputPath),
		slog.String("title", doc.Title),
		slog.Duration("duration", result.Duration),
	)
	return result
}

// loadDocument splits content into front matter and body, or wraps it
// whole when front matter handling is disabled.
func loadDocument(content []byte, frontMatter bool) (*md2wiki.Document, error) {
	if !frontMatter {
		return &md2wiki.Document{Body: string(content), BodyLine: 1}, nil
	}
	doc, err := md2wiki.ParseDocument(content)
	if err != nil {
		if errors.Is(err, md2wiki.ErrFrontMatter) {
			return nil, fmt.Errorf("%w%s", err, hints.ForFrontMatter())
		}
		return nil, err
	}
	return doc, nil
}

// withTrailingNewline terminates non-empty wikitext with a newline.
func withTrailingNewline(s string) string {
	if s == "" {
		return s
	}
	return s + "\n"
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, stdout, stderr io.Writer) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
