package md2wiki

import (
	"log/slog"

	"github.com/alnah/go-md2wiki/internal/pipeline"
)

// Converter turns Markdown into MediaWiki wikitext.
// A Converter is immutable after NewConverter and safe for concurrent use.
type Converter struct {
	opts     Options
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
}

// NewConverter creates a Converter. Without options it uses DefaultOptions.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(c)
	}
	c.pipeline = pipeline.New(c.opts.pipelineOptions(), c.logger)
	return c
}

// Convert converts markdown to wikitext. It never fails: unrecognized
// constructs pass through as text. Empty or whitespace-only input yields "".
func (c *Converter) Convert(markdown string) string {
	return c.pipeline.Run(markdown)
}

// ConvertDocument converts the body of doc, applying the conversion options
// its front matter sets on top of the Converter's own. A nil doc yields "".
func (c *Converter) ConvertDocument(doc *Document) string {
	if doc == nil {
		return ""
	}
	opts := doc.applyTo(c.opts)
	if opts == c.opts {
		return c.Convert(doc.Body)
	}
	return pipeline.New(opts.pipelineOptions(), c.logger).Run(doc.Body)
}

// Options returns the options the Converter was built with.
func (c *Converter) Options() Options {
	return c.opts
}

// Stages returns the conversion stage names in execution order.
func (c *Converter) Stages() []string {
	return c.pipeline.Stages()
}

// Convert is a one-shot helper: NewConverter(opts...).Convert(markdown).
func Convert(markdown string, opts ...Option) string {
	return NewConverter(opts...).Convert(markdown)
}
