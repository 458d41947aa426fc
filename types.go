package md2wiki

import (
	"log/slog"

	"github.com/alnah/go-md2wiki/internal/pipeline"
)

// Options holds the conversion settings. The zero value is the default.
type Options struct {
	// PreserveLineBreaks is accepted for compatibility. It has no effect on
	// the output.
	PreserveLineBreaks bool

	// UseHTMLTables renders tables as <table class="wikitable"> markup
	// instead of wikitext {| ... |} syntax.
	UseHTMLTables bool
}

// DefaultOptions returns the default options: wikitext tables, line breaks
// not preserved.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		PreserveLineBreaks: o.PreserveLineBreaks,
		UseHTMLTables:      o.UseHTMLTables,
	}
}

// Option configures a Converter.
type Option func(*Converter)

// WithOptions replaces all conversion options at once.
func WithOptions(opts Options) Option {
	return func(c *Converter) {
		c.opts = opts
	}
}

// WithHTMLTables selects HTML table rendering.
func WithHTMLTables(enabled bool) Option {
	return func(c *Converter) {
		c.opts.UseHTMLTables = enabled
	}
}

// WithPreserveLineBreaks sets the PreserveLineBreaks option.
func WithPreserveLineBreaks(enabled bool) Option {
	return func(c *Converter) {
		c.opts.PreserveLineBreaks = enabled
	}
}

// WithLogger sets the logger receiving per-stage debug records.
// A nil logger discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}
