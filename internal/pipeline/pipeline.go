package pipeline

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// Stage names, in execution order.
const (
	StageCodeBlocks      = "code-blocks"
	StageTables          = "tables"
	StageHeaders         = "headers"
	StageLinks           = "links"
	StageLists           = "lists"
	StageHorizontalRules = "horizontal-rules"
	StageFormatting      = "formatting"
	StageEscape          = "escape"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Options controls the rendering choices of a Pipeline.
type Options struct {
	// PreserveLineBreaks is accepted for compatibility and has no effect.
	PreserveLineBreaks bool

	// UseHTMLTables renders tables as <table> markup instead of {| ... |}.
	UseHTMLTables bool
}

// stage is one rewrite step. apply receives the per-call state so stages
// that stash content (code blocks) can hand it back to the driver.
type stage struct {
	name  string
	apply func(r *run, text string) string
}

// run holds the state of a single Run call.
type run struct {
	opts Options
	code codeStash
}

// Pipeline runs the conversion stages in a fixed order.
// A Pipeline is immutable after New and safe for concurrent use.
type Pipeline struct {
	opts   Options
	stages []stage
	logger *slog.Logger
}

// New creates a Pipeline with the standard stage order.
// A nil logger discards stage diagnostics.
func New(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{
		opts:   opts,
		stages: standardStages(),
		logger: logger,
	}
}

// standardStages returns the stage list. Code runs first so its body is
// stashed before anything else looks at it; tables run before lists and
// formatting so cell text is laid out before inline rules apply; escaping
// runs last so rendered table syntax is never escaped.
func standardStages() []stage {
	return []stage{
		{name: StageCodeBlocks, apply: convertCodeBlocks},
		{name: StageTables, apply: convertTables},
		{name: StageHeaders, apply: textOnly(convertHeaders)},
		{name: StageLinks, apply: textOnly(convertLinks)},
		{name: StageLists, apply: textOnly(convertLists)},
		{name: StageHorizontalRules, apply: textOnly(convertHorizontalRules)},
		{name: StageFormatting, apply: textOnly(convertFormatting)},
		{name: StageEscape, apply: textOnly(escapePipes)},
	}
}

// textOnly adapts a stateless rewrite to the stage signature.
func textOnly(fn func(string) string) func(*run, string) string {
	return func(_ *run, text string) string {
		return fn(text)
	}
}

// Options returns the options the pipeline was built with.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.name
	}
	return names
}

// Run converts markdown to wikitext. It never fails: malformed constructs
// fall through as plain text. Empty or whitespace-only input yields "".
func (p *Pipeline) Run(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}

	r := &run{opts: p.opts}
	text := escapeDelims(normalizeLineEndings(markdown))

	debug := p.logger.Enabled(context.Background(), slog.LevelDebug)
	for _, s := range p.stages {
		start := time.Now()
		text = s.apply(r, text)
		if debug {
			p.logger.Debug("stage done",
				"stage", s.name,
				"duration", time.Since(start),
				"bytes", len(text),
			)
		}
	}

	text = unescapeDelims(r.code.restore(text))
	return strings.TrimSpace(text)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// replaceSubmatches replaces every match of re in s with fn(groups), where
// groups[0] is the whole match and unmatched optional groups are "".
func replaceSubmatches(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range matches {
		b.WriteString(s[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
