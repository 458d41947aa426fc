// Package lint reports Markdown constructs the wikitext pipeline leaves
// unconverted or converts lossily.
//
// The pipeline is a sequence of regular expressions and never fails, so
// unsupported syntax passes through silently. The checker parses the same
// source with goldmark, walks the AST and flags what the pipeline does not
// handle. It never changes conversion output.
package lint

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Kind classifies a warning.
type Kind string

const (
	KindUnknownLanguage  Kind = "unknown-language"
	KindUnsupportedFence Kind = "unsupported-fence"
	KindReferenceLink    Kind = "reference-link"
	KindFootnote         Kind = "footnote"
	KindNestedBlockquote Kind = "nested-blockquote"
	KindRawHTML          Kind = "raw-html"
	KindIndentedCode     Kind = "indented-code"
)

// Warning is one finding. Line is 1-based.
type Warning struct {
	Line    int
	Kind    Kind
	Message string
}

// String formats the warning as "line: kind: message".
func (w Warning) String() string {
	return fmt.Sprintf("%d: %s: %s", w.Line, w.Kind, w.Message)
}

var (
	// Info strings the pipeline turns into a lang attribute
	plainLanguage = regexp.MustCompile(`^\w+$`)

	// Link reference definition: [label]: destination
	referenceDefinition = regexp.MustCompile(`(?m)^ {0,3}\[([^\]]+)\]:[ \t]*\S`)
)

// Checker parses Markdown with GFM and footnote support.
// A Checker is safe for concurrent use.
type Checker struct {
	md goldmark.Markdown
}

// New creates a Checker.
func New() *Checker {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
	)
	return &Checker{md: md}
}

// Check parses source and returns its warnings sorted by line.
func (c *Checker) Check(source []byte) []Warning {
	pc := parser.NewContext()
	doc := c.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	w := &walker{source: source, lines: newLineIndex(source)}
	_ = ast.Walk(doc, w.visit)
	w.referenceDefinitions(pc)

	sort.SliceStable(w.warnings, func(i, j int) bool {
		return w.warnings[i].Line < w.warnings[j].Line
	})
	return w.warnings
}

// walker collects warnings during one AST walk.
type walker struct {
	source   []byte
	lines    lineIndex
	warnings []Warning
}

func (w *walker) add(offset int, kind Kind, format string, args ...any) {
	w.warnings = append(w.warnings, Warning{
		Line:    w.lines.lineAt(offset),
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	switch node := n.(type) {
	case *ast.FencedCodeBlock:
		w.fencedCodeBlock(node)
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if node.Lines().Len() > 1 {
			w.add(node.Lines().At(0).Start, KindIndentedCode,
				"indented code block of %d lines becomes one <pre> per line; use a fenced block",
				node.Lines().Len())
		}
		return ast.WalkSkipChildren, nil

	case *ast.Blockquote:
		if hasBlockquoteAncestor(node) {
			w.add(firstOffset(node), KindNestedBlockquote, "nested blockquote is not converted")
		}

	case *ast.HTMLBlock:
		if node.Lines().Len() > 0 {
			w.add(node.Lines().At(0).Start, KindRawHTML, "HTML block is passed through unchecked")
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		if node.Segments.Len() > 0 {
			w.add(node.Segments.At(0).Start, KindRawHTML, "inline HTML is passed through unchecked")
		}

	case *east.Footnote:
		w.add(firstOffset(node), KindFootnote, "footnote definition [^%s] is not converted", node.Ref)

	case *east.FootnoteLink:
		w.add(inlineOffset(node), KindFootnote, "footnote reference %d is not converted", node.Index)
	}

	return ast.WalkContinue, nil
}

// fencedCodeBlock checks the fence character and the info string of a
// fenced block against what the code block stage recognizes.
func (w *walker) fencedCodeBlock(node *ast.FencedCodeBlock) {
	offset := fenceOffset(node, w.source)
	if offset < 0 {
		return
	}

	if fenceChar(w.source, offset) == '~' {
		w.add(offset, KindUnsupportedFence, "tilde fence is not converted; use ```")
		return
	}

	lang := string(node.Language(w.source))
	if lang == "" {
		return
	}
	if !plainLanguage.MatchString(lang) {
		w.add(offset, KindUnsupportedFence,
			"info string %q is not a single word; the block is not converted", lang)
		return
	}
	if lexers.Get(lang) == nil {
		w.add(offset, KindUnknownLanguage,
			"no highlighter knows language %q; SyntaxHighlight may reject it", lang)
	}
}

// referenceDefinitions flags link reference definitions goldmark accepted.
// Their positions are not kept in the AST, so the source is scanned for the
// definition lines and each label is confirmed against the parse context.
func (w *walker) referenceDefinitions(pc parser.Context) {
	if len(pc.References()) == 0 {
		return
	}
	seen := make(map[string]bool)
	for _, loc := range referenceDefinition.FindAllSubmatchIndex(w.source, -1) {
		label := util.ToLinkReference(w.source[loc[2]:loc[3]])
		if seen[label] {
			continue
		}
		if _, ok := pc.Reference(label); !ok {
			continue
		}
		seen[label] = true
		w.add(loc[0], KindReferenceLink,
			"reference definition [%s] is not converted", w.source[loc[2]:loc[3]])
	}
}

func hasBlockquoteAncestor(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == ast.KindBlockquote {
			return true
		}
	}
	return false
}

// firstOffset returns the source offset of the first line or text segment
// under n, or -1 when n holds no source text.
func firstOffset(n ast.Node) int {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off := firstOffset(c); off >= 0 {
			return off
		}
	}
	return -1
}

// inlineOffset locates an inline node without its own segment through its
// neighbours, falling back to the enclosing block.
func inlineOffset(n ast.Node) int {
	if prev, ok := n.PreviousSibling().(*ast.Text); ok {
		return prev.Segment.Stop
	}
	if next, ok := n.NextSibling().(*ast.Text); ok {
		return next.Segment.Start
	}
	if p := n.Parent(); p != nil {
		return firstOffset(p)
	}
	return -1
}

// fenceOffset returns an offset on the opening fence line of node, or -1
// for an empty block without info string.
func fenceOffset(node *ast.FencedCodeBlock, source []byte) int {
	if node.Info != nil {
		return node.Info.Segment.Start
	}
	if node.Lines().Len() == 0 {
		return -1
	}
	start := lineStart(source, node.Lines().At(0).Start)
	if start == 0 {
		return -1
	}
	return lineStart(source, start-1)
}

// fenceChar returns the first non-blank character of the line holding offset.
func fenceChar(source []byte, offset int) byte {
	for i := lineStart(source, offset); i < len(source); i++ {
		switch source[i] {
		case ' ', '\t':
			continue
		default:
			return source[i]
		}
	}
	return 0
}
