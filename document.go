package md2wiki

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-md2wiki/internal/yamlutil"
)

// MaxDocumentSize limits the source accepted by ParseDocument (default 10MB).
var MaxDocumentSize = 10 << 20

// Level-1 ATX heading used as the fallback title
var titleHeading = regexp.MustCompile(`^#[ \t]+(.+)$`)

// YAML front matter between --- lines. Empty blocks are allowed.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", unmarshalFrontMatter)

// errNotMapping marks a --- block whose content is not a YAML mapping, such
// as prose between two horizontal rules.
var errNotMapping = errors.New("front matter is not a mapping")

// unmarshalFrontMatter decodes data into v when it holds a YAML mapping.
func unmarshalFrontMatter(data []byte, v any) error {
	var node any
	if err := yamlutil.UnmarshalOptional(data, &node); err != nil {
		return err
	}
	if node != nil {
		if _, ok := node.(map[string]any); !ok {
			return errNotMapping
		}
	}
	return yamlutil.UnmarshalOptional(data, v)
}

// Document is a Markdown source split into front matter and body.
type Document struct {
	// Title comes from the front matter, or from the first level-1 heading
	// of the body when the front matter has none.
	Title string

	// Tags lists the front matter tags, if any.
	Tags []string

	// UseHTMLTables and PreserveLineBreaks override the Converter options
	// when set.
	UseHTMLTables      *bool
	PreserveLineBreaks *bool

	// Body is the Markdown after the front matter.
	Body string

	// BodyLine is the 1-based source line on which Body starts.
	BodyLine int
}

// frontMatter mirrors the recognized front matter keys.
type frontMatter struct {
	Title              string   `yaml:"title"`
	Tags               []string `yaml:"tags"`
	UseHTMLTables      *bool    `yaml:"useHtmlTables"`
	PreserveLineBreaks *bool    `yaml:"preserveLineBreaks"`
}

// ParseDocument splits source into front matter and body. Without front
// matter, with an unterminated block, or with a block that is not a YAML
// mapping, the whole source is the body. Unknown front matter keys are
// ignored.
func ParseDocument(source []byte) (*Document, error) {
	if len(source) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(source), MaxDocumentSize)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm, yamlFrontMatter)
	switch {
	case errors.Is(err, errNotMapping):
		fm, body = frontMatter{}, source
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	doc := &Document{
		Title:              strings.TrimSpace(fm.Title),
		Tags:               fm.Tags,
		UseHTMLTables:      fm.UseHTMLTables,
		PreserveLineBreaks: fm.PreserveLineBreaks,
		Body:               string(body),
		BodyLine:           bytes.Count(source[:len(source)-len(body)], []byte("\n")) + 1,
	}
	if doc.Title == "" {
		doc.Title = FirstHeading(doc.Body)
	}
	return doc, nil
}

// applyTo returns opts with the document overrides applied.
func (d *Document) applyTo(opts Options) Options {
	if d.UseHTMLTables != nil {
		opts.UseHTMLTables = *d.UseHTMLTables
	}
	if d.PreserveLineBreaks != nil {
		opts.PreserveLineBreaks = *d.PreserveLineBreaks
	}
	return opts
}

// FirstHeading returns the text of the first level-1 ATX heading outside
// fenced code, or "" when there is none.
func FirstHeading(markdown string) string {
	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := titleHeading.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
