package pipeline

import (
	"regexp"
	"strings"
)

var (
	// ATX heading: 1-6 hashes, whitespace, content
	atxHeading = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

	// Thematic break: a line of 3+ dashes or 3+ asterisks
	horizontalRule = regexp.MustCompile(`(?m)^(-{3,}|\*{3,})$`)

	// External link [text](url) and wiki internal link [[Page]]
	markdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	internalLink = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

	// List items: optional indent, marker, whitespace, content
	unorderedItem = regexp.MustCompile(`^(\s*)[-*+]\s+(.+)$`)
	orderedItem   = regexp.MustCompile(`^(\s*)\d+\.\s+(.+)$`)
)

// convertHeaders turns N leading hashes into N+1 equals signs on both sides.
func convertHeaders(text string) string {
	return replaceSubmatches(atxHeading, text, func(m []string) string {
		equals := strings.Repeat("=", len(m[1])+1)
		return equals + " " + m[2] + " " + equals
	})
}

// convertLinks rewrites [text](url) as [url text]. Internal [[Page]] links
// are rewritten to themselves; reference-style links are left alone.
func convertLinks(text string) string {
	text = markdownLink.ReplaceAllString(text, "[${2} ${1}]")
	return internalLink.ReplaceAllString(text, "[[${1}]]")
}

// convertLists rewrites each list line on its own. Nesting comes from the
// indent width only; no renumbering or well-formedness check is done.
func convertLists(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if m := unorderedItem.FindStringSubmatch(line); m != nil {
			lines[i] = strings.Repeat("*", nestingLevel(m[1])) + " " + m[2]
			continue
		}
		if m := orderedItem.FindStringSubmatch(line); m != nil {
			lines[i] = strings.Repeat("#", nestingLevel(m[1])) + " " + m[2]
		}
	}
	return strings.Join(lines, "\n")
}

// nestingLevel maps an indent to a list depth: two characters per level.
func nestingLevel(indent string) int {
	return len(indent)/2 + 1
}

// convertHorizontalRules normalizes every rule to exactly four dashes.
func convertHorizontalRules(text string) string {
	return horizontalRule.ReplaceAllString(text, "----")
}
