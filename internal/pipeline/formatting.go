package pipeline

import (
	"regexp"
	"strings"
)

// ListMarkerPrefix and ListMarkerSuffix wrap a shielded list marker while
// inline formatting runs.
const (
	ListMarkerPrefix = "{{LISTMARKER"
	ListMarkerSuffix = "}}"
)

var (
	// Leading run of wikitext list markers followed by whitespace
	listMarker = regexp.MustCompile(`(?m)^(\s*)(#+|\*+)(\s)`)

	// Shielded markers spell the run with letters so no inline rule can
	// match inside them: "b" per bullet, "n" per number sign.
	protectedMarker     = regexp.MustCompile(`\{\{LISTMARKER(b+|n+)\}\}`)
	protectedBoldMarker = ListMarkerPrefix + "'''" + ListMarkerSuffix

	encodeMarker = strings.NewReplacer("*", "b", "#", "n")
	decodeMarker = strings.NewReplacer("b", "*", "n", "#")

	boldAsterisk     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderscore   = regexp.MustCompile(`__([^_]+)__`)
	italicAsterisk   = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnderscore = regexp.MustCompile(`_([^_]+)_`)
	inlineCode       = regexp.MustCompile("`([^`]+)`")
)

// convertFormatting shields list markers, applies the inline rules and
// restores the markers.
func convertFormatting(text string) string {
	text = protectListMarkers(text)
	text = applyInlineFormatting(text)
	return unprotectListMarkers(text)
}

// protectListMarkers replaces leading */# runs with {{LISTMARKER<code>}}.
func protectListMarkers(text string) string {
	return replaceSubmatches(listMarker, text, func(sub []string) string {
		return sub[1] + ListMarkerPrefix + encodeMarker.Replace(sub[2]) + ListMarkerSuffix + sub[3]
	})
}

// applyInlineFormatting converts bold, italic and inline code spans.
// Bold runs before italic so ** is not read as two italic delimiters.
func applyInlineFormatting(text string) string {
	text = boldAsterisk.ReplaceAllString(text, "'''${1}'''")
	text = boldUnderscore.ReplaceAllString(text, "'''${1}'''")
	text = italicAsterisk.ReplaceAllString(text, "''${1}''")
	text = italicUnderscore.ReplaceAllString(text, "''${1}''")
	return inlineCode.ReplaceAllString(text, "<code>${1}</code>")
}

// unprotectListMarkers restores shielded markers. {{LISTMARKER'''}}, the
// bold rendering of a "**" marker, maps back to "**".
func unprotectListMarkers(text string) string {
	text = replaceSubmatches(protectedMarker, text, func(sub []string) string {
		return decodeMarker.Replace(sub[1])
	})
	return strings.ReplaceAll(text, protectedBoldMarker, "**")
}
