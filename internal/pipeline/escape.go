package pipeline

import "strings"

// Line prefixes that belong to rendered wikitext tables.
var tableSyntaxPrefixes = []string{"{|", "|}", "|-", "!", "|"}

const escapedPipe = "<nowiki>|</nowiki>"

// escapePipes wraps every pipe outside table syntax in <nowiki> so prose
// pipes are not read as table or template separators.
func escapePipes(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if isTableSyntax(line) {
			continue
		}
		lines[i] = strings.ReplaceAll(line, "|", escapedPipe)
	}
	return strings.Join(lines, "\n")
}

func isTableSyntax(line string) bool {
	for _, prefix := range tableSyntaxPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
