package pipeline

import "regexp"

var (
	// Fenced block: ```lang? newline body newline ```
	fencedCodeBlock = regexp.MustCompile("```(\\w+)?\\n((?s:.*?))\\n```")

	// Indented code: four spaces and at least one more character
	indentedCodeLine = regexp.MustCompile(`(?m)^    (.+)$`)
)

// convertCodeBlocks turns fenced blocks into <syntaxhighlight> (tagged) or
// <pre> (untagged) and every four-space indented line into its own <pre>.
// Consecutive indented lines are not merged into one block.
func convertCodeBlocks(r *run, text string) string {
	text = replaceSubmatches(fencedCodeBlock, text, func(m []string) string {
		lang, body := m[1], m[2]
		placeholder := r.code.put(body)
		if lang != "" {
			return `<syntaxhighlight lang="` + lang + `">` + "\n" + placeholder + "\n</syntaxhighlight>"
		}
		return "<pre>\n" + placeholder + "\n</pre>"
	})

	return replaceSubmatches(indentedCodeLine, text, func(m []string) string {
		return "<pre>" + r.code.put(m[1]) + "</pre>"
	})
}
