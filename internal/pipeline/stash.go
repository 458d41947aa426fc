package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Code placeholders use Unicode Private Use Area characters, which no stage
// pattern matches.
const (
	CodeStartPlaceholder = "\uE002" // U+E002: Private Use Area
	CodeEndPlaceholder   = "\uE003" // U+E003: Private Use Area
)

// codeEscape follows every start delimiter already present in the input, so
// user text can never spell a placeholder.
const codeEscape = "\uE004" // U+E004: Private Use Area

var (
	codePlaceholder = regexp.MustCompile(CodeStartPlaceholder + `([0-9]+)` + CodeEndPlaceholder)

	escapeCodeDelims   = strings.NewReplacer(CodeStartPlaceholder, CodeStartPlaceholder+codeEscape)
	unescapeCodeDelims = strings.NewReplacer(CodeStartPlaceholder+codeEscape, CodeStartPlaceholder)
)

// escapeDelims marks start delimiters that came with the input.
func escapeDelims(text string) string {
	if !strings.Contains(text, CodeStartPlaceholder) {
		return text
	}
	return escapeCodeDelims.Replace(text)
}

// unescapeDelims undoes escapeDelims once every placeholder is restored.
func unescapeDelims(text string) string {
	if !strings.Contains(text, CodeStartPlaceholder) {
		return text
	}
	return unescapeCodeDelims.Replace(text)
}

// codeStash keeps code bodies out of reach of the rewriting stages.
type codeStash struct {
	bodies []string
}

// put stores body and returns the placeholder that stands for it.
func (s *codeStash) put(body string) string {
	s.bodies = append(s.bodies, body)
	return CodeStartPlaceholder + strconv.Itoa(len(s.bodies)-1) + CodeEndPlaceholder
}

// restore swaps every placeholder back to its body. Placeholders that do
// not refer to a stored body are left as they are.
func (s *codeStash) restore(text string) string {
	if len(s.bodies) == 0 {
		return text
	}
	return codePlaceholder.ReplaceAllStringFunc(text, func(m string) string {
		sub := codePlaceholder.FindStringSubmatch(m)
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx < 0 || idx >= len(s.bodies) {
			return m
		}
		return s.bodies[idx]
	})
}
