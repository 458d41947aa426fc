package md2wiki

import "github.com/alnah/go-md2wiki/internal/lint"

var checker = lint.New()

// Warning kinds reported by Check.
const (
	WarnUnknownLanguage  = string(lint.KindUnknownLanguage)
	WarnUnsupportedFence = string(lint.KindUnsupportedFence)
	WarnReferenceLink    = string(lint.KindReferenceLink)
	WarnFootnote         = string(lint.KindFootnote)
	WarnNestedBlockquote = string(lint.KindNestedBlockquote)
	WarnRawHTML          = string(lint.KindRawHTML)
	WarnIndentedCode     = string(lint.KindIndentedCode)
)

// Warning describes a Markdown construct that Convert leaves unconverted
// or converts lossily.
type Warning struct {
	Line    int    // 1-based line in the checked source
	Kind    string // one of the Warn* constants
	Message string
}

// Check lists the constructs in markdown that Convert does not handle,
// sorted by line. It does not affect conversion.
func Check(markdown string) []Warning {
	found := checker.Check([]byte(markdown))
	if len(found) == 0 {
		return nil
	}
	warnings := make([]Warning, len(found))
	for i, w := range found {
		warnings[i] = Warning{Line: w.Line, Kind: string(w.Kind), Message: w.Message}
	}
	return warnings
}

// CheckDocument checks the body of doc. Reported lines refer to the full
// source the document was parsed from.
func CheckDocument(doc *Document) []Warning {
	if doc == nil {
		return nil
	}
	warnings := Check(doc.Body)
	if doc.BodyLine > 1 {
		for i := range warnings {
			warnings[i].Line += doc.BodyLine - 1
		}
	}
	return warnings
}
