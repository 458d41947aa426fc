// Package md2wiki converts Markdown documents to MediaWiki wikitext.
//
// # Quick Start
//
// Convert a string with the default options:
//
//	wikitext := md2wiki.Convert("# Hello\n\nSome **bold** text")
//	// == Hello ==
//	//
//	// Some '''bold''' text
//
// Or build a Converter once and reuse it; it holds no mutable state and is
// safe for concurrent use:
//
//	conv := md2wiki.NewConverter(md2wiki.WithHTMLTables(true))
//	out := conv.Convert(markdown)
//
// # Conversion Pipeline
//
// Conversion is a fixed sequence of whole-document rewrites:
//
//  1. Code blocks (fenced to <syntaxhighlight> or <pre>, indented to <pre>)
//  2. Pipe tables (wikitext {| ... |} or HTML <table>)
//  3. ATX headers (# Title to == Title ==)
//  4. Links ([text](url) to [url text])
//  5. Lists (- and 1. to * and #, nesting from indentation)
//  6. Horizontal rules (to ----)
//  7. Bold, italic and inline code, with list markers shielded
//  8. Escaping of stray pipes with <nowiki>
//
// Conversion never fails. Constructs it does not recognize pass through as
// plain text; use Check to list them.
//
// # Documents
//
// ParseDocument splits YAML front matter from the body. The front matter may
// set title, tags, useHtmlTables and preserveLineBreaks; ConvertDocument
// applies the conversion overrides on top of the Converter's options:
//
//	doc, err := md2wiki.ParseDocument(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := conv.ConvertDocument(doc)
package md2wiki
