// Package pipeline implements the Markdown-to-wikitext conversion pipeline.
//
// The pipeline is an ordered list of stages, each rewriting the whole document
// and handing the result to the next one:
//   - code blocks (fenced and indented) to <syntaxhighlight>/<pre>
//   - pipe tables to wikitext or HTML tables
//   - ATX headers to balanced = headings
//   - Markdown links to external wiki links
//   - list items to */# bullets
//   - horizontal rules to ----
//   - bold, italic and inline code, with list markers shielded
//   - stray pipes escaped with <nowiki>
//
// Order matters: an earlier stage consumes syntax a later stage would
// otherwise misread. Code block bodies are stashed behind Private Use Area
// placeholders so no later stage rewrites them; they are restored once the
// last stage has run.
package pipeline
