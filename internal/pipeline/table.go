package pipeline

import (
	"regexp"
	"strings"
)

// Separator row: only dashes, colons, pipes and whitespace
var tableSeparator = regexp.MustCompile(`^\|?[-\s|:]+\|?$`)

// tableBlock is a recognized pipe table: one header row and its data rows.
type tableBlock struct {
	header []string
	rows   [][]string
}

// convertTables rewrites every header+separator(+rows) run of lines into a
// single rendered table. Anything that does not qualify stays as it is.
func convertTables(r *run, text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		line := lines[i]
		if !startsTable(lines, i) {
			result = append(result, line)
			i++
			continue
		}

		j := i + 2
		for j < len(lines) && isTableRow(lines[j]) {
			j++
		}

		table := parseTable(line, lines[i+2:j])
		if r.opts.UseHTMLTables {
			result = append(result, table.html())
		} else {
			result = append(result, table.wikitext())
		}
		i = j
	}

	return strings.Join(result, "\n")
}

// startsTable reports whether lines[i] is a header row directly followed by
// a separator row.
func startsTable(lines []string, i int) bool {
	return strings.Contains(lines[i], "|") &&
		i+1 < len(lines) &&
		tableSeparator.MatchString(lines[i+1])
}

// isTableRow reports whether line continues a table as a data row.
func isTableRow(line string) bool {
	return strings.Contains(line, "|") && !tableSeparator.MatchString(line)
}

func parseTable(header string, rows []string) tableBlock {
	t := tableBlock{
		header: parseTableRow(header),
		rows:   make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		t.rows = append(t.rows, parseTableRow(row))
	}
	return t
}

// parseTableRow drops one leading and one trailing pipe, then splits on the
// remaining pipes and trims every cell.
func parseTableRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	cells := strings.Split(strings.TrimSpace(line), "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// wikitext renders the table in MediaWiki {| ... |} syntax.
func (t tableBlock) wikitext() string {
	var b strings.Builder
	b.WriteString("{| class=\"wikitable\"\n")
	b.WriteString("! " + strings.Join(t.header, " !! ") + "\n")
	for _, row := range t.rows {
		b.WriteString("|-\n")
		b.WriteString("| " + strings.Join(row, " || ") + "\n")
	}
	b.WriteString("|}")
	return b.String()
}

// html renders the table as <table> markup.
func (t tableBlock) html() string {
	var b strings.Builder
	b.WriteString("<table class=\"wikitable\">\n")
	b.WriteString("<tr><th>" + strings.Join(t.header, "</th><th>") + "</th></tr>\n")
	for _, row := range t.rows {
		b.WriteString("<tr><td>" + strings.Join(row, "</td><td>") + "</td></tr>\n")
	}
	b.WriteString("</table>")
	return b.String()
}
