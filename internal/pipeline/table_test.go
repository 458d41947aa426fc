package pipeline

import (
	"reflect"
	"testing"
)

// ---------------------------------------------------------------------------
// TestConvertTables - Header, separator and data row recognition
// ---------------------------------------------------------------------------

func TestConvertTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		html  bool
		want  string
	}{
		{
			name:  "header and separator only",
			input: "| A |\n|---|",
			want:  "{| class=\"wikitable\"\n! A\n|}",
		},
		{
			name:  "surrounding prose kept",
			input: "intro\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\noutro",
			want:  "intro\n\n{| class=\"wikitable\"\n! A !! B\n|-\n| 1 || 2\n|}\n\noutro",
		},
		{
			name:  "rows stop at first line without pipe",
			input: "| A |\n|---|\n| 1 |\nplain\n| 2 |",
			want:  "{| class=\"wikitable\"\n! A\n|-\n| 1\n|}\nplain\n| 2 |",
		},
		{
			name:  "alignment colons in separator",
			input: "| L | R |\n|:--|--:|\n| a | b |",
			want:  "{| class=\"wikitable\"\n! L !! R\n|-\n| a || b\n|}",
		},
		{
			name:  "no outer pipes",
			input: "A | B\n--- | ---\n1 | 2",
			want:  "{| class=\"wikitable\"\n! A !! B\n|-\n| 1 || 2\n|}",
		},
		{
			name:  "header without separator is not a table",
			input: "| A |\n| 1 |",
			want:  "| A |\n| 1 |",
		},
		{
			name:  "pipe line at end of input",
			input: "text\n| A |",
			want:  "text\n| A |",
		},
		{
			name:  "html rendering",
			input: "| A | B |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |",
			html:  true,
			want:  "<table class=\"wikitable\">\n<tr><th>A</th><th>B</th></tr>\n<tr><td>1</td><td>2</td></tr>\n<tr><td>3</td><td>4</td></tr>\n</table>",
		},
		{
			name:  "two tables",
			input: "| A |\n|---|\n| 1 |\n\n| B |\n|---|\n| 2 |",
			want:  "{| class=\"wikitable\"\n! A\n|-\n| 1\n|}\n\n{| class=\"wikitable\"\n! B\n|-\n| 2\n|}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := &run{opts: Options{UseHTMLTables: tt.html}}
			got := convertTables(r, tt.input)
			if got != tt.want {
				t.Errorf("convertTables()\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestParseTableRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "outer pipes", line: "| a | b |", want: []string{"a", "b"}},
		{name: "no outer pipes", line: "a|b", want: []string{"a", "b"}},
		{name: "cells trimmed", line: "|  a  |   b|", want: []string{"a", "b"}},
		{name: "trailing space keeps empty cell", line: "| a | b | ", want: []string{"a", "b", ""}},
		{name: "single pipe", line: "|", want: []string{""}},
		{name: "double pipe", line: "||", want: []string{""}},
		{name: "empty inner cell", line: "| a || c |", want: []string{"a", "", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTableRow(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTableRow(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestTableSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"|---|---|", true},
		{"---|---", true},
		{"|:---:|", true},
		{"| - | - |", true},
		{"   ", true},
		{"", false},
		{"| a |", false},
		{"|===|", false},
	}

	for _, tt := range tests {
		if got := tableSeparator.MatchString(tt.line); got != tt.want {
			t.Errorf("tableSeparator.MatchString(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
