package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config      string
	quiet       bool
	verbose     bool
	frontMatter bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common             commonFlags
	output             string
	workers            int
	htmlTables         bool
	htmlTablesSet      bool
	preserveLineBreaks bool
	preserveSet        bool
}

// checkFlags holds all flags for the check command.
type checkFlags struct {
	common    commonFlags
	strict    bool
	strictSet bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.frontMatter, "front-matter", true, "honour YAML front matter")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.htmlTables, "html-tables", false, "emit HTML tables instead of wikitext tables")
	fs.BoolVar(&f.preserveLineBreaks, "preserve-line-breaks", false, "accepted for compatibility; no effect")
	addCommonFlags(fs, &f.common)

	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.htmlTablesSet = fs.Changed("html-tables")
	f.preserveSet = fs.Changed("preserve-line-breaks")
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, usage io.Writer) (*checkFlags, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	f := &checkFlags{}

	fs.BoolVar(&f.strict, "strict", false, "exit with an error when warnings are found")
	addCommonFlags(fs, &f.common)

	fs.SetOutput(usage)
	fs.Usage = func() { printCheckUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.strictSet = fs.Changed("strict")
	return f, fs.Args(), nil
}
