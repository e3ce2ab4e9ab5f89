package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// errHelpRequested signals that -h was given and usage was printed.
var errHelpRequested = errors.New("help requested")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds flags that override the template's styles.
type styleFlags struct {
	template   string
	themeColor string
	fontSize   string
	codeTheme  string
	assetPath  string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common     commonFlags
	style      styleFlags
	output     string
	workers    int
	timeout    string
	diagrams   bool
	unsafeHTML bool
	bullets    bool
	standalone bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addStyleFlags adds template and style override flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "template id")
	fs.StringVar(&f.themeColor, "theme-color", "", "primary color, e.g. #0F4C81")
	fs.StringVar(&f.fontSize, "font-size", "", "base font size, e.g. 16px")
	fs.StringVar(&f.codeTheme, "code-theme", "", "code highlighting theme id")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template directory")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.timeout, "timeout", "", "per-diagram timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.diagrams, "diagrams", false, "render diagrams to SVG with a headless browser")
	fs.BoolVar(&f.unsafeHTML, "unsafe-html", false, "pass raw HTML through unchanged")
	fs.BoolVar(&f.bullets, "bullets", false, "turn \"•\" lines into list items")
	fs.BoolVar(&f.standalone, "standalone", false, "write a complete HTML document instead of a fragment")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printRenderUsage(usage)
			return nil, nil, errHelpRequested
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

// parseOptionsFlags parses flags for the options command.
func parseOptionsFlags(args []string, usage io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("options", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &renderFlags{}

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printOptionsUsage(usage)
			return nil, nil, errHelpRequested
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}
