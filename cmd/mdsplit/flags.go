package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// splitFlags holds all command-line flags.
type splitFlags struct {
	outputDir    string
	outputName   string
	imagesSubdir string
	cssFile      string
	splitLevel   int
	indexFirst   bool
	workers      int
	config       string
	quiet        bool
	verbose      bool
	showVersion  bool
}

// parseFlags parses command-line flags and returns the positional args.
func parseFlags(args []string) (*splitFlags, []string, error) {
	fs := flag.NewFlagSet("mdsplit", flag.ContinueOnError)
	f := &splitFlags{}

	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory (created if absent)")
	fs.StringVarP(&f.outputName, "output-name", "n", "", "base name for page files (default: input filename)")
	fs.StringVarP(&f.imagesSubdir, "images-subdir", "i", "", "images subdirectory next to the input file, copied into the output directory")
	fs.StringVarP(&f.cssFile, "css-file", "c", "", "external stylesheet filename; created with default styles if absent")
	fs.IntVarP(&f.splitLevel, "split-level", "l", 0, "heading level that starts a new page (1-6, default: 1)")
	fs.BoolVar(&f.indexFirst, "index-first", false, "name the first page index.html instead of writing a contents page")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent render workers (default: based on CPU count)")
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the CLI usage text.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Split a Markdown file into linked HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: mdsplit [flags] <markdown_file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
