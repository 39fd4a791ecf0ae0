package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	mdsplit "github.com/alnah/go-mdsplit"
	"github.com/alnah/go-mdsplit/internal/assets"
	"github.com/alnah/go-mdsplit/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("usage: mdsplit [flags] <markdown_file>")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// run resolves configuration, builds the site, and writes it.
func run(flags *splitFlags, args []string, stdout, stderr io.Writer) error {
	if flags.showVersion {
		fmt.Fprintf(stdout, "mdsplit %s\n", Version)
		return nil
	}

	if len(args) != 1 {
		return ErrNoInput
	}
	inputPath := args[0]

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	markdown, err := readMarkdownFile(inputPath)
	if err != nil {
		return err
	}

	opts := resolveOptions(flags, cfg, inputPath)

	service := mdsplit.New()

	site, err := service.Build(context.Background(), mdsplit.Input{
		Markdown:   markdown,
		BaseName:   opts.outputName,
		SplitLevel: opts.splitLevel,
		IndexFirst: opts.indexFirst,
		Workers:    flags.workers,
	})
	if err != nil {
		return err
	}

	logf := func(string, ...any) {}
	if flags.verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}

	if err := service.WriteSite(site, mdsplit.WriteOptions{
		OutputDir:    opts.outputDir,
		CSSFile:      opts.cssFile,
		ImagesSubdir: opts.imagesSubdir,
		SourceDir:    filepath.Dir(inputPath),
		DefaultCSS:   assets.DefaultStyle(),
		Version:      "v" + Version,
		Logf:         logf,
	}); err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Wrote %d pages to %s\n", len(site.Published()), opts.outputDir)
	}
	return nil
}

// runOptions are the effective settings after merging flags over config.
type runOptions struct {
	outputDir    string
	outputName   string
	imagesSubdir string
	cssFile      string
	splitLevel   int
	indexFirst   bool
}

// resolveOptions merges command-line flags over config-file values and
// fills the remaining defaults from the input path: the base name falls
// back to the input filename, the output directory to a timestamped
// directory next to the input.
func resolveOptions(flags *splitFlags, cfg *config.Config, inputPath string) runOptions {
	opts := runOptions{
		outputDir:    firstNonEmpty(flags.outputDir, cfg.Output.Dir),
		outputName:   firstNonEmpty(flags.outputName, cfg.Output.Name),
		imagesSubdir: firstNonEmpty(flags.imagesSubdir, cfg.Images.Subdir),
		cssFile:      firstNonEmpty(flags.cssFile, cfg.CSS.File),
		splitLevel:   flags.splitLevel,
		indexFirst:   flags.indexFirst || cfg.Output.IndexFirst,
	}

	if opts.splitLevel == 0 {
		opts.splitLevel = cfg.Split.Level
	}

	if opts.outputName == "" {
		stem := filepath.Base(inputPath)
		opts.outputName = strings.TrimSuffix(stem, filepath.Ext(stem))
	}

	if opts.outputDir == "" {
		dirName := "Pages_" + time.Now().Format("20060102_150405")
		opts.outputDir = filepath.Join(filepath.Dir(inputPath), dirName)
	}

	return opts
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// readMarkdownFile reads the content of a Markdown file.
func readMarkdownFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}
