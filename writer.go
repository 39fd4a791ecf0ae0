package mdsplit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-mdsplit/internal/fileutil"
)

// WriteOptions configures site output. DefaultCSS is the stylesheet content
// used when no external CSS file is configured, or as the initial content of
// a configured-but-absent CSS file; it is passed in explicitly so callers
// and tests control the default.
type WriteOptions struct {
	OutputDir    string                           // created if absent (required)
	CSSFile      string                           // stylesheet filename in OutputDir; "" = embed styles inline
	ImagesSubdir string                           // images directory name; "" = no image copying
	SourceDir    string                           // directory of the source document, holds ImagesSubdir
	DefaultCSS   string                           // default stylesheet content (required)
	Version      string                           // shown in generated-by footers
	Logf         func(format string, args ...any) // progress output; nil = silent
}

// WriteSite emits all published pages plus the index, one-page, and
// extracted-links documents, resolves the stylesheet, and copies the images
// subdirectory. It is the only component performing filesystem writes.
//
// Every page document is assembled in memory and all preconditions (output
// directory, images subdirectory) are checked before the first file is
// written, so validation and render failures leave no partial output. A
// failing write mid-sequence leaves the files already written; writes are
// ordered by ordinal so any partial output is a navigable prefix.
func (s *Service) WriteSite(site *Site, opts WriteOptions) error {
	published := site.Published()
	if len(published) == 0 {
		return nil
	}

	if opts.DefaultCSS == "" {
		return ErrNoDefaultCSS
	}

	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if err := os.MkdirAll(opts.OutputDir, 0o750); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputDir, opts.OutputDir, err)
	}

	// Images subdirectory must exist before anything is written.
	var imagesSrc string
	if opts.ImagesSubdir != "" {
		imagesSrc = filepath.Join(opts.SourceDir, opts.ImagesSubdir)
		info, err := os.Stat(imagesSrc)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrImagesDirMissing, imagesSrc)
		}
	}

	cssLink, cssCreate := resolveCSS(opts)

	// Assemble every document before writing the first one.
	width := padWidth(len(site.Pages))
	docs := make([]string, len(published))
	for i, p := range published {
		docs[i] = pageDocument(p, width, cssLink, opts.DefaultCSS)
	}

	builtAt := time.Now()

	if cssCreate != "" {
		logf("Writing %q", cssCreate)
		if err := os.WriteFile(cssCreate, []byte(opts.DefaultCSS), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWriteCSS, cssCreate, err)
		}
	}

	for i, p := range published {
		path := filepath.Join(opts.OutputDir, p.Filename)
		logf("Writing %q", path)
		if err := os.WriteFile(path, []byte(docs[i]), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWritePage, path, err)
		}
	}

	if imagesSrc != "" {
		dst := filepath.Join(opts.OutputDir, opts.ImagesSubdir)
		logf("Copying images to %q", dst)
		if err := fileutil.CopyDirFiles(imagesSrc, dst); err != nil {
			return fmt.Errorf("%w: %v", ErrCopyImages, err)
		}
	}

	// The contents page would collide with an index-named first page.
	if !site.IndexFirst {
		path := filepath.Join(opts.OutputDir, IndexFilename)
		logf("Writing %q", path)
		doc := indexDocument(site.Index, opts.Version, builtAt)
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWritePage, path, err)
		}
	}

	for _, aux := range []struct {
		name string
		doc  string
	}{
		{"one-page.html", onePageDocument(published, opts.Version, builtAt)},
		{"links.html", linksDocument(published, opts.Version, builtAt)},
	} {
		path := filepath.Join(opts.OutputDir, aux.name)
		logf("Writing %q", path)
		if err := os.WriteFile(path, []byte(aux.doc), 0o644); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWritePage, path, err)
		}
	}

	return nil
}

// resolveCSS decides how pages reference styles. Returns the <link> tag to
// place in each page head ("" = embed inline) and the path of a stylesheet
// to create ("" = nothing to create). An existing stylesheet is referenced
// untouched.
func resolveCSS(opts WriteOptions) (cssLink, cssCreate string) {
	if opts.CSSFile == "" {
		return "", ""
	}

	cssLink = fmt.Sprintf("<link rel=\"stylesheet\" type=\"text/css\" href=%q>", opts.CSSFile)

	cssPath := filepath.Join(opts.OutputDir, opts.CSSFile)
	if !fileutil.FileExists(cssPath) {
		cssCreate = cssPath
	}
	return cssLink, cssCreate
}
