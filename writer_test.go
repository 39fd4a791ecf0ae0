package mdsplit

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCSS = "body { font-family: serif; }\n"

func buildTestSite(t *testing.T, markdown string, indexFirst bool) *Site {
	t.Helper()
	s := &Service{renderer: &fakeRenderer{}}
	site, err := s.Build(context.Background(), Input{
		Markdown:   markdown,
		IndexFirst: indexFirst,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return site
}

func TestWriteSite_PageFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	site := buildTestSite(t, "# One\na\n# Two\nb\n# Three\nc\n", false)

	s := &Service{}
	err := s.WriteSite(site, WriteOptions{
		OutputDir:  filepath.Join(dir, "out"),
		DefaultCSS: testCSS,
		Version:    "v0",
	})
	if err != nil {
		t.Fatalf("WriteSite() error = %v", err)
	}

	for _, name := range []string{
		"page-001.html", "page-002.html", "page-003.html",
		"index.html", "one-page.html", "links.html",
	} {
		if _, statErr := os.Stat(filepath.Join(dir, "out", name)); statErr != nil {
			t.Errorf("missing output file %s: %v", name, statErr)
		}
	}

	// Inline default styles when no CSS file is configured.
	content, err := os.ReadFile(filepath.Join(dir, "out", "page-001.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), testCSS) {
		t.Error("page should embed the default styles inline")
	}
	if strings.Contains(string(content), "<link rel=\"stylesheet\"") {
		t.Error("page should not reference an external stylesheet")
	}
}

func TestWriteSite_NoPubPageOmittedFromDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	site := buildTestSite(t, "# One\na\n# Two\n<!-- no-pub -->\nb\n# Three\nc\n", false)

	s := &Service{}
	if err := s.WriteSite(site, WriteOptions{OutputDir: dir, DefaultCSS: testCSS}); err != nil {
		t.Fatalf("WriteSite() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "page-002.html")); !os.IsNotExist(err) {
		t.Error("no-pub page must not be written")
	}

	// Neighbors link directly across the gap.
	content, err := os.ReadFile(filepath.Join(dir, "page-001.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `<a href="page-003.html">`) {
		t.Error("page 1 should link forward to page 3")
	}
}

func TestWriteSite_CSSFileCreatedWhenAbsent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	site := buildTestSite(t, "# One\na\n", false)

	s := &Service{}
	err := s.WriteSite(site, WriteOptions{
		OutputDir:  dir,
		CSSFile:    "custom.css",
		DefaultCSS: testCSS,
	})
	if err != nil {
		t.Fatalf("WriteSite() error = %v", err)
	}

	cssContent, err := os.ReadFile(filepath.Join(dir, "custom.css"))
	if err != nil {
		t.Fatalf("stylesheet not created: %v", err)
	}
	if string(cssContent) != testCSS {
		t.Errorf("stylesheet content = %q, want default styles", cssContent)
	}

	pageContent, err := os.ReadFile(filepath.Join(dir, "page-001.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(pageContent), `href="custom.css"`) {
		t.Error("page should reference the stylesheet externally")
	}
	if strings.Contains(string(pageContent), "<style>") {
		t.Error("page should not embed a style block")
	}
}

func TestWriteSite_ExistingCSSFileUntouched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	custom := "h1 { color: green; }\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.css"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	site := buildTestSite(t, "# One\na\n", false)
	s := &Service{}
	err := s.WriteSite(site, WriteOptions{
		OutputDir:  dir,
		CSSFile:    "custom.css",
		DefaultCSS: testCSS,
	})
	if err != nil {
		t.Fatalf("WriteSite() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "custom.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != custom {
		t.Errorf("existing stylesheet was modified: %q", content)
	}
}

func TestWriteSite_ImagesCopied(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	outDir := t.TempDir()

	imagesDir := filepath.Join(srcDir, "images")
	if err := os.Mkdir(imagesDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(imagesDir, "pic.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(imagesDir, "nested"), 0o750); err != nil {
		t.Fatal(err)
	}

	site := buildTestSite(t, "# One\na\n", false)
	s := &Service{}
	err := s.WriteSite(site, WriteOptions{
		OutputDir:    outDir,
		ImagesSubdir: "images",
		SourceDir:    srcDir,
		DefaultCSS:   testCSS,
	})
	if err != nil {
		t.Fatalf("WriteSite() error = %v", err)
	}

	copied, err := os.ReadFile(filepath.Join(outDir, "images", "pic.png"))
	if err != nil {
		t.Fatalf("image not copied: %v", err)
	}
	if string(copied) != "png-bytes" {
		t.Errorf("copied content = %q", copied)
	}
	if _, err := os.Stat(filepath.Join(outDir, "images", "nested")); !os.IsNotExist(err) {
		t.Error("nested directories should not be copied")
	}
}

func TestWriteSite_MissingImagesDirFailsBeforeWriting(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	site := buildTestSite(t, "# One\na\n", false)
	s := &Service{}
	err := s.WriteSite(site, WriteOptions{
		OutputDir:    outDir,
		ImagesSubdir: "images",
		SourceDir:    srcDir,
		DefaultCSS:   testCSS,
	})
	if !errors.Is(err, ErrImagesDirMissing) {
		t.Fatalf("error = %v, want ErrImagesDirMissing", err)
	}

	entries, readErr := os.ReadDir(outDir)
	if readErr == nil && len(entries) > 0 {
		t.Errorf("no pages should be written on config error, found %d entries", len(entries))
	}
}

func TestWriteSite_IndexFirstSkipsContentsPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	site := buildTestSite(t, "# One\na\n# Two\nb\n", true)

	s := &Service{}
	if err := s.WriteSite(site, WriteOptions{OutputDir: dir, DefaultCSS: testCSS}); err != nil {
		t.Fatalf("WriteSite() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(content), "Index of Pages") {
		t.Error("index.html should be the first page, not a contents page")
	}
	if _, err := os.Stat(filepath.Join(dir, "page-002.html")); err != nil {
		t.Errorf("second page missing: %v", err)
	}
}

func TestWriteSite_NothingPublishedWritesNothing(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	site := buildTestSite(t, "# One\n<!-- no-pub -->\na\n", false)

	s := &Service{}
	if err := s.WriteSite(site, WriteOptions{OutputDir: dir, DefaultCSS: testCSS}); err != nil {
		t.Fatalf("WriteSite() error = %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("output directory should not be created when nothing is published")
	}
}

func TestWriteSite_RequiresDefaultCSS(t *testing.T) {
	t.Parallel()

	site := buildTestSite(t, "# One\na\n", false)
	s := &Service{}
	err := s.WriteSite(site, WriteOptions{OutputDir: t.TempDir()})
	if !errors.Is(err, ErrNoDefaultCSS) {
		t.Errorf("error = %v, want ErrNoDefaultCSS", err)
	}
}

func TestWriteSite_LogsProgress(t *testing.T) {
	t.Parallel()

	var logged []string
	site := buildTestSite(t, "# One\na\n", false)

	s := &Service{}
	err := s.WriteSite(site, WriteOptions{
		OutputDir:  t.TempDir(),
		DefaultCSS: testCSS,
		Logf: func(format string, args ...any) {
			logged = append(logged, format)
		},
	})
	if err != nil {
		t.Fatalf("WriteSite() error = %v", err)
	}
	if len(logged) == 0 {
		t.Error("expected progress log lines")
	}
}
