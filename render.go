package mdsplit

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// bodyRenderer abstracts Markdown to HTML fragment conversion.
type bodyRenderer interface {
	Render(ctx context.Context, content string) (string, error)
}

// goldmarkRenderer renders Markdown to HTML fragments using goldmark.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a goldmarkRenderer with GFM extensions and
// syntax highlighting.
func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchor IDs for the extracted-links page
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Unrecognized HTML comments and other raw HTML must survive to
			// the output as ordinary content; without this Goldmark replaces
			// them with placeholders.
			html.WithUnsafe(),
		),
	)
	return &goldmarkRenderer{md: md}
}

// Render converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (r *goldmarkRenderer) Render(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// rewriteExternalLinks makes absolute http(s) links open in a new tab, so
// following an external reference never abandons the page sequence.
func rewriteExternalLinks(htmlContent string) string {
	return strings.ReplaceAll(htmlContent, `<a href="http`, `<a target="_blank" href="http`)
}
