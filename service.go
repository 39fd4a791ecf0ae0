package mdsplit

import (
	"context"
	"fmt"
	"regexp"
)

// crlfOrCR normalizes line endings before segmentation.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Service orchestrates the markdown-to-pages pipeline.
type Service struct {
	renderer bodyRenderer
}

// New creates a Service with the default Goldmark renderer.
func New() *Service {
	return &Service{renderer: newGoldmarkRenderer()}
}

// Build runs the pure pipeline: segmentation, directive extraction,
// rendering, page assembly, and navigation linking. It performs no I/O; pass
// the result to WriteSite to emit files. The context cancels rendering.
func (s *Service) Build(ctx context.Context, input Input) (*Site, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyDocument
	}

	baseName := input.BaseName
	if baseName == "" {
		baseName = DefaultBaseName
	}

	level := input.SplitLevel
	if level == 0 {
		level = DefaultSplitLevel
	}
	if level < MinSplitLevel || level > MaxSplitLevel {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidSplitLevel, level, MinSplitLevel, MaxSplitLevel)
	}

	text := crlfOrCR.ReplaceAllString(input.Markdown, "\n")

	segments := segmentDocument(text, level)
	width := padWidth(len(segments))

	for i := range segments {
		body, directives := extractDirectives(segments[i].Body)
		segments[i].Body = body
		segments[i].Directives = directives
	}

	bodies, err := renderAll(ctx, s.renderer, segments, input.Workers)
	if err != nil {
		return nil, err
	}

	pages := make([]*Page, len(segments))
	for i, seg := range segments {
		pages[i] = assemblePage(seg, bodies[i], baseName, width, input.IndexFirst)
	}

	index := linkPages(pages)

	return &Site{Pages: pages, Index: index, IndexFirst: input.IndexFirst}, nil
}
