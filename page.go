package mdsplit

import (
	"fmt"
	"strconv"
)

// padWidth returns the zero-padding width for page numbers: wide enough for
// the total page count, never narrower than minPadWidth. A fixed width per
// run guarantees lexical filename order matches navigation order.
func padWidth(total int) int {
	width := len(strconv.Itoa(total))
	if width < minPadWidth {
		width = minPadWidth
	}
	return width
}

// pageFilename derives the output filename for a segment ordinal. Filenames
// are a collision-free function of ordinal and base name; with indexFirst
// the first segment maps to the canonical index file.
func pageFilename(ordinal, width int, baseName string, indexFirst bool) string {
	if indexFirst && ordinal == 0 {
		return IndexFilename
	}
	return fmt.Sprintf("%s-%0*d.html", baseName, width, ordinal+1)
}

// assemblePage materializes a Segment into a Page. Title resolution order:
// title directive, then segment heading, then base name + ordinal. The body
// is expected to be already rendered to HTML.
func assemblePage(seg Segment, renderedBody, baseName string, width int, indexFirst bool) *Page {
	title := seg.Directives.Title
	if title == "" {
		title = seg.Heading
	}
	if title == "" {
		title = fmt.Sprintf("%s %d", baseName, seg.Ordinal+1)
	}

	return &Page{
		Ordinal:  seg.Ordinal,
		Filename: pageFilename(seg.Ordinal, width, baseName, indexFirst),
		Title:    title,
		Classes:  seg.Directives.Classes,
		Level:    seg.Level,
		Body:     renderedBody,
		Publish:  !seg.Directives.NoPub,
	}
}
