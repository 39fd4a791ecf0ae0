// Package mdsplit splits a single Markdown document into a set of linked
// static HTML pages.
//
// The document is cut at headings of a configurable level. Each resulting
// segment becomes one page, customized by directive comments embedded in the
// source:
//
//	<!-- title: Custom Page Title -->
//	<!-- class: wide text-center -->
//	<!-- no-pub -->
//
// Pages are linked in sequence with previous/next navigation; pages marked
// no-pub are excluded from output and jumped over by their neighbors.
//
// Pipeline stages, each consuming the previous stage's output:
//
//  1. Segmentation at level-L headings (fenced code blocks are opaque)
//  2. Per-segment directive extraction and stripping
//  3. Markdown to HTML rendering via Goldmark (GFM, syntax highlighting)
//  4. Navigation linking over published pages
//  5. Site writing: page files, index, stylesheet, image assets
//
// Build is pure and returns an in-memory Site; WriteSite is the only stage
// that touches the filesystem.
package mdsplit
