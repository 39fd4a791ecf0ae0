package mdsplit

import (
	"regexp"
	"strings"
)

// inlineLink matches Markdown links and images; replacement keeps the text.
var inlineLink = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)

// closingHashes matches an ATX closing sequence (" ##") at end of line.
var closingHashes = regexp.MustCompile(`\s+#+$`)

// emphasisMarkers strips inline emphasis and code-span markup from heading
// text. Single underscores are left alone: they are usually intra-word.
var emphasisMarkers = strings.NewReplacer(
	"**", "",
	"__", "",
	"~~", "",
	"*", "",
	"`", "",
)

// segmentDocument splits raw document text into ordered segments at ATX
// headings of exactly the given level. Headings at other levels and
// headings inside fenced code blocks stay in the segment body. Content
// before the first boundary forms the leading segment; it is dropped when
// blank. A document with no level-L headings yields a single segment.
//
// Directive comments are still present in segment bodies at this stage;
// they never look like headings, so boundaries are unaffected.
func segmentDocument(text string, level int) []Segment {
	var bodies []string
	var current strings.Builder

	inFence := false
	fenceMarker := ""
	leading := true

	for _, line := range strings.SplitAfter(text, "\n") {
		s := strings.TrimSpace(line)

		if marker := fenceDelimiter(s); marker != "" && (!inFence || strings.HasPrefix(marker, fenceMarker)) {
			if inFence {
				inFence = false
				fenceMarker = ""
			} else {
				inFence = true
				fenceMarker = marker[:3]
			}
			current.WriteString(line)
			continue
		}

		if !inFence && isHeadingAtLevel(s, level) {
			if !leading || strings.TrimSpace(current.String()) != "" {
				bodies = append(bodies, current.String())
			}
			leading = false
			current.Reset()
		}

		current.WriteString(line)
	}

	if !leading || strings.TrimSpace(current.String()) != "" {
		bodies = append(bodies, current.String())
	}

	segments := make([]Segment, len(bodies))
	for i, body := range bodies {
		heading, headingLevel := firstHeading(body)
		segments[i] = Segment{
			Ordinal: i,
			Heading: heading,
			Level:   headingLevel,
			Body:    body,
		}
	}
	return segments
}

// fenceDelimiter returns the fence marker run ("```" or "~~~", possibly
// longer) opening or closing a fenced code block, or "" for ordinary lines.
func fenceDelimiter(s string) string {
	for _, marker := range []string{"```", "~~~"} {
		if strings.HasPrefix(s, marker) {
			run := len(marker)
			for run < len(s) && s[run] == marker[0] {
				run++
			}
			return s[:run]
		}
	}
	return ""
}

// isHeadingAtLevel reports whether the trimmed line is an ATX heading at
// exactly the given level: N '#' characters followed by a space.
func isHeadingAtLevel(s string, level int) bool {
	if len(s) <= level {
		return false
	}
	for i := 0; i < level; i++ {
		if s[i] != '#' {
			return false
		}
	}
	return s[level] == ' '
}

// firstHeading scans a segment body for its first ATX heading at any level,
// skipping fenced code blocks, and returns the heading as plain text with
// its level. Returns ("", 1) when the body has no heading.
func firstHeading(body string) (string, int) {
	inFence := false
	for _, line := range strings.Split(body, "\n") {
		s := strings.TrimSpace(line)
		if fenceDelimiter(s) != "" {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(s, "#") {
			continue
		}
		level := 0
		for level < len(s) && s[level] == '#' {
			level++
		}
		if level > MaxSplitLevel || level >= len(s) || s[level] != ' ' {
			continue
		}
		return headingPlainText(s[level+1:]), level
	}
	return "", 1
}

// headingPlainText reduces heading Markdown to plain text for use as a
// default page title: trims whitespace and closing '#' runs, resolves links
// and images to their text, and strips emphasis markers.
func headingPlainText(s string) string {
	s = strings.TrimSpace(s)
	s = closingHashes.ReplaceAllString(s, "")
	s = inlineLink.ReplaceAllString(s, "$1")
	return emphasisMarkers.Replace(s)
}
