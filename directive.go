package mdsplit

import (
	"regexp"
	"strings"
)

// Directive comments occupy a whole line. Matching is exact on the
// recognized keys so unrelated HTML comments pass through untouched.
// Precompiled patterns, applied to the whitespace-trimmed line.
var (
	titleDirective = regexp.MustCompile(`^<!--\s*title:\s*(.*?)\s*-->$`)
	classDirective = regexp.MustCompile(`^<!--\s*class:\s*(.*?)\s*-->$`)
	noPubDirective = regexp.MustCompile(`^<!--\s*no-pub\s*-->$`)
)

// extractDirectives returns text with every recognized directive comment
// removed, plus the directives found, merged in document order.
//
// Merge rules: a later title overwrites an earlier one; class tokens
// accumulate with duplicates removed in first-occurrence order; no-pub is
// set by any occurrence. A recognized directive with no usable value (empty
// title, class with zero tokens) is stripped but contributes nothing.
// Non-directive content is preserved byte-for-byte, so the function is
// idempotent.
func extractDirectives(text string) (string, Directives) {
	var d Directives

	var out strings.Builder
	out.Grow(len(text))

	seen := make(map[string]bool)

	for _, line := range strings.SplitAfter(text, "\n") {
		s := strings.TrimSpace(line)

		if m := titleDirective.FindStringSubmatch(s); m != nil {
			if m[1] != "" {
				d.Title = m[1]
			}
			continue
		}

		if m := classDirective.FindStringSubmatch(s); m != nil {
			for _, token := range strings.Fields(m[1]) {
				if !seen[token] {
					seen[token] = true
					d.Classes = append(d.Classes, token)
				}
			}
			continue
		}

		if noPubDirective.MatchString(s) {
			d.NoPub = true
			continue
		}

		out.WriteString(line)
	}

	return out.String(), d
}
