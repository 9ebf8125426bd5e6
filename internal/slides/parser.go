// Package slides splits model output into slides and pages through them.
package slides

import "strings"

// Delimiter separates slides in the model output. The prompt asks for it
// verbatim and there is no fallback for other separators.
const Delimiter = "---SLIDE_BREAK---"

// Parse splits raw on Delimiter, trims each segment and drops the blank ones.
// Order is preserved. It never fails and returns an empty (non-nil) slice
// when nothing meaningful is left.
func Parse(raw string) []string {
	out := []string{}
	for _, seg := range strings.Split(raw, Delimiter) {
		if s := strings.TrimSpace(seg); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Title returns the first markdown heading of a slide with emphasis markers
// removed, or "" when the slide has none.
func Title(slide string) string {
	for _, ln := range strings.Split(slide, "\n") {
		ln = strings.TrimSpace(ln)
		if !strings.HasPrefix(ln, "#") {
			continue
		}
		ln = strings.TrimSpace(strings.TrimLeft(ln, "#"))
		ln = strings.ReplaceAll(ln, "**", "")
		ln = strings.ReplaceAll(ln, "__", "")
		return strings.TrimSpace(ln)
	}
	return ""
}
