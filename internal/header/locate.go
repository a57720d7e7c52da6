package header

import "strings"

// Markers that end the header region: the first table row, a level-2
// heading, or a level-1 heading. Matched as newline-prefixed substrings so
// that an offset into the original text is recovered exactly.
var cutMarkers = []string{"\n| ", "\n## ", "\n# "}

// Locate splits a document into its header region and the cut index where
// the body begins. When no marker is present the whole document is header.
//
// Locate is pure: the extractor and the rewriter each call it independently
// and must agree on the same cut index for the same text.
func Locate(text string) (headerRegion string, cut int) {
	cut = len(text)
	for _, marker := range cutMarkers {
		if i := strings.Index(text, marker); i != -1 && i < cut {
			cut = i
		}
	}
	return text[:cut], cut
}

// headerLines returns the non-empty, whitespace-trimmed lines of a header
// region, in order.
func headerLines(region string) []string {
	var lines []string
	for _, ln := range strings.Split(region, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
