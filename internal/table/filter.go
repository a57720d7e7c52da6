// Package table excises header-shaped rows that leaked into the first
// markdown table of a converted payslip. Only the first table is ever
// touched; alignment rows and genuine data rows are preserved in order.
package table

import "strings"

// Filter removes rows of the first table whose text contains any
// vocabulary token (matched case-insensitively as substrings). Alignment
// rows are always kept. When no table exists or nothing matches, the input
// is returned unchanged, so re-running on cleaned output is a no-op.
// The removed count is reported for logging.
func Filter(text string, vocab []string) (string, int) {
	lines := splitLines(text)

	start := -1
	for i, ln := range lines {
		if isTableLine(ln) {
			start = i
			break
		}
	}
	if start == -1 {
		return text, 0
	}

	end := start
	for end < len(lines) && isTableLine(lines[end]) {
		end++
	}

	kept := make([]string, 0, end-start)
	removed := 0
	for _, ln := range lines[start:end] {
		if isAlignmentRow(ln) {
			kept = append(kept, ln)
			continue
		}
		if containsAny(strings.ToLower(ln), vocab) {
			removed++
			continue
		}
		kept = append(kept, ln)
	}
	if removed == 0 {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, ln := range lines[:start] {
		b.WriteString(ln)
	}
	for _, ln := range kept {
		b.WriteString(ln)
	}
	for _, ln := range lines[end:] {
		b.WriteString(ln)
	}
	return b.String(), removed
}

// isTableLine reports whether a line belongs to a table run: its stripped
// form starts with the row delimiter.
func isTableLine(ln string) bool {
	return strings.HasPrefix(strings.TrimLeft(ln, " \t"), "|")
}

// isAlignmentRow reports whether a row is pure separator syntax, e.g.
// "| --- | :---: | ---: |". With the delimiters removed, only '-', ':',
// and spaces may remain.
func isAlignmentRow(ln string) bool {
	body := strings.TrimSpace(ln)
	if !strings.HasPrefix(body, "|") {
		return false
	}
	inner := strings.TrimSpace(strings.ReplaceAll(body, "|", ""))
	for _, r := range inner {
		switch r {
		case '-', ':', ' ':
		default:
			return false
		}
	}
	return true
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// splitLines splits text into lines with their trailing newlines kept, so
// that reassembly is byte-exact outside the filtered rows.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
