package header

import (
	"sort"
	"strings"
)

// Rewrite replaces the original pre-table header with a clean key:value
// block. Detected fields are emitted in canonical order as
// "**Key**: value" lines; absent fields are skipped, never placeholdered.
// The body region, from the recomputed cut index onward, is carried over
// byte for byte.
func Rewrite(text string, h Fields) string {
	var lines []string
	for _, f := range FieldOrder {
		if v := h.Get(f); v != "" {
			lines = append(lines, "**"+string(f)+"**: "+v)
		}
	}
	clean := strings.Join(lines, "\n") + "\n\n"

	_, cut := Locate(text)
	return clean + text[cut:]
}

// Vocabulary returns the lowercased header key strings used by the table
// filter to spot header-shaped rows, including the merged-label spellings
// that show up when a label/value pair bleeds into the table grid.
func Vocabulary() []string {
	seen := make(map[string]struct{}, len(FieldOrder))
	for _, f := range FieldOrder {
		seen[strings.ToLower(string(f))] = struct{}{}
	}
	for _, aux := range []string{
		"date of joining",
		"payable days",
		"bank name",
		"bank account",
		"ifs code",
		"location",
	} {
		seen[aux] = struct{}{}
	}

	vocab := make([]string, 0, len(seen))
	for tok := range seen {
		vocab = append(vocab, tok)
	}
	sort.Strings(vocab)
	return vocab
}
