package parser

import (
	"io"
	"strings"
)

// MarkdownParser handles markdown and plain-text inputs. These are already
// in the converter's output format, so parsing is a passthrough apart from
// line-ending normalization.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text := string(src)
	// Normalize CRLF so offset arithmetic downstream sees plain \n.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	// Strip a UTF-8 BOM if the exporter left one.
	text = strings.TrimPrefix(text, "\uFEFF")
	return text, nil
}
