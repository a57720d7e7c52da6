// Package parser turns supported input documents into the single markdown
// text blob the fix pipeline operates on. Markdown inputs pass through
// untouched; PDF, DOCX, HTML, and CSV inputs are rendered to a markdown-like
// blob that follows the same header-then-tables contract.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Parser renders raw document bytes into a markdown text blob.
type Parser interface {
	Parse(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions this pipeline can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".pdf":      true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".csv":      true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".txt":
		return &MarkdownParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: true}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
