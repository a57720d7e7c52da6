// Package docstat summarizes the structure of a fixed markdown document.
// The report is attached to job results so callers can sanity-check that
// the repair kept the document shape they expect.
package docstat

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Report is a structural summary of one markdown document.
type Report struct {
	Bytes      int `json:"bytes"`
	Headings   int `json:"headings"`
	Paragraphs int `json:"paragraphs"`
	Tables     int `json:"tables"`
	TableRows  int `json:"table_rows"`
}

// Analyze parses markdown (with table support) and counts its blocks.
func Analyze(markdown string) Report {
	src := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	r := Report{Bytes: len(src)}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			r.Headings++
		case *ast.Paragraph:
			r.Paragraphs++
		case *extast.Table:
			r.Tables++
		case *extast.TableHeader, *extast.TableRow:
			r.TableRows++
		}
		return ast.WalkContinue, nil
	})
	return r
}
