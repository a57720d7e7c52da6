package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantType string
	}{
		{"payslip.md", "*parser.MarkdownParser"},
		{"payslip.markdown", "*parser.MarkdownParser"},
		{"payslip.txt", "*parser.MarkdownParser"},
		{"payslip.PDF", "*parser.PDFParser"},
		{"payslip.docx", "*parser.DOCXParser"},
		{"payslip.html", "*parser.HTMLParser"},
		{"payslip.htm", "*parser.HTMLParser"},
		{"payslip.csv", "*parser.CSVParser"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			p, err := ForFile(tt.filename)
			if err != nil {
				t.Fatalf("ForFile(%q) error: %v", tt.filename, err)
			}
			if got := fmt.Sprintf("%T", p); got != tt.wantType {
				t.Errorf("ForFile(%q) = %s, want %s", tt.filename, got, tt.wantType)
			}
		})
	}
}

func TestForFileUnsupported(t *testing.T) {
	for _, name := range []string{"payslip.exe", "payslip", "payslip.xlsx"} {
		if _, err := ForFile(name); err == nil {
			t.Errorf("ForFile(%q) should fail", name)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a/b/payslip.MD") {
		t.Error("uppercase extension should be supported")
	}
	if IsSupportedExtension("payslip.doc") {
		t.Error(".doc should not be supported")
	}
}

func TestMarkdownParserPassthrough(t *testing.T) {
	p := &MarkdownParser{}

	got, err := p.Parse(strings.NewReader("# Title\n\nbody\n"), "payslip.md")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != "# Title\n\nbody\n" {
		t.Errorf("Parse = %q", got)
	}
}

func TestMarkdownParserNormalizesCRLF(t *testing.T) {
	p := &MarkdownParser{}

	got, err := p.Parse(strings.NewReader("a\r\nb\r\n"), "payslip.md")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != "a\nb\n" {
		t.Errorf("Parse = %q, want %q", got, "a\nb\n")
	}
}

func TestMarkdownParserStripsBOM(t *testing.T) {
	p := &MarkdownParser{}

	got, err := p.Parse(strings.NewReader("\xef\xbb\xbfhello"), "payslip.md")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != "hello" {
		t.Errorf("Parse = %q, want %q", got, "hello")
	}
}

func TestCSVParserRendersTable(t *testing.T) {
	p := &CSVParser{}

	in := "Earnings,Amount\nBasic,50000\nHRA,20000\n"
	got, err := p.Parse(strings.NewReader(in), "payslip.csv")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := "| Earnings | Amount |\n" +
		"| --- | --- |\n" +
		"| Basic | 50000 |\n" +
		"| HRA | 20000 |\n"
	if got != want {
		t.Errorf("Parse =\n%q\nwant\n%q", got, want)
	}
}

func TestCSVParserEscapesPipes(t *testing.T) {
	p := &CSVParser{}

	got, err := p.Parse(strings.NewReader("Note\na|b\n"), "payslip.csv")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("pipes not escaped: %q", got)
	}
}

func TestCSVParserEmpty(t *testing.T) {
	p := &CSVParser{}

	got, err := p.Parse(strings.NewReader(""), "payslip.csv")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got != "" {
		t.Errorf("Parse = %q, want empty", got)
	}
}
