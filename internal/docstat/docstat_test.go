package docstat

import "testing"

func TestAnalyze(t *testing.T) {
	doc := "# Payslip\n\nSome intro text.\n\n" +
		"| Earnings | Amount |\n" +
		"| --- | --- |\n" +
		"| Basic | 50000 |\n" +
		"| HRA | 20000 |\n\n" +
		"## Notes\n\nFinal paragraph.\n"

	r := Analyze(doc)

	if r.Bytes != len(doc) {
		t.Errorf("Bytes = %d, want %d", r.Bytes, len(doc))
	}
	if r.Headings != 2 {
		t.Errorf("Headings = %d, want 2", r.Headings)
	}
	if r.Paragraphs != 2 {
		t.Errorf("Paragraphs = %d, want 2", r.Paragraphs)
	}
	if r.Tables != 1 {
		t.Errorf("Tables = %d, want 1", r.Tables)
	}
	// Header row plus two data rows; the alignment row is markup.
	if r.TableRows != 3 {
		t.Errorf("TableRows = %d, want 3", r.TableRows)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	r := Analyze("")
	if r != (Report{}) {
		t.Errorf("Analyze(\"\") = %+v, want zero report", r)
	}
}

func TestAnalyzeNoTables(t *testing.T) {
	r := Analyze("just a paragraph\n")
	if r.Tables != 0 || r.TableRows != 0 {
		t.Errorf("Tables/TableRows = %d/%d, want 0/0", r.Tables, r.TableRows)
	}
	if r.Paragraphs != 1 {
		t.Errorf("Paragraphs = %d, want 1", r.Paragraphs)
	}
}
