package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser handles CSV payslip exports by rendering them as a markdown
// table, so the downstream row filter sees the same delimiter contract as
// converter output.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	var buf strings.Builder
	buf.WriteString(renderRow(records[0]))
	buf.WriteString(alignmentRow(len(records[0])))
	for _, row := range records[1:] {
		buf.WriteString(renderRow(row))
	}
	return buf.String(), nil
}

func renderRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return "| " + strings.Join(escaped, " | ") + " |\n"
}

func alignmentRow(n int) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = "---"
	}
	return "| " + strings.Join(cells, " | ") + " |\n"
}
