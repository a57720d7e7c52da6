package header

import (
	"path/filepath"
	"strings"

	"github.com/paydoc/payfix/internal/fieldpat"
)

// HintsFromPath infers header fields from the input file's base name.
//
// Payroll exports commonly follow conventions such as
// "MT_Payslip_6_2024_First_Last_123456" where the final numeric token is
// the employee number and the two tokens before it form the full name.
// Anything that does not fit the convention simply yields fewer hints;
// this never fails.
func HintsFromPath(path string) Hints {
	var hints Hints

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(stem, "_")
	if len(parts) < 3 {
		return hints
	}

	last := parts[len(parts)-1]
	prev := parts[len(parts)-2]

	if fieldpat.NumericSuffix.MatchString(last) {
		hints.EmpNo = last
	}
	if fieldpat.AlphaToken.MatchString(prev) && len(parts) >= 4 {
		candidate := parts[len(parts)-3] + " " + prev
		if fieldpat.TwoWordName.MatchString(candidate) {
			hints.Name = candidate
		}
	}
	return hints
}
