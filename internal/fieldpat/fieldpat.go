// Package fieldpat holds the lexical matchers for Indian payroll header
// fields. Converter output scrambles these fields, so detection works on
// token shape alone: a PAN is always 5 letters + 4 alphanumerics + 1 letter,
// a UAN is a 12-digit run, an IFSC has a zero in position five, and so on.
package fieldpat

import (
	"regexp"
	"strings"
)

var (
	// PAN is a permanent account number, e.g. ABCDE1234F.
	PAN = regexp.MustCompile(`\b[A-Z]{5}[A-Z0-9]{4}[A-Z]\b`)

	// UAN is a universal account number: exactly 12 digits.
	UAN = regexp.MustCompile(`\b\d{12}\b`)

	// PFNo matches provident-fund numbers like AB/1234/5678.
	PFNo = regexp.MustCompile(`\b[A-Z]{1,3}/\d+/\d+\b`)

	// IFSC matches bank branch codes like SBIN0001234. The fifth
	// character is always a literal zero.
	IFSC = regexp.MustCompile(`\b[A-Z]{4}0[A-Z0-9]{6}\b`)

	// Date matches DD-MM-YYYY, the joining-date format used on payslips.
	Date = regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`)

	// LongDigits matches digit runs of 10 or more; bank account numbers
	// are at least 10 digits.
	LongDigits = regexp.MustCompile(`\b\d{10,}\b`)

	// SmallNumber matches a 1-3 digit run, e.g. a payable-days count.
	SmallNumber = regexp.MustCompile(`\b\d{1,3}\b`)

	// PersonName matches a full line holding a 2-3 word title-case phrase.
	PersonName = regexp.MustCompile(`^[A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+){1,2}$`)

	// TwoWordName matches exactly two capitalized words, used to validate
	// name candidates assembled from filename tokens.
	TwoWordName = regexp.MustCompile(`^[A-Z][a-zA-Z]+ [A-Z][a-zA-Z]+$`)

	// EmpNo matches a standalone 4-8 digit employee number.
	EmpNo = regexp.MustCompile(`^\d{4,8}$`)

	// NumericSuffix matches a 4+ digit token, the employee-number suffix
	// convention in exported filenames.
	NumericSuffix = regexp.MustCompile(`^\d{4,}$`)

	// AlphaToken matches a purely alphabetic filename token.
	AlphaToken = regexp.MustCompile(`^[A-Za-z]+$`)

	whitespace = regexp.MustCompile(`\s+`)
)

// RoleKeywords are job-title words used to spot a designation line.
var RoleKeywords = []string{
	"Engineer",
	"Manager",
	"Director",
	"Analyst",
	"Developer",
	"Consultant",
	"Associate",
	"Lead",
	"Specialist",
	"Architect",
}

// HasRoleKeyword reports whether s contains any job-title keyword.
func HasRoleKeyword(s string) bool {
	for _, k := range RoleKeywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// CollapseSpaces trims s and squeezes internal whitespace runs to one space.
func CollapseSpaces(s string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}
