package header

import (
	"regexp"
	"strings"

	"github.com/paydoc/payfix/internal/fieldpat"
)

// kvLine matches this package's own "**Key**: value" serialization, so an
// already-rewritten header reads back losslessly. Without this, fields
// derived from the join line would vanish on a second pass, since the
// rewritten header no longer has a join line.
var kvLine = regexp.MustCompile(`^\*\*(.+?)\*\*: (.+)$`)

var fieldByName = func() map[string]Field {
	m := make(map[string]Field, len(FieldOrder))
	for _, f := range FieldOrder {
		m[string(f)] = f
	}
	return m
}()

// Extract detects header fields in the pre-table region of a converted
// document. Clean "**Key**: value" lines are read back verbatim; everything
// else goes through lexical heuristics. Every step is best-effort: an
// unmatched field stays empty and nothing here ever fails. Filename hints,
// when present, override the derived Name and EmpNo.
func Extract(text string, hints Hints, pol Policy) Fields {
	region, _ := Locate(text)

	var h Fields

	// Read back any lines already in canonical form and keep the rest
	// for the heuristics. Keys outside the fixed field set are noise.
	var lines []string
	for _, ln := range headerLines(region) {
		if m := kvLine.FindStringSubmatch(ln); m != nil {
			if f, ok := fieldByName[m[1]]; ok {
				h.set(f, m[2])
				continue
			}
		}
		lines = append(lines, ln)
	}

	// Residual text: the header region minus clean key:value lines, so
	// values already read back are not re-matched out of context.
	residual := strings.Join(lines, "\n")

	// PAN: unique shape, first match over the residual region.
	if h.PAN == "" {
		h.PAN = fieldpat.PAN.FindString(residual)
	}

	// UAN: 12-digit runs can collide with account fragments; the policy
	// picks which occurrence to trust.
	if h.UAN == "" {
		if runs := fieldpat.UAN.FindAllString(residual, -1); len(runs) > 0 {
			if pol.UANMatch == MatchFirst {
				h.UAN = runs[0]
			} else {
				h.UAN = runs[len(runs)-1]
			}
		}
	}

	if h.PFNo == "" {
		h.PFNo = fieldpat.PFNo.FindString(residual)
	}

	extractJoinLine(&h, lines, pol)

	// Designation: first short line holding a job-title keyword.
	if h.Designation == "" {
		for _, ln := range lines {
			if fieldpat.HasRoleKeyword(ln) && len(strings.Fields(ln)) <= 5 {
				h.Designation = ln
				break
			}
		}
	}

	// Name: first title-case 2-3 word line that isn't the designation.
	if h.Name == "" {
		for _, ln := range lines {
			if h.Designation != "" && ln == h.Designation {
				continue
			}
			if fieldpat.PersonName.MatchString(ln) {
				h.Name = ln
				break
			}
		}
	}

	// EmpNo: hint wins; otherwise the first standalone 4-8 digit line not
	// already claimed by UAN, Bank Account, or Payable Days.
	if hints.EmpNo != "" {
		h.EmpNo = hints.EmpNo
	} else if h.EmpNo == "" {
		used := make(map[string]bool, 3)
		for _, v := range []string{h.UAN, h.BankAccount, h.PayableDays} {
			if v != "" {
				used[v] = true
			}
		}
		for _, ln := range lines {
			if fieldpat.EmpNo.MatchString(ln) && !used[ln] {
				h.EmpNo = ln
				break
			}
		}
	}

	// The filename convention, when recognized, is more reliable than a
	// title-case guess from noisy text.
	if hints.Name != "" {
		h.Name = hints.Name
	}

	return h
}

// set stores v in the slot for f, ignoring empty values.
func (h *Fields) set(f Field, v string) {
	if v == "" {
		return
	}
	switch f {
	case FieldName:
		h.Name = v
	case FieldDesignation:
		h.Designation = v
	case FieldEmpNo:
		h.EmpNo = v
	case FieldPAN:
		h.PAN = v
	case FieldUAN:
		h.UAN = v
	case FieldPFNo:
		h.PFNo = v
	case FieldESINo:
		h.ESINo = v
	case FieldDateOfJoining:
		h.DateOfJoining = v
	case FieldPayableDays:
		h.PayableDays = v
	case FieldBankName:
		h.BankName = v
	case FieldBankAccount:
		h.BankAccount = v
	case FieldIFSCode:
		h.IFSCode = v
	case FieldLocation:
		h.Location = v
	}
}

// extractJoinLine derives Date of Joining, Payable Days, Bank Name,
// Bank Account, IFS Code, and Location from the single header line that
// carries both a date and an IFSC code, slicing it left to right. Fields
// whose slice finds nothing stay empty; later steps still run on whatever
// remainder exists. Slots already read back from a clean header are kept.
func extractJoinLine(h *Fields, lines []string, pol Policy) {
	var join string
	for _, ln := range lines {
		if fieldpat.Date.MatchString(ln) && fieldpat.IFSC.MatchString(ln) {
			join = ln
			break
		}
	}
	if join == "" {
		return
	}

	dateLoc := fieldpat.Date.FindStringIndex(join)
	if h.DateOfJoining == "" {
		h.DateOfJoining = join[dateLoc[0]:dateLoc[1]]
	}

	// Everything after the date.
	rest := join[dateLoc[1]:]

	rest2 := rest
	daysFound := false
	if loc := fieldpat.SmallNumber.FindStringIndex(rest); loc != nil {
		if h.PayableDays == "" {
			h.PayableDays = rest[loc[0]:loc[1]]
		}
		rest2 = rest[loc[1]:]
		daysFound = true
	}

	ifscLoc := fieldpat.IFSC.FindStringIndex(rest2)

	// Bank account: a 10+ digit run left of the IFSC code.
	var acctLoc []int
	if ifscLoc != nil {
		for _, loc := range fieldpat.LongDigits.FindAllStringIndex(rest2, -1) {
			if loc[0] >= ifscLoc[0] {
				break
			}
			if acctLoc == nil {
				acctLoc = loc
				if pol.BankAccountMatch == MatchFirst {
					break
				}
				continue
			}
			if loc[1]-loc[0] > acctLoc[1]-acctLoc[0] {
				acctLoc = loc
			}
		}
	}
	if acctLoc != nil && h.BankAccount == "" {
		h.BankAccount = rest2[acctLoc[0]:acctLoc[1]]
	}
	if ifscLoc != nil && h.IFSCode == "" {
		h.IFSCode = rest2[ifscLoc[0]:ifscLoc[1]]
	}

	// Bank name sits between the payable-days token and the account digits.
	if daysFound && acctLoc != nil && h.BankName == "" {
		h.BankName = fieldpat.CollapseSpaces(rest2[:acctLoc[0]])
	}

	// Location is whatever follows the IFSC code.
	if ifscLoc != nil && h.Location == "" {
		h.Location = fieldpat.CollapseSpaces(rest2[ifscLoc[1]:])
	}
}
