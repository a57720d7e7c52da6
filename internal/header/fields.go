// Package header reconstructs the key:value header block of a converted
// payslip. The upstream converter emits personal fields out of order,
// merged into the first table, or not at all; this package re-detects them
// from lexical shape and rewrites a clean, fixed-order header.
package header

// Field is one of the canonical payslip header keys.
type Field string

const (
	FieldName          Field = "Name"
	FieldDesignation   Field = "Designation"
	FieldEmpNo         Field = "EmpNo"
	FieldPAN           Field = "PAN"
	FieldUAN           Field = "UAN"
	FieldPFNo          Field = "PF No."
	FieldESINo         Field = "E.S.I. No."
	FieldDateOfJoining Field = "Date of Joining"
	FieldPayableDays   Field = "Payable Days"
	FieldBankName      Field = "Bank Name"
	FieldBankAccount   Field = "Bank Account"
	FieldIFSCode       Field = "IFS Code"
	FieldLocation      Field = "Location"
)

// FieldOrder is the serialization order of the header block. It is fixed:
// rewritten headers always list detected fields in this sequence.
var FieldOrder = []Field{
	FieldName,
	FieldDesignation,
	FieldEmpNo,
	FieldPAN,
	FieldUAN,
	FieldPFNo,
	FieldESINo,
	FieldDateOfJoining,
	FieldPayableDays,
	FieldBankName,
	FieldBankAccount,
	FieldIFSCode,
	FieldLocation,
}

// Fields holds the detected header values, one optional slot per canonical
// field. An empty string means the field was not detected; that is a valid
// state, not an error. The closed struct shape guarantees no unknown keys.
type Fields struct {
	Name          string
	Designation   string
	EmpNo         string
	PAN           string
	UAN           string
	PFNo          string
	ESINo         string
	DateOfJoining string
	PayableDays   string
	BankName      string
	BankAccount   string
	IFSCode       string
	Location      string
}

// Get returns the value stored in the slot for f, or "" when absent.
func (h *Fields) Get(f Field) string {
	switch f {
	case FieldName:
		return h.Name
	case FieldDesignation:
		return h.Designation
	case FieldEmpNo:
		return h.EmpNo
	case FieldPAN:
		return h.PAN
	case FieldUAN:
		return h.UAN
	case FieldPFNo:
		return h.PFNo
	case FieldESINo:
		return h.ESINo
	case FieldDateOfJoining:
		return h.DateOfJoining
	case FieldPayableDays:
		return h.PayableDays
	case FieldBankName:
		return h.BankName
	case FieldBankAccount:
		return h.BankAccount
	case FieldIFSCode:
		return h.IFSCode
	case FieldLocation:
		return h.Location
	}
	return ""
}

// Count returns how many fields were detected.
func (h *Fields) Count() int {
	n := 0
	for _, f := range FieldOrder {
		if h.Get(f) != "" {
			n++
		}
	}
	return n
}

// Hints are header values inferred from the input filename. At most Name
// and EmpNo are ever set; when present they are considered more reliable
// than lexically extracted values.
type Hints struct {
	Name  string
	EmpNo string
}
