package header

import "fmt"

// Tie-break strategies for fields with multiple lexical candidates.
const (
	MatchFirst   = "first"
	MatchLast    = "last"
	MatchLongest = "longest"
)

// Policy controls how conflicting matches are resolved. The defaults mirror
// the payroll layout this pipeline was tuned on: later 12-digit runs are
// less likely to collide with other numeric fields, and the bank account is
// the longest digit run left of the IFSC code.
type Policy struct {
	// UANMatch picks among multiple 12-digit runs: "first" or "last".
	UANMatch string `yaml:"uan_match"`
	// BankAccountMatch picks among 10+ digit runs before the IFSC code
	// on the join line: "first" or "longest".
	BankAccountMatch string `yaml:"bank_account_match"`
}

// DefaultPolicy returns the tuned defaults.
func DefaultPolicy() Policy {
	return Policy{
		UANMatch:         MatchLast,
		BankAccountMatch: MatchLongest,
	}
}

// Validate checks policy values, substituting defaults for empty fields.
func (p *Policy) Validate() error {
	if p.UANMatch == "" {
		p.UANMatch = MatchLast
	}
	if p.BankAccountMatch == "" {
		p.BankAccountMatch = MatchLongest
	}
	switch p.UANMatch {
	case MatchFirst, MatchLast:
	default:
		return fmt.Errorf("uan_match: unknown strategy %q", p.UANMatch)
	}
	switch p.BankAccountMatch {
	case MatchFirst, MatchLongest:
	default:
		return fmt.Errorf("bank_account_match: unknown strategy %q", p.BankAccountMatch)
	}
	return nil
}
