package rules

import (
	"strings"
	"unicode/utf16"
)

// MinPasswordLength is the minimum password length in UTF-16 code units,
// the unit browsers use for string length.
const MinPasswordLength = 8

// PasswordReport holds the state of every password requirement. The JSON
// names match what the registration UI renders as a checklist.
type PasswordReport struct {
	HasNumber  bool `json:"isNumber"`
	MinLength  bool `json:"isMin"`
	HasUpper   bool `json:"isUpper"`
	HasLower   bool `json:"isLower"`
	HasSpecial bool `json:"isSpecial"`
}

// OK reports whether every requirement is met.
func (r PasswordReport) OK() bool {
	return r.HasNumber && r.MinLength && r.HasUpper && r.HasLower && r.HasSpecial
}

// Missing lists the JSON names of unmet requirements, in checklist order.
func (r PasswordReport) Missing() []string {
	var missing []string
	if !r.HasNumber {
		missing = append(missing, "isNumber")
	}
	if !r.MinLength {
		missing = append(missing, "isMin")
	}
	if !r.HasUpper {
		missing = append(missing, "isUpper")
	}
	if !r.HasLower {
		missing = append(missing, "isLower")
	}
	if !r.HasSpecial {
		missing = append(missing, "isSpecial")
	}
	return missing
}

// CheckPassword evaluates each requirement. Upper and lower case mean ASCII
// letters; anything outside [A-Za-z0-9] counts as special, accented letters
// and spaces included.
func CheckPassword(s string) PasswordReport {
	return PasswordReport{
		HasNumber:  strings.ContainsAny(s, "0123456789"),
		MinLength:  utf16Len(s) >= MinPasswordLength,
		HasUpper:   strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
		HasLower:   strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz"),
		HasSpecial: strings.IndexFunc(s, isSpecial) >= 0,
	}
}

// PasswordValid reports whether s meets every requirement.
func PasswordValid(s string) bool {
	return CheckPassword(s).OK()
}

func isSpecial(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return true
}

// utf16Len counts s in UTF-16 code units: runes outside the BMP take two.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
