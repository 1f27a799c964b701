// Package document validates Brazilian taxpayer document numbers.
//
// Individuals are identified by an 11-digit CPF and organizations by a
// 14-digit CNPJ. Both carry two trailing check digits computed from a
// weighted sum modulo 11. Validation is pure and safe for concurrent use.
package document

// Kind selects the document family and therefore the checksum algorithm.
type Kind int

const (
	// Individual is a natural person (CPF, 11 digits).
	Individual Kind = iota
	// Organization is a legal entity (CNPJ, 14 digits).
	Organization
)

const (
	individualLength   = 11
	organizationLength = 14
)

// KindFromFlag maps the form's "isPJ" flag to a Kind.
func KindFromFlag(isPJ bool) Kind {
	if isPJ {
		return Organization
	}
	return Individual
}

// String returns the short label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case Organization:
		return "organization"
	default:
		return "individual"
	}
}

// Label returns the document name shown to users (CPF or CNPJ).
func (k Kind) Label() string {
	if k == Organization {
		return "CNPJ"
	}
	return "CPF"
}

// Length is the number of digits a normalized document of this kind has.
func (k Kind) Length() int {
	if k == Organization {
		return organizationLength
	}
	return individualLength
}

// Normalize strips every non-digit character from raw.
func Normalize(raw string) string {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	return string(digits)
}

// Validate reports whether raw holds a valid document of the given kind.
// Formatting characters are ignored. Wrong-length input and sequences of a
// single repeated digit are always invalid.
func Validate(raw string, kind Kind) bool {
	digits := Normalize(raw)
	if len(digits) != kind.Length() || repeated(digits) {
		return false
	}

	n := len(digits)
	if kind == Organization {
		return checkDigit(digits[:n-2], 5) == digits[n-2] &&
			checkDigit(digits[:n-1], 6) == digits[n-1]
	}
	return checkDigit(digits[:n-2], 10) == digits[n-2] &&
		checkDigit(digits[:n-1], 11) == digits[n-1]
}

// ValidIndividual is Validate(raw, Individual).
func ValidIndividual(raw string) bool {
	return Validate(raw, Individual)
}

// ValidOrganization is Validate(raw, Organization).
func ValidOrganization(raw string) bool {
	return Validate(raw, Organization)
}

// checkDigit computes the check digit for digits, starting at weight and
// decrementing it each step. When the weight reaches 2 it resets to 9; CPF
// weights never get that far so the reset only affects CNPJ.
func checkDigit(digits string, weight int) byte {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weight
		if weight == 2 {
			weight = 9
		} else {
			weight--
		}
	}

	check := 11 - sum%11
	if check > 9 {
		check = 0
	}
	return byte('0' + check)
}

func repeated(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
