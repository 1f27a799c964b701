// Package rules holds the registration field predicates. Every predicate is
// pure and reports failure as false.
package rules

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"regform/pkg/document"
)

// jsSpace is the whitespace class browsers use for \s, wider than RE2's
// ASCII-only \s: it adds vertical tab, NBSP and the Unicode space separators.
const jsSpace = `[\t\n\x0b\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var (
	emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-ZÀ-ÖØ-öø-ÿ]+(?:` + jsSpace + `[a-zA-ZÀ-ÖØ-öø-ÿ]+)+$`)
	phonePattern = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	datePattern  = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/(\d{4})$`)
)

const (
	// MinimumAge is the age an individual must have reached to register.
	MinimumAge = 18
	// MinimumBusinessDays is exclusive: an organization must have been open
	// for more than this many whole days.
	MinimumBusinessDays = 1
)

// EmailValid reports whether s looks like an e-mail address.
func EmailValid(s string) bool {
	return emailPattern.MatchString(s)
}

// NameValid reports whether s has at least two words of Latin letters
// separated by single whitespace characters, Unicode spaces included.
func NameValid(s string) bool {
	return namePattern.MatchString(s)
}

// PhoneValid reports whether s is formatted as (DD) DDDD-DDDD or (DD) DDDDD-DDDD.
func PhoneValid(s string) bool {
	return phonePattern.MatchString(s)
}

// DocumentValid reports whether s is a valid CPF or CNPJ for kind.
func DocumentValid(s string, kind document.Kind) bool {
	return document.Validate(s, kind)
}

// DateValid checks a DD/MM/YYYY date against now. For individuals it is a
// birth date and the person must be at least MinimumAge. For organizations it
// is the opening date and more than MinimumBusinessDays whole days must have
// elapsed since local midnight of that date.
func DateValid(s string, kind document.Kind, now time.Time) bool {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if kind == document.Organization {
		// time.Date rolls impossible dates such as 31/02 into the next month.
		opened := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		days := math.Floor(now.Sub(opened).Hours() / 24)
		return days > MinimumBusinessDays
	}

	return Age(day, month, year, now) >= MinimumAge
}

// Age returns the number of whole years between the given birth date and now.
func Age(day, month, year int, now time.Time) int {
	age := now.Year() - year
	monthDiff := int(now.Month()) - month
	dayDiff := now.Day() - day
	if monthDiff < 0 || (monthDiff == 0 && dayDiff < 0) {
		age--
	}
	return age
}
