// Package validation contains the pure input checks used during account
// registration and profile changes. None of the functions have side effects.
package validation

import (
	"fmt"
	"regexp"
	"time"
	"unicode"
)

// emailPattern accepts local@domain.tld: an ASCII local part of letters,
// digits and ._%+-, dotted domain labels, and an alphabetic TLD of at
// least two characters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether s is an acceptable email address.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone reports whether s consists of decimal digits only and is at
// least 10 digits long.
func ValidatePhone(s string) bool {
	if len(s) < 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidatePassword checks password strength and returns a human-readable
// reason alongside the verdict. The reason is shown to the user verbatim.
func ValidatePassword(s string) (bool, string) {
	if len(s) < 8 {
		return false, "Password must be at least 8 characters long"
	}

	hasDigit := false
	hasUpper := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	if !hasDigit {
		return false, "Password must contain at least one digit"
	}
	if !hasUpper {
		return false, "Password must contain at least one uppercase letter"
	}
	return true, "Password is strong enough"
}

// DOBLayout is the expected date-of-birth format (DD/MM/YYYY).
const DOBLayout = "02/01/2006"

// CalculateAge parses dob as DD/MM/YYYY and returns the age in whole years
// as of now. The birthday counts as not yet reached this year while
// (month, day) of now is before (month, day) of birth.
func CalculateAge(dob string, now time.Time) (int, error) {
	birth, err := time.Parse(DOBLayout, dob)
	if err != nil {
		return 0, fmt.Errorf("invalid date of birth %q: %w", dob, err)
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, nil
}
