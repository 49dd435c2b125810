package domain

import (
	"strings"
	"unicode/utf8"
)

// Character sets a password draws from. SpecialChars is the fixed set the
// policy accepts; anything outside these sets never counts towards a
// category requirement.
const (
	DigitChars     = "0123456789"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	SpecialChars   = "!@#$%^&*()-_+=<>?/"
)

// MinPasswordLength is the minimum number of characters a password
// must have to pass the policy.
const MinPasswordLength = 16

// Password is a secret used to encrypt a document. Once validated it is
// immutable and guaranteed to satisfy the policy it was validated against.
type Password string

// String returns the password in the clear. Callers that log should use
// Redacted instead.
func (p Password) String() string {
	return string(p)
}

// Redacted returns a fixed placeholder for use in diagnostic output.
func (p Password) Redacted() string {
	if p == "" {
		return "(empty)"
	}
	return "****"
}

// PolicyViolation is a specific reason a password fails the strength
// policy. It implements error so validation failures flow through normal
// error returns.
type PolicyViolation string

// Possible policy violations, in the order the policy checks them.
const (
	ViolationTooShort         PolicyViolation = "too_short"
	ViolationMissingDigit     PolicyViolation = "missing_digit"
	ViolationMissingUppercase PolicyViolation = "missing_uppercase"
	ViolationMissingLowercase PolicyViolation = "missing_lowercase"
	ViolationMissingSpecial   PolicyViolation = "missing_special"
)

// IsValid returns true if the violation is recognised.
func (v PolicyViolation) IsValid() bool {
	switch v {
	case ViolationTooShort, ViolationMissingDigit, ViolationMissingUppercase,
		ViolationMissingLowercase, ViolationMissingSpecial:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v PolicyViolation) String() string {
	return string(v)
}

// Error returns the human-readable message shown to the user.
func (v PolicyViolation) Error() string {
	switch v {
	case ViolationTooShort:
		return "password must be at least 16 characters long"
	case ViolationMissingDigit:
		return "password must include at least one digit"
	case ViolationMissingUppercase:
		return "password must include at least one uppercase letter"
	case ViolationMissingLowercase:
		return "password must include at least one lowercase letter"
	case ViolationMissingSpecial:
		return "password must include at least one special character (" + SpecialChars + ")"
	default:
		return "password does not meet the strength policy"
	}
}

// PasswordPolicy validates whether a candidate password satisfies the
// strength rules. The zero value is not usable; construct with
// DefaultPasswordPolicy.
type PasswordPolicy struct {
	minLength int
}

// DefaultPasswordPolicy returns the standard policy: at least 16
// characters with at least one digit, uppercase letter, lowercase letter
// and special character.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{minLength: MinPasswordLength}
}

// MinLength returns the minimum accepted password length.
func (p PasswordPolicy) MinLength() int {
	return p.minLength
}

// Validate checks the candidate against the policy. It returns nil on
// success or the first PolicyViolation encountered, checking in a fixed
// order: length, digit, uppercase, lowercase, special. Pure function,
// no I/O. An empty candidate is simply too short.
func (p PasswordPolicy) Validate(candidate string) error {
	// Length is measured in characters, not bytes, so multibyte runes
	// cannot pad a short password past the minimum.
	if utf8.RuneCountInString(candidate) < p.minLength {
		return ViolationTooShort
	}
	if !strings.ContainsAny(candidate, DigitChars) {
		return ViolationMissingDigit
	}
	if !strings.ContainsAny(candidate, UppercaseChars) {
		return ViolationMissingUppercase
	}
	if !strings.ContainsAny(candidate, LowercaseChars) {
		return ViolationMissingLowercase
	}
	if !strings.ContainsAny(candidate, SpecialChars) {
		return ViolationMissingSpecial
	}
	return nil
}
