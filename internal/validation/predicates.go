package validation

import (
	"strings"
	"unicode"
)

// The named predicates below are the only custom checks the rule
// sets need beyond length/required constraints. Each is pure.

// isUsernameChars reports whether the value contains only letters,
// digits, and underscores. A value of nothing but underscores and
// digits passes.
func isUsernameChars(value string) bool {
	for _, r := range value {
		if r == '_' {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isValidEmail defers email syntax to the validator library's "email"
// rule, the same rule the JSON schema uses.
func isValidEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// isNotAllNumeric rejects values made up entirely of digits.
func isNotAllNumeric(value string) bool {
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// hasMixedCase requires at least one uppercase and one lowercase
// letter. An all-uppercase or all-lowercase value fails even when
// every other rule passes.
func hasMixedCase(value string) bool {
	return strings.ToLower(value) != value && strings.ToUpper(value) != value
}
