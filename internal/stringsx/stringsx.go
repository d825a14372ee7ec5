// Package stringsx provides utility functions for strings
package stringsx

import "strings"

// Blank returns true when the string is empty after trimming whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Present returns true when the string contains at least one non-whitespace character.
func Present(s string) bool {
	return !Blank(s)
}

// DefaultIfBlank returns the fallback when s is blank.
func DefaultIfBlank(s, fallback string) string {
	if Blank(s) {
		return fallback
	}

	return s
}

// Join the values with the given separator.
func Join(sep string, values ...string) string {
	return strings.Join(values, sep)
}
