package utils

import "strings"

// NormalizeSeat uppercases and trims a seat label from a form field.
func NormalizeSeat(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
