package utils

import "strings"

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slugify lowercases a name and replaces whitespace with dashes for URL slugs.
func Slugify(s string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(parts, "-")
}
