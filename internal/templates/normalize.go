package templates

import "strings"

// Normalize lowercases and trims a template reference for lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
