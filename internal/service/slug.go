package service

import "strings"

// Slugify derives the URL-safe category identifier from a display name:
// trimmed, lowercased, runs of whitespace collapsed to single hyphens.
// Names that differ only in case or spacing map to the same slug.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}
