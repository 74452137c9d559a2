package utils

import (
	"regexp"
	"strings"
)

var nonSlugRunes = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug lowercases name, collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims hyphens from both ends.
func DeriveSlug(name string) string {
	slug := nonSlugRunes.ReplaceAllString(strings.ToLower(name), "-")

	return strings.Trim(slug, "-")
}
