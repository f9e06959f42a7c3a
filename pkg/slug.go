package pkg

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// Slugify lowercases a tag and collapses runs of non-alphanumerics into single
// hyphens, so "Night Sleep!" becomes "night-sleep". Empty results are dropped
// by callers rather than defaulted.
func Slugify(tag string) string {
	slug := strings.ToLower(tag)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
