package models

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s-]+`)
)

// GenerateSlug turns a title into a URL-safe slug: lowercase, non-word
// characters stripped, whitespace and hyphen runs collapsed to a single
// hyphen, leading/trailing hyphens trimmed.
func GenerateSlug(title string) string {
	s := strings.ToLower(title)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
