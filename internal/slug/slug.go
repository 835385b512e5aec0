// Package slug turns publisher names into URL-safe tokens for icon lookup.
package slug

import (
	"regexp"
	"strings"
)

var (
	// Unicode whitespace, matching what a browser regexp treats as \s.
	spaceRunRe   = regexp.MustCompile(`[\t\n\v\f\r \p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)
	nonWordRe    = regexp.MustCompile(`[^\w-]+`)
	hyphenRunRe  = regexp.MustCompile(`--+`)
	leadHyphens  = regexp.MustCompile(`^-+`)
	trailHyphens = regexp.MustCompile(`-+$`)
)

// Make derives a slug from text. The result only contains [a-z0-9_-], never
// starts or ends with a hyphen and never holds two hyphens in a row.
func Make(text string) string {
	s := strings.ToLower(text)
	s = strings.TrimSpace(s)
	s = spaceRunRe.ReplaceAllString(s, "-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	s = leadHyphens.ReplaceAllString(s, "")
	s = trailHyphens.ReplaceAllString(s, "")
	return s
}
