// internal/routing/slug.go
//
// Slug helpers.
//
// • MakeSlug(title) ─ converts a title into a URL-safe slug.
// • IsSlug(s)       ─ reports whether s is already in slug form.
//
// Rules (MakeSlug)
// ----------------
// 1. Lower-case everything.
// 2. Replace every space with “-”.  This runs before step 3, so interior
//    spaces survive as hyphens instead of being stripped.
// 3. Drop every character that is not an ASCII word character
//    ([A-Za-z0-9_]) or “-”.
//
// Notes
// -----
// • No trimming of leading or trailing “-”, no collapsing of runs, and no
//   length cap.  Callers that need those add them on top.
// • No uniqueness check; two titles may map to the same slug.
// • Tabs and newlines are not spaces here; they are stripped in step 3.

package routing

import (
	"regexp"
	"strings"
)

// nonSlug matches every rune outside the slug alphabet.  Go's \w is ASCII
// only, which is the alphabet we want.
var nonSlug = regexp.MustCompile(`[^\w-]+`)

var slugOnly = regexp.MustCompile(`^[a-z0-9_-]*$`)

// MakeSlug converts title → lower-kebab slug.  "" yields "".
func MakeSlug(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " ", "-")
	return nonSlug.ReplaceAllString(s, "")
}

// IsSlug reports whether s contains only lower-case ASCII letters, digits,
// “_”, and “-”.  The empty string is a valid slug.
func IsSlug(s string) bool {
	return slugOnly.MatchString(s)
}
