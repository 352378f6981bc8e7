// Package slug derives the lookup keys used for menu items.
package slug

import (
	"strings"
)

// Make lowercases s, collapses each run of spaces into a single hyphen and
// drops every rune outside [a-z0-9-].
func Make(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	inSpace := false
	for _, r := range lower {
		if r == ' ' {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if allowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether s is already in slug form.
func Valid(s string) bool {
	for _, r := range s {
		if !allowed(r) {
			return false
		}
	}
	return true
}

func allowed(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
