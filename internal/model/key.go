package model

import "strings"

// NormalizeKey lowercases a name and strips whitespace, hyphens and
// underscores, so "Liebherr LTM-1300" and "liebherr ltm1300" collide on
// purpose. Used for manufacturer/model lookups across reference tables.
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '-', '_', '.', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
