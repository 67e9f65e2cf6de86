package tracker

import (
	"strings"
	"unicode"
)

// SanitizeName turns a pane title into a token usable as a path component.
// Alphanumerics, '-' and '_' are kept, space and '/' become '-', anything
// else becomes '_'. Distinct titles may collide; that is accepted.
func SanitizeName(title string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '/':
			return '-'
		case r == '-' || r == '_' || isAlphanumeric(r):
			return r
		default:
			return '_'
		}
	}, title)
}

// isAlphanumeric reports whether r is Alphabetic or Numeric in the Unicode
// sense: letters, letter numbers (Ⅻ), other numbers (², ½) and combining
// vowel signs such as Devanagari ि all count.
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// DefaultSkipPrefix is the sanitized form of zellij's "Pane #N" titles.
// Names starting with it get no symlink unless a policy says otherwise.
const DefaultSkipPrefix = "Pane-"

// SymlinkPolicy decides whether a sanitized, non-empty name deserves a
// name-keyed symlink.
type SymlinkPolicy func(safeName string) bool

// SkipPrefix returns a policy that refuses names starting with prefix.
// An empty prefix allows every name.
func SkipPrefix(prefix string) SymlinkPolicy {
	return func(safeName string) bool {
		return prefix == "" || !strings.HasPrefix(safeName, prefix)
	}
}
