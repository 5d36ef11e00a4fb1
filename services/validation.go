package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 4
	MaxMessageLength  = 255
)

// isWhitespace matches separators and ASCII control whitespace, but not the
// no-break spaces, so "\u00a0" is a non-blank string.
func isWhitespace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f', '\u0085':
		return false
	case '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	}
	return unicode.IsSpace(r)
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, isWhitespace) == ""
}

func validPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

func validMessageText(text string) bool {
	return !isBlank(text) && utf8.RuneCountInString(text) <= MaxMessageLength
}
