package translit

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical decomposition (NFD) of s.
func Normalize(s string) string {
	return norm.NFD.String(s)
}

// FoldCase lower-cases s independent of any locale.
func FoldCase(s string) string {
	// Casers carry state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(s)
}

// IsWordRune reports whether r belongs to the word character class:
// letters, digits, underscore and apostrophe.
//
// Combining marks are not word runes on their own. Segments attaches them
// to a word that is already open, so an encoded form (the base token
// followed by marks) is still read back as a single word.
func IsWordRune(r rune) bool {
	switch {
	case r == '_' || r == '\'':
		return true
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return true
	}
	return false
}

// IsSentenceEnd reports whether r terminates a sentence.
func IsSentenceEnd(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// HasWordRune reports whether s contains at least one word rune.
func HasWordRune(s string) bool {
	for _, r := range s {
		if IsWordRune(r) {
			return true
		}
	}
	return false
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	up := unicode.ToUpper(r)
	if up == r {
		return s
	}
	return string(up) + s[size:]
}
