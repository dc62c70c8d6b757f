package text

import (
	"strings"
	"unicode/utf8"
)

// Sentences splits text on sentence-ending punctuation (., !, ?),
// keeping the terminator attached to its sentence.
// Runs of terminators such as "?!" or "..." stay with their sentence.
// Surrounding whitespace is trimmed and empty segments are dropped.
func Sentences(text string) []string {
	var sentences []string
	start := 0

	for i, r := range text {
		if !isTerminator(r) {
			continue
		}
		end := i + utf8.RuneLen(r)
		if next, _ := utf8.DecodeRuneInString(text[end:]); isTerminator(next) {
			continue
		}
		s := strings.TrimSpace(text[start:end])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}

	// Trailing text after the last terminator (if any).
	if start < len(text) {
		s := strings.TrimSpace(text[start:])
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
