package translit

import (
	"strings"
)

// wordFunc transforms a single word segment. ok is false when the segment
// has no replacement and must be emitted verbatim.
type wordFunc func(word string) (replacement string, ok bool)

// reassemble applies fn to every word segment of text and stitches the
// result back together. Replacements that start a sentence are
// capitalized. A sentence starts at the beginning of text and after any
// punctuation run containing '.', '?' or '!'.
func reassemble(text string, fn wordFunc) string {
	segs := Segments(text)
	if len(segs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	sentenceStart := true

	for _, seg := range segs {
		switch seg.Kind {
		case Word:
			out, ok := fn(seg.Text)
			if !ok {
				b.WriteString(seg.Text)
				sentenceStart = false
				continue
			}
			if sentenceStart {
				out = Capitalize(out)
				sentenceStart = false
			}
			b.WriteString(out)
		case Other:
			b.WriteString(seg.Text)
			if strings.ContainsFunc(seg.Text, IsSentenceEnd) {
				sentenceStart = true
			}
		default:
			b.WriteString(seg.Text)
		}
	}

	return b.String()
}

// EncodeText encodes every word of text, leaving whitespace and punctuation
// untouched.
func EncodeText(text string) string {
	return reassemble(text, func(w string) (string, bool) {
		return EncodeWord(w), true
	})
}

// DecodeText replaces every encoded form in text that ix knows with its
// vocabulary word. Unknown words are kept as they are. A nil index decodes
// nothing.
func DecodeText(text string, ix *Index) string {
	return reassemble(text, ix.Lookup)
}

// EncodeText is like the package-level EncodeText but uses the encoder's
// memo.
func (e *Encoder) EncodeText(text string) string {
	return reassemble(text, func(w string) (string, bool) {
		return e.Encode(w), true
	})
}
