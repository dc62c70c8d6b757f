package translit

import (
	"unicode"
	"unicode/utf8"
)

// SegmentKind classifies a run of text.
type SegmentKind int

const (
	// Other is a run of characters that are neither word runes nor whitespace.
	Other SegmentKind = iota
	// Whitespace is a run of white space.
	Whitespace
	// Word is a run of word runes, see IsWordRune.
	Word
)

func (k SegmentKind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Word:
		return "word"
	default:
		return "other"
	}
}

// Segment is a maximal run of runes of the same kind.
type Segment struct {
	Kind SegmentKind
	Text string
}

// kindOf classifies r given the kind of the run it follows. A combining
// mark extends an open word and is Other anywhere else.
func kindOf(r rune, prev SegmentKind) SegmentKind {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case IsWordRune(r):
		return Word
	case unicode.IsMark(r) && prev == Word:
		return Word
	default:
		return Other
	}
}

// Segments splits text into maximal runs of word, whitespace and other
// runes. Concatenating the Text of all segments yields text again.
func Segments(text string) []Segment {
	if text == "" {
		return nil
	}

	var segs []Segment
	start := 0
	r, _ := utf8.DecodeRuneInString(text)
	current := kindOf(r, Other)

	for i, r := range text {
		k := kindOf(r, current)
		if k == current {
			continue
		}
		segs = append(segs, Segment{Kind: current, Text: text[start:i]})
		start = i
		current = k
	}
	segs = append(segs, Segment{Kind: current, Text: text[start:]})

	return segs
}
