package translit

// BaseToken starts every encoded form.
const BaseToken = "the"

// The diacritic alphabet is made of two contiguous blocks of combining
// marks. U+034F (combining grapheme joiner) is left out.
const (
	firstBlockStart  = 0x0300
	firstBlockEnd    = 0x034F // exclusive
	secondBlockStart = 0x0350
	secondBlockEnd   = 0x0363 // exclusive

	// AlphabetSize is the number of diacritics available to the encoder.
	AlphabetSize = (firstBlockEnd - firstBlockStart) + (secondBlockEnd - secondBlockStart)
)

var alphabet = buildAlphabet()

func buildAlphabet() [AlphabetSize]rune {
	var a [AlphabetSize]rune
	i := 0
	for r := rune(firstBlockStart); r < firstBlockEnd; r++ {
		a[i] = r
		i++
	}
	for r := rune(secondBlockStart); r < secondBlockEnd; r++ {
		a[i] = r
		i++
	}
	return a
}

// Diacritic returns the diacritic at position i of the alphabet, taken
// modulo AlphabetSize.
func Diacritic(i int) rune {
	i %= AlphabetSize
	if i < 0 {
		i += AlphabetSize
	}
	return alphabet[i]
}

// IsDiacritic reports whether r is a member of the diacritic alphabet.
func IsDiacritic(r rune) bool {
	return (r >= firstBlockStart && r < firstBlockEnd) ||
		(r >= secondBlockStart && r < secondBlockEnd)
}
