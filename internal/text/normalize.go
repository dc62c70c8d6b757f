package text

import (
	"errors"
	"strings"
)

// ErrEmptyText is returned when the input text is empty or whitespace-only.
var ErrEmptyText = errors.New("text is empty")

// Clean prepares raw input text for translation.
// It normalizes line endings to \n, trims surrounding whitespace,
// and rejects empty or whitespace-only input.
// Interior whitespace is kept as is.
func Clean(s string) (string, error) {
	// Normalize line endings: CRLF → LF, then bare CR → LF.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = strings.TrimSpace(s)

	if s == "" {
		return "", ErrEmptyText
	}

	return s, nil
}

// DiscordCopy appends the source text to a translation as a Discord
// subtext line, so readers can see what was said.
func DiscordCopy(translated, source string) string {
	return translated + "\n-# " + source
}
