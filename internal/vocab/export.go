package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/thelang/internal/config"
)

// Entry pairs a dictionary word with its encoded form.
type Entry struct {
	Word string `yaml:"word" json:"word"`
	The  string `yaml:"the" json:"the"`
}

// Entries returns every word with its encoded form, in insertion order.
func (s *Store) Entries() []Entry {
	words := s.Words()
	entries := make([]Entry, len(words))
	for i, w := range words {
		entries[i] = Entry{Word: w, The: s.enc.Encode(w)}
	}
	return entries
}

// Export writes the full dictionary to w. The text format writes one
// "word - encoded" pair per line; yaml writes a sequence of entries.
func (s *Store) Export(w io.Writer, format string) error {
	format, err := config.NormalizeExportFormat(format)
	if err != nil {
		return err
	}

	entries := s.Entries()

	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		bw := bufio.NewWriter(w)
		for _, e := range entries {
			if _, err := fmt.Fprintf(bw, "%s - %s\n", e.Word, e.The); err != nil {
				return fmt.Errorf("write entry: %w", err)
			}
		}
		return bw.Flush()
	}
}

// ExportFile replaces the file at path with the full dictionary.
func (s *Store) ExportFile(path, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()

	return s.Export(f, format)
}
