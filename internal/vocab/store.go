// Package vocab keeps the dictionary of known English words the decoder
// is built from.
//
// A Store is backed by a plain text file with one lower-cased word per
// line. It owns the reverse index for its words: the index is built on
// first use and dropped whenever a word is added, so readers always decode
// against the current dictionary.
package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/derekparker/trie"

	"github.com/example/thelang/internal/translit"
)

var (
	// ErrDuplicate is returned when a word is already in the dictionary.
	ErrDuplicate = errors.New("word already in dictionary")
	// ErrInvalidWord is returned for words that are empty, contain white
	// space or have no word characters.
	ErrInvalidWord = errors.New("invalid word")
)

// Store is a concurrency-safe dictionary of distinct words.
type Store struct {
	mu       sync.RWMutex
	path     string // empty for in-memory stores
	enc      *translit.Encoder
	words    []string
	seen     map[string]struct{}
	prefixes *trie.Trie
	index    *translit.Index
}

// NewMemory returns an empty store that is not backed by a file.
func NewMemory(enc *translit.Encoder) *Store {
	return &Store{
		enc:      enc,
		seen:     make(map[string]struct{}),
		prefixes: trie.New(),
	}
}

// Open loads the dictionary at path. A missing file is an empty
// dictionary; it is created by the first Add. Blank lines and repeated
// words are ignored.
func Open(path string, enc *translit.Encoder) (*Store, error) {
	s := NewMemory(enc)
	s.path = path

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer func() { _ = f.Close() }()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word, err := canonical(sc.Text())
		if err != nil {
			continue
		}
		if _, dup := s.seen[key(word)]; dup {
			continue
		}
		s.insert(word)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}

	return s, nil
}

// canonical returns the stored spelling of word: trimmed and lower-cased.
func canonical(word string) (string, error) {
	w := translit.FoldCase(strings.TrimSpace(word))
	if w == "" || strings.ContainsFunc(w, unicode.IsSpace) || !translit.HasWordRune(w) {
		return "", ErrInvalidWord
	}
	return w, nil
}

// key is the identity of a stored word.
func key(word string) string {
	return translit.Normalize(word)
}

// insert must be called with mu held for writing.
func (s *Store) insert(word string) {
	s.words = append(s.words, word)
	s.seen[key(word)] = struct{}{}
	s.prefixes.Add(key(word), word)
	s.index = nil
}

// Path returns the backing file, or "" for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// Add stores word in its canonical spelling and returns that spelling.
func (s *Store) Add(word string) (string, error) {
	w, err := canonical(word)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, word)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.seen[key(w)]; dup {
		return w, fmt.Errorf("%w: %q", ErrDuplicate, w)
	}
	if err := s.appendFile(w); err != nil {
		return "", err
	}
	s.insert(w)

	return w, nil
}

func (s *Store) appendFile(word string) error {
	if s.path == "" {
		return nil
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open dictionary for append: %w", err)
	}
	if _, err := f.WriteString(word + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("append to dictionary: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close dictionary: %w", err)
	}
	return nil
}

// Seed adds every word that is not yet in the dictionary and returns how
// many were added. Duplicates are skipped; any other error stops seeding.
func (s *Store) Seed(words []string) (int, error) {
	added := 0
	for _, w := range words {
		_, err := s.Add(w)
		switch {
		case err == nil:
			added++
		case errors.Is(err, ErrDuplicate):
		default:
			return added, err
		}
	}
	return added, nil
}

// Words returns a copy of the dictionary in insertion order.
func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.words...)
}

// Count returns the number of words in the dictionary.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.words)
}

// Contains reports whether word is in the dictionary, ignoring case.
func (s *Store) Contains(word string) bool {
	w, err := canonical(word)
	if err != nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.seen[key(w)]
	return ok
}

// WithPrefix returns the words starting with prefix, sorted. An empty
// prefix returns every word. Prefix and words are compared in canonical
// decomposed form, so composed and decomposed spellings match each other.
func (s *Store) WithPrefix(prefix string) []string {
	prefix = key(translit.FoldCase(strings.TrimSpace(prefix)))

	s.mu.RLock()
	var matches []string
	if prefix == "" {
		matches = append(matches, s.words...)
	} else {
		for _, k := range s.prefixes.PrefixSearch(prefix) {
			if n, ok := s.prefixes.Find(k); ok {
				matches = append(matches, n.Meta().(string))
			}
		}
	}
	s.mu.RUnlock()

	sort.Strings(matches)
	return matches
}

// Index returns the reverse index of the current dictionary. The index is
// cached until the next successful Add.
func (s *Store) Index() *translit.Index {
	s.mu.RLock()
	ix := s.index
	s.mu.RUnlock()
	if ix != nil {
		return ix
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		s.index = s.enc.BuildIndex(s.words)
	}
	return s.index
}

// Encoder returns the encoder the store indexes with.
func (s *Store) Encoder() *translit.Encoder {
	return s.enc
}
