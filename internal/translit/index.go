package translit

import (
	"github.com/sourcegraph/conc/iter"
)

// Index maps encoded forms back to the vocabulary words they were built
// from. Every word is reachable through its exact encoded form and through
// the lower-cased rendering of that form.
//
// An Index is a snapshot of the vocabulary it was built from. It is never
// updated in place: callers rebuild it when their vocabulary changes.
type Index struct {
	forms      map[string]string
	words      int
	collisions int
}

// BuildIndex encodes every word of vocab and returns the reverse mapping.
// Empty entries and entries without any word rune are skipped. When two
// words share a key, the one appearing later in vocab wins.
func BuildIndex(vocab []string) *Index {
	ix := newIndex(len(vocab))
	for _, w := range vocab {
		if !HasWordRune(w) {
			tracer().Debugf("index: skipping vocabulary entry %q", w)
			continue
		}
		ix.insert(EncodeWord(w), w)
	}
	return ix
}

// BuildIndex is like the package-level BuildIndex but encodes words
// concurrently and through the encoder's memo. Insertion into the index is
// still done in vocabulary order, so collisions resolve exactly as in a
// sequential build.
func (e *Encoder) BuildIndex(vocab []string) *Index {
	workers := 0
	if e != nil {
		workers = e.workers
	}

	mapper := iter.Mapper[string, string]{MaxGoroutines: workers}
	forms := mapper.Map(vocab, func(w *string) string {
		if !HasWordRune(*w) {
			return ""
		}
		return e.Encode(*w)
	})

	ix := newIndex(len(vocab))
	for i, w := range vocab {
		if forms[i] == "" {
			tracer().Debugf("index: skipping vocabulary entry %q", w)
			continue
		}
		ix.insert(forms[i], w)
	}
	return ix
}

func newIndex(capacity int) *Index {
	return &Index{forms: make(map[string]string, capacity)}
}

func (ix *Index) insert(form, word string) {
	ix.words++
	ix.put(form, word)
	if lower := FoldCase(form); lower != form {
		ix.put(lower, word)
	}
}

func (ix *Index) put(key, word string) {
	if prev, ok := ix.forms[key]; ok && prev != word {
		ix.collisions++
		tracer().Debugf("index: %q overwrites %q for encoded form %q", word, prev, key)
	}
	ix.forms[key] = word
}

// Lookup returns the vocabulary word encoded as candidate. The candidate is
// normalized first; an exact match is preferred over a match on its
// lower-cased rendering.
func (ix *Index) Lookup(candidate string) (string, bool) {
	if ix == nil || len(ix.forms) == 0 {
		return "", false
	}

	candidate = Normalize(candidate)
	if w, ok := ix.forms[candidate]; ok {
		return w, true
	}
	if w, ok := ix.forms[FoldCase(candidate)]; ok {
		return w, true
	}
	return "", false
}

// Len returns the number of distinct keys in the index.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.forms)
}

// Words returns the number of vocabulary entries that were indexed.
func (ix *Index) Words() int {
	if ix == nil {
		return 0
	}
	return ix.words
}

// Collisions returns how many times a key was overwritten by a different
// word while the index was built.
func (ix *Index) Collisions() int {
	if ix == nil {
		return 0
	}
	return ix.collisions
}
