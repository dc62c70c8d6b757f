// Package doctor provides dictionary and runtime checks for thelang.
package doctor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/example/thelang/internal/translit"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// maxReported bounds how many words a failing round-trip check names.
const maxReported = 5

// Config holds the inputs for each doctor check.
type Config struct {
	// DictPath is the dictionary file. A missing file passes: the first
	// added word creates it. Empty means an in-memory dictionary.
	DictPath string
	// Words is the dictionary content.
	Words []string
	// Index is the reverse index to check. Built from Words when nil.
	Index *translit.Index
	// MarkTable is the table every diacritic must belong to. Defaults to
	// unicode.Mn.
	MarkTable *unicode.RangeTable
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- unicode tables ---------------------------------------------------
	table := cfg.MarkTable
	if table == nil {
		table = unicode.Mn
	}
	if bad := unknownMarks(table); len(bad) > 0 {
		shown := bad
		if len(shown) > maxReported {
			shown = shown[:maxReported]
		}
		res.fail(fmt.Sprintf("unicode tables: %d diacritics are not nonspacing combining marks (%s)",
			len(bad), strings.Join(shown, ", ")))
		fmt.Fprintf(w, "%s unicode tables %s: %d of %d diacritics unknown\n",
			FailMark, norm.Version, len(bad), translit.AlphabetSize)
	} else {
		fmt.Fprintf(w, "%s unicode tables %s: all %d diacritics\n",
			PassMark, norm.Version, translit.AlphabetSize)
	}

	// ---- dictionary file --------------------------------------------------
	switch info, err := os.Stat(cfg.DictPath); {
	case cfg.DictPath == "":
		fmt.Fprintf(w, "%s dictionary file: none (in memory)\n", PassMark)
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(w, "%s dictionary file: %s (not created yet)\n", PassMark, cfg.DictPath)
	case err != nil:
		res.fail(fmt.Sprintf("dictionary file %q: %v", cfg.DictPath, err))
		fmt.Fprintf(w, "%s dictionary file %s: %v\n", FailMark, cfg.DictPath, err)
	case info.IsDir():
		res.fail(fmt.Sprintf("dictionary file %q: is a directory", cfg.DictPath))
		fmt.Fprintf(w, "%s dictionary file %s: is a directory\n", FailMark, cfg.DictPath)
	default:
		fmt.Fprintf(w, "%s dictionary file: %s\n", PassMark, cfg.DictPath)
	}

	// ---- vocabulary -------------------------------------------------------
	if len(cfg.Words) == 0 {
		res.fail("dictionary is empty (run `thelang words seed`)")
		fmt.Fprintf(w, "%s dictionary words: none\n", FailMark)
		return res
	}
	fmt.Fprintf(w, "%s dictionary words: %d\n", PassMark, len(cfg.Words))

	ix := cfg.Index
	if ix == nil {
		ix = translit.BuildIndex(cfg.Words)
	}

	// ---- collisions -------------------------------------------------------
	if n := ix.Collisions(); n > 0 {
		res.fail(fmt.Sprintf("index collisions: %d encoded forms shared by different words", n))
		fmt.Fprintf(w, "%s index collisions: %d\n", FailMark, n)
	} else {
		fmt.Fprintf(w, "%s index collisions: none\n", PassMark)
	}

	// ---- round trip -------------------------------------------------------
	if lost := roundTripFailures(cfg.Words, ix); len(lost) > 0 {
		shown := lost
		if len(shown) > maxReported {
			shown = shown[:maxReported]
		}
		res.fail(fmt.Sprintf("round trip: %d words do not decode to themselves (%s)",
			len(lost), strings.Join(shown, ", ")))
		fmt.Fprintf(w, "%s round trip: %d of %d words lost\n", FailMark, len(lost), len(cfg.Words))
	} else {
		fmt.Fprintf(w, "%s round trip: all %d words\n", PassMark, len(cfg.Words))
	}

	return res
}

// roundTripFailures returns the words whose encoded form does not look up
// to the word itself.
func roundTripFailures(words []string, ix *translit.Index) []string {
	var lost []string
	for _, w := range words {
		got, ok := ix.Lookup(translit.EncodeWord(w))
		if !ok || translit.FoldCase(got) != translit.FoldCase(w) {
			lost = append(lost, w)
		}
	}
	return lost
}

// unknownMarks returns the diacritics, as code points, that table does not
// contain or that the normalization tables give no combining class.
func unknownMarks(table *unicode.RangeTable) []string {
	var bad []string
	for i := range translit.AlphabetSize {
		r := translit.Diacritic(i)
		if !unicode.Is(table, r) || norm.NFD.PropertiesString(string(r)).CCC() == 0 {
			bad = append(bad, fmt.Sprintf("%U", r))
		}
	}
	return bad
}
