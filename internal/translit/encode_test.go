package translit

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"unicode"
	"unicode/utf8"
)

// Reference values computed with SHA-256 and NFD independently of this
// package.
var goldenForms = []struct {
	word string
	want string
}{
	{"hello", "the\u032e\u034d\u0359\u034e\u0326\u0324\u0301\u030e\u0360"},
	{"Hello", "the\u032e\u034d\u0359\u034e\u0326\u0324\u0301\u030e\u0360"},
	{"world", "the\u0324\u030c\u0342\u0300\u030d"},
	{"xyzzy", "the\u0348\u0359\u033e\u030f\u0313"},
	{"a", "the\u0335\u031b\u031f\u0312\u0306\u0306\u035c"},
	{"it's", "the\u032b\u031c\u0355\u034e\u0332\u030a\u0307\u0352\u035f"},
	{"42", "the\u0347\u0353\u032c\u032b\u030a\u0357\u0346\u035d"},
	{"", "the\u0336\u0338\u0338\u034e\u031c\u0300\u0342\u0314"},
	// U+0344 decomposes into U+0308 U+0301 under NFD.
	{"me", "the\u0335\u0333\u032e\u0308\u0301\u0308\u030d\u030c\u0313\u0311\u0308\u0314\u035c"},
}

func TestEncodeWord_Golden(t *testing.T) {
	for _, tt := range goldenForms {
		t.Run(fmt.Sprintf("%q", tt.word), func(t *testing.T) {
			got := EncodeWord(tt.word)
			if got != tt.want {
				t.Errorf("EncodeWord(%q) = %+q, want %+q", tt.word, got, tt.want)
			}
		})
	}
}

func TestEncodeWord_Deterministic(t *testing.T) {
	for _, w := range []string{"hello", "World", "don't", "snake_case", "café", "ÜBER"} {
		first := EncodeWord(w)
		for range 10 {
			if got := EncodeWord(w); got != first {
				t.Fatalf("EncodeWord(%q) not deterministic: %+q vs %+q", w, got, first)
			}
		}
	}
}

func TestEncodeWord_CaseInsensitive(t *testing.T) {
	if EncodeWord("HeLLo") != EncodeWord("hello") {
		t.Error("encoded form must depend on the lower-cased word only")
	}
}

func TestEncodeWord_StartsWithBaseToken(t *testing.T) {
	base := Normalize(BaseToken)
	for _, w := range []string{"", "a", "hello", "42", "über", "don't"} {
		got := EncodeWord(w)
		if !strings.HasPrefix(got, base) {
			t.Errorf("EncodeWord(%q) = %+q, want prefix %q", w, got, base)
		}
	}
}

func TestEncodeWord_IsNFD(t *testing.T) {
	for _, w := range []string{"hello", "me", "there", "all", "out"} {
		got := EncodeWord(w)
		if Normalize(got) != got {
			t.Errorf("EncodeWord(%q) is not in NFD", w)
		}
	}
}

func TestDiacriticCount_Bounds(t *testing.T) {
	seen := make(map[int]bool)
	for i := range 2000 {
		w := fmt.Sprintf("word%d", i)
		n := DiacriticCount(w)
		if n < 5 || n > 12 {
			t.Fatalf("DiacriticCount(%q) = %d, want within [5, 12]", w, n)
		}
		seen[n] = true

		// Every selected diacritic renders as one or two marks after NFD.
		marks := utf8.RuneCountInString(EncodeWord(w)) - len(BaseToken)
		if marks < n || marks > 2*n {
			t.Fatalf("EncodeWord(%q) has %d marks for %d diacritics", w, marks, n)
		}
	}
	for n := 5; n <= 12; n++ {
		if !seen[n] {
			t.Errorf("diacritic count %d never produced over 2000 words", n)
		}
	}
}

func TestEncodeWord_OnlyCombiningMarksAfterBase(t *testing.T) {
	got := EncodeWord("translator")
	for _, r := range strings.TrimPrefix(got, BaseToken) {
		if !unicode.Is(unicode.Mn, r) {
			t.Errorf("unexpected non-mark rune %U in encoded form", r)
		}
	}
}

func TestEncoder_CacheMatchesEncodeWord(t *testing.T) {
	enc, err := NewEncoder(WithCacheSize(4))
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	words := []string{"hello", "HELLO", "world", "a", "b", "c", "hello"}
	for _, w := range words {
		if got, want := enc.Encode(w), EncodeWord(w); got != want {
			t.Errorf("Encode(%q) = %+q, want %+q", w, got, want)
		}
	}

	if n := enc.CacheLen(); n != 4 {
		t.Errorf("CacheLen() = %d, want 4", n)
	}
}

func TestEncoder_ZeroValueAndNil(t *testing.T) {
	var zero Encoder
	if zero.Encode("hello") != EncodeWord("hello") {
		t.Error("zero Encoder must encode like EncodeWord")
	}

	var nilEnc *Encoder
	if nilEnc.Encode("hello") != EncodeWord("hello") {
		t.Error("nil Encoder must encode like EncodeWord")
	}
	if nilEnc.CacheLen() != 0 {
		t.Error("nil Encoder must report an empty cache")
	}
}

func TestEncoder_ConcurrentUse(t *testing.T) {
	enc, err := NewEncoder(WithCacheSize(16))
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	want := EncodeWord("concurrent")

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got := enc.Encode("concurrent"); got != want {
					t.Errorf("concurrent Encode mismatch: %+q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
