package translit

import (
	"crypto/sha256"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	minDiacritics = 5
	maxDiacritics = 12
)

// Digest is the pinned digest of the encoder: SHA-256 over the UTF-8 bytes
// of the case-folded word. Every component that encodes words must use it,
// otherwise encoded forms stop round-tripping.
func Digest(word string) [sha256.Size]byte {
	return sha256.Sum256([]byte(FoldCase(word)))
}

// DiacriticCount returns the number of diacritics EncodeWord appends to the
// base token for word. It is always within [5, 12].
func DiacriticCount(word string) int {
	h := Digest(word)
	return diacriticCount(h)
}

func diacriticCount(h [sha256.Size]byte) int {
	return minDiacritics + int(h[0])%(maxDiacritics-minDiacritics+1)
}

// EncodeWord maps word to its encoded form. The result depends only on the
// lower-cased word and is returned in NFD.
func EncodeWord(word string) string {
	h := Digest(word)
	n := diacriticCount(h)

	var b strings.Builder
	b.Grow(len(BaseToken) + 2*n)
	b.WriteString(BaseToken)
	for i := range n {
		b.WriteRune(Diacritic(int(h[i+1])))
	}
	return Normalize(b.String())
}

// ---------------------------------------------------------------------------
// Encoder
// ---------------------------------------------------------------------------

type encoderOptions struct {
	cacheSize    int
	buildWorkers int
}

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderOptions)

// WithCacheSize memoizes up to n encoded words. n <= 0 disables the cache.
func WithCacheSize(n int) EncoderOption {
	return func(o *encoderOptions) { o.cacheSize = n }
}

// WithBuildWorkers bounds the number of goroutines BuildIndex encodes with.
// n <= 0 uses GOMAXPROCS.
func WithBuildWorkers(n int) EncoderOption {
	return func(o *encoderOptions) { o.buildWorkers = n }
}

// Encoder wraps EncodeWord with an optional LRU memo and a worker bound for
// index construction. The zero value is ready to use and does not cache.
type Encoder struct {
	cache   *lru.Cache[string, string]
	workers int
}

// NewEncoder creates an Encoder.
func NewEncoder(optFns ...EncoderOption) (*Encoder, error) {
	var opts encoderOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	e := &Encoder{workers: opts.buildWorkers}
	if opts.cacheSize > 0 {
		cache, err := lru.New[string, string](opts.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create encode cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

// Encode returns EncodeWord(word), consulting the memo first.
func (e *Encoder) Encode(word string) string {
	if e == nil || e.cache == nil {
		return EncodeWord(word)
	}

	key := FoldCase(word)
	if form, ok := e.cache.Get(key); ok {
		return form
	}
	form := EncodeWord(key)
	e.cache.Add(key, form)
	return form
}

// CacheLen reports the number of memoized words.
func (e *Encoder) CacheLen() int {
	if e == nil || e.cache == nil {
		return 0
	}
	return e.cache.Len()
}
