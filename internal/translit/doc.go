/*
Package translit implements the "The" language transliteration engine.

An English word is mapped to a canonical encoded form: the base token "the"
followed by 5 to 12 combining diacritical marks. The marks and their count
are derived from the SHA-256 digest of the lower-cased word, so encoding is a
pure function and needs no codebook. Decoding goes the other way by encoding
a known vocabulary up front and looking encoded forms up in the resulting
Index.

Text-level operations split input into word, whitespace and punctuation
segments, transform the word segments and reassemble the text, capitalizing
the first word of every sentence.

	enc := translit.EncodeText("hello world.")
	idx := translit.BuildIndex([]string{"hello", "world"})
	dec := translit.DecodeText(enc, idx) // "Hello world."

Every function in this package is safe for concurrent use.
*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'thelang'
func tracer() tracing.Trace {
	return tracing.Select("thelang")
}
