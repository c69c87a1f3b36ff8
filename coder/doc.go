// Package coder maps single bytes to fixed-length nucleotide-style codewords and back.
//
// # Overview
//
// Every coder is backed by an Alphabet: a bijection between the 256 byte values
// and 256 distinct codewords of equal length. Alphabets are built eagerly from a
// generator function and validated at construction time:
//
//	alphabet, err := coder.Build(func(b byte) string {
//	    return myWordFor(b)
//	})
//	if err != nil {
//	    // errors.Is(err, errs.ErrAlphabetConstruction)
//	}
//
// Two variants are registered:
//
//   - ThreeSymbolCoder: symbols "ACG", word length 6. A byte is written as six
//     base-3 digits, most significant first, padded with the zero symbol.
//     Only 256 of the 729 possible words are used; the layout is part of the
//     on-disk format and must not be compacted.
//   - FourSymbolCoder: symbols "ACGT", word length 4. A byte is split into four
//     2-bit groups, most significant first (0x41 -> "CAAC").
//
// Decoding never performs arithmetic: it is a reverse-table lookup, and words
// missing from the table fail with errs.ErrUnknownCodeword.
//
// # Thread Safety
//
// Alphabets and coders are immutable after construction. The builtin coders
// returned by Get are shared process-wide and safe for concurrent use.
package coder
