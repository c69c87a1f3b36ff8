package coder

import (
	"testing"

	"github.com/arloliu/dnacoder/format"
)

// benchCoders returns the builtin coders keyed by variant name.
func benchCoders(b *testing.B) map[string]Coder {
	b.Helper()

	coders := make(map[string]Coder, len(format.Variants()))
	for _, v := range format.Variants() {
		c, err := Get(v)
		if err != nil {
			b.Fatal(err)
		}
		coders[v.String()] = c
	}

	return coders
}

// BenchmarkCoder_AppendWord measures encoding all 256 byte values into one buffer.
func BenchmarkCoder_AppendWord(b *testing.B) {
	for name, c := range benchCoders(b) {
		b.Run(name, func(b *testing.B) {
			buf := make([]byte, 0, AlphabetSize*c.WordLength())

			b.ReportAllocs()
			b.SetBytes(AlphabetSize)

			for b.Loop() {
				buf = buf[:0]
				for v := 0; v < AlphabetSize; v++ {
					buf = c.AppendWord(buf, byte(v))
				}
			}
		})
	}
}

func BenchmarkCoder_Encode(b *testing.B) {
	for name, c := range benchCoders(b) {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(AlphabetSize)

			for b.Loop() {
				for v := 0; v < AlphabetSize; v++ {
					_ = c.Encode(byte(v))
				}
			}
		})
	}
}

// BenchmarkCoder_DecodeBytes measures decoding every codeword of the alphabet.
func BenchmarkCoder_DecodeBytes(b *testing.B) {
	for name, c := range benchCoders(b) {
		b.Run(name, func(b *testing.B) {
			wordLen := c.WordLength()
			words := make([]byte, 0, AlphabetSize*wordLen)
			for v := 0; v < AlphabetSize; v++ {
				words = c.AppendWord(words, byte(v))
			}

			b.ReportAllocs()
			b.SetBytes(AlphabetSize)

			for b.Loop() {
				for i := 0; i < len(words); i += wordLen {
					if _, err := c.DecodeBytes(words[i : i+wordLen]); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}
