package coder

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/dnacoder/errs"
)

// AlphabetSize is the number of entries in every alphabet, one per byte value.
const AlphabetSize = 256

// Generator returns the codeword for a byte value.
type Generator func(b byte) string

// Alphabet is an immutable bijection between byte values and fixed-length codewords.
type Alphabet struct {
	words      [AlphabetSize]string
	inverse    map[string]byte
	wordLength int
}

// Build applies gen to every byte value 0-255 and builds the forward and inverse tables.
//
// The result is validated eagerly:
//   - every codeword is non-empty and made of single-byte ASCII characters
//   - every codeword has the same length
//   - no two byte values share a codeword
//
// Parameters:
//   - gen: Codeword generator
//
// Returns:
//   - *Alphabet: The validated alphabet
//   - error: errs.ErrAlphabetConstruction wrapped with the first violation found
func Build(gen Generator) (*Alphabet, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: nil generator", errs.ErrAlphabetConstruction)
	}

	a := &Alphabet{
		inverse: make(map[string]byte, AlphabetSize),
	}

	for i := 0; i < AlphabetSize; i++ {
		b := byte(i)
		word := gen(b)

		if len(word) == 0 {
			return nil, fmt.Errorf("%w: empty codeword for byte 0x%02x", errs.ErrAlphabetConstruction, b)
		}
		if i == 0 {
			a.wordLength = len(word)
		} else if len(word) != a.wordLength {
			return nil, fmt.Errorf("%w: codeword %q for byte 0x%02x has length %d, want %d",
				errs.ErrAlphabetConstruction, word, b, len(word), a.wordLength)
		}
		for j := 0; j < len(word); j++ {
			if word[j] >= utf8.RuneSelf {
				return nil, fmt.Errorf("%w: codeword %q for byte 0x%02x is not ASCII",
					errs.ErrAlphabetConstruction, word, b)
			}
		}
		if prev, dup := a.inverse[word]; dup {
			return nil, fmt.Errorf("%w: codeword %q shared by bytes 0x%02x and 0x%02x",
				errs.ErrAlphabetConstruction, word, prev, b)
		}

		a.words[i] = word
		a.inverse[word] = b
	}

	return a, nil
}

// MustBuild is like Build but panics on error. It is meant for package-level tables.
func MustBuild(gen Generator) *Alphabet {
	a, err := Build(gen)
	if err != nil {
		panic(err)
	}

	return a
}

// WordLength returns the number of characters in every codeword.
func (a *Alphabet) WordLength() int {
	return a.wordLength
}

// Encode returns the codeword for b.
func (a *Alphabet) Encode(b byte) string {
	return a.words[b]
}

// AppendWord appends the codeword for b to dst and returns the extended slice.
func (a *Alphabet) AppendWord(dst []byte, b byte) []byte {
	return append(dst, a.words[b]...)
}

// Decode returns the byte value for word.
// It returns errs.ErrUnknownCodeword if word is not in the alphabet.
func (a *Alphabet) Decode(word string) (byte, error) {
	b, ok := a.inverse[word]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCodeword, word)
	}

	return b, nil
}

// DecodeBytes is like Decode but takes the codeword as raw bytes.
func (a *Alphabet) DecodeBytes(word []byte) (byte, error) {
	// map lookup with string(word) does not allocate
	b, ok := a.inverse[string(word)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCodeword, word)
	}

	return b, nil
}
