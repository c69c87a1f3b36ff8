package coder

import (
	"fmt"

	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
)

// Coder is the capability shared by all codec variants.
//
// A Coder is selected once, when a stream is created or opened, and never
// changes for the lifetime of the stream.
type Coder interface {
	// Variant identifies the codec and, through its magic, the stream header.
	Variant() format.Variant

	// WordLength returns the number of characters written per logical byte.
	WordLength() int

	// Encode returns the codeword for b.
	Encode(b byte) string

	// AppendWord appends the codeword for b to dst.
	AppendWord(dst []byte, b byte) []byte

	// Decode returns the byte for a codeword, or errs.ErrUnknownCodeword.
	Decode(word string) (byte, error)

	// DecodeBytes is Decode for a codeword held in a byte slice.
	DecodeBytes(word []byte) (byte, error)
}

var builtinCoders = map[format.Variant]Coder{
	format.VariantThreeSymbol: defaultThreeSymbolCoder,
	format.VariantFourSymbol:  defaultFourSymbolCoder,
}

// Get returns the shared builtin coder for the variant.
//
// Returns:
//   - Coder: Builtin coder, safe for concurrent use
//   - error: errs.ErrUnrecognizedFormat for unregistered variants
func Get(variant format.Variant) (Coder, error) {
	if c, ok := builtinCoders[variant]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: variant 0x%02x", errs.ErrUnrecognizedFormat, uint8(variant))
}

// Variants returns the variants that have a builtin coder.
func Variants() []format.Variant {
	variants := make([]format.Variant, 0, len(builtinCoders))
	for _, v := range format.Variants() {
		if _, ok := builtinCoders[v]; ok {
			variants = append(variants, v)
		}
	}

	return variants
}

// symbolTable validates a symbol set and returns it as bytes indexed by digit value.
func symbolTable(symbols string, size int) ([]byte, error) {
	if len(symbols) != size {
		return nil, fmt.Errorf("%w: got %d symbols %q, want %d", errs.ErrInvalidSymbols, len(symbols), symbols, size)
	}

	table := []byte(symbols)
	for _, c := range table {
		if c < '!' || c > '~' {
			return nil, fmt.Errorf("%w: symbol %q is not printable ASCII", errs.ErrInvalidSymbols, c)
		}
	}

	return table, nil
}
