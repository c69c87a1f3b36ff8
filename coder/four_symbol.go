package coder

import "github.com/arloliu/dnacoder/format"

const (
	// DefaultFourSymbols are the symbols for the 2-bit groups 00, 01, 10 and 11.
	DefaultFourSymbols = "ACGT"
	// FourSymbolWordLength is the number of 2-bit groups per byte.
	FourSymbolWordLength = 4
)

var defaultFourSymbolCoder = MustNewFourSymbolCoder(DefaultFourSymbols)

// FourSymbolCoder writes each byte as four 2-bit groups, most significant first.
// 4^4 = 256, so every word maps to a byte.
type FourSymbolCoder struct {
	*Alphabet
	symbols string
}

var _ Coder = (*FourSymbolCoder)(nil)

// NewFourSymbolCoder builds a four-symbol coder over the given symbols.
//
// Parameters:
//   - symbols: Exactly four printable ASCII characters for groups 00, 01, 10, 11
//
// Returns:
//   - *FourSymbolCoder: The coder
//   - error: errs.ErrInvalidSymbols for a bad symbol set, errs.ErrAlphabetConstruction
//     when symbols repeat
func NewFourSymbolCoder(symbols string) (*FourSymbolCoder, error) {
	table, err := symbolTable(symbols, 4)
	if err != nil {
		return nil, err
	}

	alphabet, err := Build(func(b byte) string {
		const mask = 0xC0

		return string([]byte{
			table[(b&mask)>>6],
			table[((b<<2)&mask)>>6],
			table[((b<<4)&mask)>>6],
			table[((b<<6)&mask)>>6],
		})
	})
	if err != nil {
		return nil, err
	}

	return &FourSymbolCoder{Alphabet: alphabet, symbols: symbols}, nil
}

// MustNewFourSymbolCoder is like NewFourSymbolCoder but panics on error.
func MustNewFourSymbolCoder(symbols string) *FourSymbolCoder {
	c, err := NewFourSymbolCoder(symbols)
	if err != nil {
		panic(err)
	}

	return c
}

// Variant returns format.VariantFourSymbol.
func (c *FourSymbolCoder) Variant() format.Variant {
	return format.VariantFourSymbol
}

// Symbols returns the symbol set, indexed by group value.
func (c *FourSymbolCoder) Symbols() string {
	return c.symbols
}
