package coder

import "github.com/arloliu/dnacoder/format"

const (
	// DefaultThreeSymbols are the symbols for digits 0, 1 and 2.
	DefaultThreeSymbols = "ACG"
	// ThreeSymbolWordLength is the number of base-3 digits per byte.
	ThreeSymbolWordLength = 6
)

var defaultThreeSymbolCoder = MustNewThreeSymbolCoder(DefaultThreeSymbols)

// ThreeSymbolCoder writes each byte as six base-3 digits, most significant first.
//
// 3^6 = 729 words are available for 256 values; the high words are never used
// and the zero-symbol padding is part of the format.
type ThreeSymbolCoder struct {
	*Alphabet
	symbols string
}

var _ Coder = (*ThreeSymbolCoder)(nil)

// NewThreeSymbolCoder builds a three-symbol coder over the given symbols.
//
// Parameters:
//   - symbols: Exactly three printable ASCII characters for digits 0, 1, 2
//
// Returns:
//   - *ThreeSymbolCoder: The coder
//   - error: errs.ErrInvalidSymbols for a bad symbol set, errs.ErrAlphabetConstruction
//     when symbols repeat
func NewThreeSymbolCoder(symbols string) (*ThreeSymbolCoder, error) {
	table, err := symbolTable(symbols, 3)
	if err != nil {
		return nil, err
	}

	alphabet, err := Build(func(b byte) string {
		var word [ThreeSymbolWordLength]byte
		v := int(b)
		for i := ThreeSymbolWordLength - 1; i >= 0; i-- {
			word[i] = table[v%3]
			v /= 3
		}

		return string(word[:])
	})
	if err != nil {
		return nil, err
	}

	return &ThreeSymbolCoder{Alphabet: alphabet, symbols: symbols}, nil
}

// MustNewThreeSymbolCoder is like NewThreeSymbolCoder but panics on error.
func MustNewThreeSymbolCoder(symbols string) *ThreeSymbolCoder {
	c, err := NewThreeSymbolCoder(symbols)
	if err != nil {
		panic(err)
	}

	return c
}

// Variant returns format.VariantThreeSymbol.
func (c *ThreeSymbolCoder) Variant() format.Variant {
	return format.VariantThreeSymbol
}

// Symbols returns the symbol set, indexed by digit value.
func (c *ThreeSymbolCoder) Symbols() string {
	return c.symbols
}
