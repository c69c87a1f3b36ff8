package format

import "strings"

type (
	Variant         uint8
	CompressionType uint8
)

const (
	VariantThreeSymbol Variant = 0x3 // VariantThreeSymbol represents the 3-symbol, 6-character word codec.
	VariantFourSymbol  Variant = 0x4 // VariantFourSymbol represents the 4-symbol, 4-character word codec.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Magic tags written at the start of every encoded resource.
const (
	MagicThreeSymbol = "ENC3_"
	MagicFourSymbol  = "ENC4_"
)

// Variants returns all registered codec variants in header-matching order.
func Variants() []Variant {
	return []Variant{VariantThreeSymbol, VariantFourSymbol}
}

// Magic returns the header tag of the variant, or an empty string for unknown variants.
func (v Variant) Magic() string {
	switch v {
	case VariantThreeSymbol:
		return MagicThreeSymbol
	case VariantFourSymbol:
		return MagicFourSymbol
	default:
		return ""
	}
}

// IsValid reports whether v is a registered variant.
func (v Variant) IsValid() bool {
	return v.Magic() != ""
}

func (v Variant) String() string {
	switch v {
	case VariantThreeSymbol:
		return "ThreeSymbol"
	case VariantFourSymbol:
		return "FourSymbol"
	default:
		return "Unknown"
	}
}

// ParseVariant parses a variant name as accepted on the command line.
// It accepts "three", "3", "enc3" and the String() form, case-insensitively
// (and the equivalent four-symbol spellings).
func ParseVariant(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "three", "3", "enc3", "threesymbol":
		return VariantThreeSymbol, true
	case "four", "4", "enc4", "foursymbol":
		return VariantFourSymbol, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a compression name, case-insensitively.
// An empty name means CompressionNone.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
