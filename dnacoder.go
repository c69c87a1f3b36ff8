// Package dnacoder stores arbitrary binary data as nucleotide text.
//
// Every logical byte is mapped to one fixed-width codeword over a small
// nucleotide alphabet, and the codewords are written after a five byte header
// naming the codec variant. A resource can then be read, written and seeked
// in logical byte coordinates as if it were the original binary file.
//
// # Variants
//
//   - ThreeSymbol ("ENC3_"): symbols A, C and G; each byte is six base-3 digits,
//     most significant first (0x00 -> "AAAAAA", 0xff -> "CAACCA")
//   - FourSymbol ("ENC4_"): symbols A, C, G and T; each byte is four 2-bit
//     groups, most significant first (0x41 -> "CAAC", 0xff -> "TTTT")
//
// # Basic Usage
//
// Creating a resource and writing to it:
//
//	import "github.com/arloliu/dnacoder"
//
//	s, _ := dnacoder.Create("data.dna", format.VariantFourSymbol)
//	defer s.Close()
//	s.Write([]byte("hello"))
//
// Reading it back, whatever its variant:
//
//	s, _ := dnacoder.Open("data.dna")
//	defer s.Close()
//	s.Seek(1, io.SeekStart)
//	b, _ := s.ReadByte() // 'e'
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stream and
// convert packages. For custom alphabets use the coder package directly, and for
// whole-file conversion with payload compression use convert.Converter.
package dnacoder

import (
	"bytes"
	"io"

	"github.com/arloliu/dnacoder/format"
	"github.com/arloliu/dnacoder/stream"
)

// Open opens an existing resource for reading and writing.
//
// The variant is detected from the header. Use OpenReadOnly for files that must
// not be modified.
//
// Parameters:
//   - path: Path of the encoded file
//
// Returns:
//   - *stream.Stream: Stream positioned at logical offset 0
//   - error: errs.ErrUnrecognizedFormat if the header is unknown, or the open error
func Open(path string) (*stream.Stream, error) {
	return stream.Open(path)
}

// OpenReadOnly opens an existing resource for reading only.
func OpenReadOnly(path string) (*stream.Stream, error) {
	return stream.OpenReadOnly(path)
}

// Create creates or truncates the file at path and writes the header of variant.
//
// Parameters:
//   - path: Path of the file to create
//   - variant: format.VariantThreeSymbol or format.VariantFourSymbol
//
// Returns:
//   - *stream.Stream: Empty stream positioned at logical offset 0
//   - error: errs.ErrUnrecognizedFormat for an unknown variant, or the create error
//
// Example:
//
//	s, err := dnacoder.Create("out.dna", format.VariantThreeSymbol)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
func Create(path string, variant format.Variant) (*stream.Stream, error) {
	return stream.Create(path, variant)
}

// Detect reads the header from r and returns the variant it names.
func Detect(r io.Reader) (format.Variant, error) {
	return stream.Detect(r)
}

// NewThreeSymbolStream wraps storage with the ThreeSymbol codec.
//
// An empty storage receives the "ENC3_" header. A non-empty storage must already
// carry it, otherwise errs.ErrVariantMismatch or errs.ErrUnrecognizedFormat is returned.
// On error the storage is left open.
func NewThreeSymbolStream(storage stream.Storage) (*stream.Stream, error) {
	return stream.NewWithVariant(storage, format.VariantThreeSymbol)
}

// NewFourSymbolStream wraps storage with the FourSymbol codec.
// It behaves like NewThreeSymbolStream with the "ENC4_" header.
func NewFourSymbolStream(storage stream.Storage) (*stream.Stream, error) {
	return stream.NewWithVariant(storage, format.VariantFourSymbol)
}

// NewMemoryStream creates an empty in-memory stream of variant.
func NewMemoryStream(variant format.Variant) (*stream.Stream, *stream.MemStorage, error) {
	storage := &stream.MemStorage{}
	s, err := stream.NewWithVariant(storage, variant)
	if err != nil {
		return nil, nil, err
	}

	return s, storage, nil
}

// EncodeBytes encodes data into a complete in-memory resource, header included.
//
// Example:
//
//	raw, _ := dnacoder.EncodeBytes(format.VariantFourSymbol, []byte{0x41})
//	// raw == []byte("ENC4_CAAC")
func EncodeBytes(variant format.Variant, data []byte) ([]byte, error) {
	s, storage, err := NewMemoryStream(variant)
	if err != nil {
		return nil, err
	}
	if _, err := s.Write(data); err != nil {
		return nil, err
	}

	return storage.Bytes(), nil
}

// DecodeBytes decodes a complete in-memory resource of either variant.
//
// A trailing partial codeword is ignored; an unknown codeword returns
// errs.ErrUnknownCodeword.
func DecodeBytes(raw []byte) ([]byte, error) {
	s, err := stream.NewFromStorage(stream.NewMemStorage(raw))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if _, err := io.Copy(&out, s); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
