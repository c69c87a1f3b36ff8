package section

import (
	"fmt"

	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
)

// HeaderSize is the fixed header size in bytes, shared by all variants.
const HeaderSize = 5

// Header is the fixed-size tag at the start of every encoded resource.
//
// Layout:
//
//	offset 0-4: ASCII magic, "ENC3_" or "ENC4_"
//
// There is no length field and no footer; the logical length is derived from
// the raw size of the resource.
type Header struct {
	// Variant is the codec variant identified by the magic.
	Variant format.Variant
}

// NewHeader creates the header for a registered variant.
func NewHeader(variant format.Variant) (Header, error) {
	if !variant.IsValid() {
		return Header{}, fmt.Errorf("%w: variant 0x%02x", errs.ErrUnrecognizedFormat, uint8(variant))
	}

	return Header{Variant: variant}, nil
}

// Parse parses the header from a byte slice.
// It returns errs.ErrInvalidHeaderSize if data is not exactly HeaderSize bytes, and
// errs.ErrUnrecognizedFormat if the bytes match no registered variant.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	for _, v := range format.Variants() {
		if string(data) == v.Magic() {
			h.Variant = v
			return nil
		}
	}

	return fmt.Errorf("%w: header %q", errs.ErrUnrecognizedFormat, data)
}

// Bytes serializes the header into a byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b, h.Variant.Magic())

	return b
}

// Magic returns the header tag.
func (h Header) Magic() string {
	return h.Variant.Magic()
}

func (h Header) String() string {
	return fmt.Sprintf("%s(%s)", h.Variant.Magic(), h.Variant)
}
