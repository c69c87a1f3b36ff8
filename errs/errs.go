// Package errs defines the sentinel errors returned by dnacoder packages.
//
// Errors are wrapped with context using fmt.Errorf("%w: ...") at the call site,
// so callers should match them with errors.Is.
package errs

import "errors"

// Alphabet and codec errors.
var (
	// ErrAlphabetConstruction indicates a generated table violates the bijection
	// or fixed-length invariant. It signals a codec definition bug.
	ErrAlphabetConstruction = errors.New("alphabet construction failed")
	// ErrInvalidSymbols indicates a symbol set of the wrong size or with multi-byte symbols.
	ErrInvalidSymbols = errors.New("invalid symbol set")
	// ErrUnknownCodeword indicates a codeword absent from the reverse table.
	ErrUnknownCodeword = errors.New("unknown codeword")
)

// Header and format errors.
var (
	// ErrUnrecognizedFormat indicates a header that names no known variant,
	// including resources shorter than the header.
	ErrUnrecognizedFormat = errors.New("unrecognized format")
	// ErrVariantMismatch indicates an existing header of another variant than the coder.
	ErrVariantMismatch = errors.New("variant mismatch")
	// ErrInvalidHeaderSize indicates a header buffer that is not exactly five bytes.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidVariant indicates an unknown variant value or name in options or config.
	ErrInvalidVariant = errors.New("invalid variant")
)

// Stream errors.
var (
	// ErrTruncatedWord indicates fewer raw bytes remain than one full codeword.
	ErrTruncatedWord = errors.New("truncated codeword")
	// ErrRange indicates an offset and count that do not fit in the caller's buffer.
	ErrRange = errors.New("offset and count out of buffer range")
	// ErrNegativePosition indicates a seek target before the first codeword, or
	// before offset 0 of in-memory storage.
	ErrNegativePosition = errors.New("negative position")
	// ErrOffsetOutOfRange indicates a seek offset whose raw position overflows int64.
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrInvalidWhence indicates a whence other than io.SeekStart, io.SeekCurrent or io.SeekEnd.
	ErrInvalidWhence = errors.New("invalid whence")
	// ErrStreamClosed indicates an operation on a closed stream or storage.
	ErrStreamClosed = errors.New("stream closed")
)

// Conversion errors.
var (
	// ErrInvalidCompression indicates an unknown payload compression type or name.
	ErrInvalidCompression = errors.New("invalid compression type")
	// ErrInvalidBufferSize indicates a copy buffer size that is not positive.
	ErrInvalidBufferSize = errors.New("invalid buffer size")
	// ErrSameFile indicates a conversion whose source and destination resolve to one file.
	ErrSameFile = errors.New("source and destination are the same file")
)
