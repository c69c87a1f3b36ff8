package compress

// ZstdCompressor compresses with Zstandard.
//
// It gives the best ratio of the supported algorithms and suits archival
// conversions where the encoded output is large. The implementation is
// klauspost/compress/zstd unless built with the "gozstd" tag and cgo, which
// switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
