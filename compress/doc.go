// Package compress provides the optional payload compression applied by the
// conversion layer before data is expanded into codewords.
//
// The encoded file format itself never compresses: a resource is always a
// header followed by one codeword per byte. Compression is an opt-in step of
// the conversion pipeline, so the codewords carry the compressed payload and
// the same setting must be used to decode it:
//
//	plain -> Compress -> encode (ENC3_/ENC4_) -> file
//	file  -> decode   -> Decompress          -> plain
//
// Supported algorithms:
//   - None: no compression (format.CompressionNone)
//   - Zstd: best ratio, moderate speed (format.CompressionZstd); pure Go by
//     default, cgo gozstd with the "gozstd" build tag
//   - S2: balanced speed and ratio (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// Since each original byte costs four or six characters on disk, compressing
// first usually pays off for text, logs and other redundant data.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Zstd and LZ4 keep pooled
// encoder/decoder state internally.
package compress
