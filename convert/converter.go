package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arloliu/dnacoder/compress"
	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
	"github.com/arloliu/dnacoder/internal/hash"
	"github.com/arloliu/dnacoder/internal/logging"
	"github.com/arloliu/dnacoder/internal/options"
	"github.com/arloliu/dnacoder/internal/pool"
	"github.com/arloliu/dnacoder/stream"
)

// Result describes a finished conversion.
type Result struct {
	// PlainBytes is the number of original, unencoded bytes read or written.
	PlainBytes int64
	// EncodedBytes is the logical length written to or read from the stream.
	// It differs from PlainBytes only when payload compression is enabled.
	EncodedBytes int64
	// RawBytes is the number of codeword bytes, EncodedBytes*WordLength.
	RawBytes int64
	// Digest is the xxHash64 of the plain bytes.
	Digest uint64
}

// Converter copies data between plain and encoded resources.
//
// A Converter is immutable after New and may be shared between goroutines;
// the streams passed to it may not.
type Converter struct {
	cfg   Config
	codec compress.Codec
}

// New creates a Converter.
//
// Parameters:
//   - opts: WithVariant, WithCompression, WithBufferSize, WithLogger
//
// Returns:
//   - *Converter: The converter
//   - error: The first invalid option
func New(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Converter{cfg: *cfg, codec: codec}, nil
}

// Variant returns the variant used for new resources.
func (c *Converter) Variant() format.Variant {
	return c.cfg.variant
}

// Compression returns the payload compression.
func (c *Converter) Compression() format.CompressionType {
	return c.cfg.compression
}

// Encode reads src to EOF and writes it to dst at dst's current position.
func (c *Converter) Encode(dst *stream.Stream, src io.Reader) (Result, error) {
	digest := hash.NewDigest()
	tee := io.TeeReader(src, digest)

	var res Result
	if c.cfg.compression == format.CompressionNone {
		n, err := c.copy(dst, tee)
		res = c.result(dst, n, n, digest)
		if err != nil {
			return res, fmt.Errorf("encode: %w", err)
		}

		return res, nil
	}

	payload, err := io.ReadAll(tee)
	if err != nil {
		return res, fmt.Errorf("encode: read input: %w", err)
	}
	compressed, err := c.codec.Compress(payload)
	if err != nil {
		return res, fmt.Errorf("encode: %s compression: %w", c.cfg.compression, err)
	}

	n, err := dst.Write(compressed)
	res = c.result(dst, int64(len(payload)), int64(n), digest)
	if err != nil {
		return res, fmt.Errorf("encode: %w", err)
	}

	return res, nil
}

// Decode reads src from its current position to EOF and writes the plain data to dst.
func (c *Converter) Decode(dst io.Writer, src *stream.Stream) (Result, error) {
	digest := hash.NewDigest()
	out := io.MultiWriter(dst, digest)

	var res Result
	if c.cfg.compression == format.CompressionNone {
		prefix := &prefixWriter{}
		n, err := c.copy(io.MultiWriter(out, prefix), src)
		res = c.result(src, n, n, digest)
		if err != nil {
			return res, fmt.Errorf("decode: %w", err)
		}
		if looksCompressed(prefix.bytes()) {
			c.cfg.logger.Warn("decoded payload starts with a zstd frame; was it encoded with compression?", logging.Fields{
				"plain_bytes": res.PlainBytes,
			})
		}

		return res, nil
	}

	payload, err := io.ReadAll(src)
	res = c.result(src, 0, int64(len(payload)), digest)
	if err != nil {
		return res, fmt.Errorf("decode: %w", err)
	}
	plain, err := c.codec.Decompress(payload)
	if err != nil {
		return res, fmt.Errorf("decode: %s decompression: %w", c.cfg.compression, err)
	}

	n, err := out.Write(plain)
	res = c.result(src, int64(n), int64(len(payload)), digest)
	if err != nil {
		return res, fmt.Errorf("decode: write output: %w", err)
	}

	return res, nil
}

// Transcode copies the logical bytes of src, from its current position, into dst.
// The payload is copied as-is, compressed or not.
func (c *Converter) Transcode(dst, src *stream.Stream) (Result, error) {
	digest := hash.NewDigest()

	n, err := c.copy(io.MultiWriter(dst, digest), src)
	res := c.result(dst, n, n, digest)
	if err != nil {
		return res, fmt.Errorf("transcode: %w", err)
	}

	return res, nil
}

// EncodeFile encodes the plain file at srcPath into a new resource at dstPath.
func (c *Converter) EncodeFile(srcPath, dstPath string) (res Result, err error) {
	if err := checkDistinct(srcPath, dstPath); err != nil {
		return res, err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return res, err
	}
	defer closeInto(src, &err)

	dst, err := stream.Create(dstPath, c.cfg.variant)
	if err != nil {
		return res, err
	}
	defer closeInto(dst, &err)

	res, err = c.Encode(dst, src)
	c.log("encoded", srcPath, dstPath, dst.Variant(), res, err)

	return res, err
}

// DecodeFile decodes the resource at srcPath, whatever its variant, into a plain file at dstPath.
func (c *Converter) DecodeFile(srcPath, dstPath string) (res Result, err error) {
	if err := checkDistinct(srcPath, dstPath); err != nil {
		return res, err
	}

	src, err := stream.OpenReadOnly(srcPath)
	if err != nil {
		return res, err
	}
	defer closeInto(src, &err)

	dst, err := os.Create(dstPath)
	if err != nil {
		return res, err
	}
	defer closeInto(dst, &err)

	res, err = c.Decode(dst, src)
	c.log("decoded", srcPath, dstPath, src.Variant(), res, err)

	return res, err
}

// TranscodeFile re-encodes the resource at srcPath with the Converter's variant into dstPath.
func (c *Converter) TranscodeFile(srcPath, dstPath string) (res Result, err error) {
	if err := checkDistinct(srcPath, dstPath); err != nil {
		return res, err
	}

	src, err := stream.OpenReadOnly(srcPath)
	if err != nil {
		return res, err
	}
	defer closeInto(src, &err)

	dst, err := stream.Create(dstPath, c.cfg.variant)
	if err != nil {
		return res, err
	}
	defer closeInto(dst, &err)

	res, err = c.Transcode(dst, src)
	c.log("transcoded", srcPath, dstPath, dst.Variant(), res, err)

	return res, err
}

func (c *Converter) copy(dst io.Writer, src io.Reader) (int64, error) {
	bb := pool.GetCopyBuffer()
	defer pool.PutCopyBuffer(bb)

	bb.Resize(c.cfg.bufferSize)

	return io.CopyBuffer(dst, src, bb.B)
}

func (c *Converter) result(s *stream.Stream, plain, encoded int64, digest *hash.Digest) Result {
	return Result{
		PlainBytes:   plain,
		EncodedBytes: encoded,
		RawBytes:     encoded * int64(s.WordLength()),
		Digest:       digest.Sum64(),
	}
}

func (c *Converter) log(op, srcPath, dstPath string, variant format.Variant, res Result, err error) {
	fields := logging.Fields{
		"src":         srcPath,
		"dst":         dstPath,
		"variant":     variant.String(),
		"compression": c.cfg.compression.String(),
		"plain_bytes": res.PlainBytes,
		"raw_bytes":   res.RawBytes,
		"digest":      hash.Format(res.Digest),
	}
	if err != nil {
		fields["error"] = err.Error()
		c.cfg.logger.Error(op+" failed", fields)

		return
	}

	c.cfg.logger.Info(op, fields)
}

func checkDistinct(srcPath, dstPath string) error {
	srcAbs, err := filepath.Abs(srcPath)
	if err != nil {
		return err
	}
	dstAbs, err := filepath.Abs(dstPath)
	if err != nil {
		return err
	}
	if srcAbs == dstAbs {
		return fmt.Errorf("%w: %s", errs.ErrSameFile, srcPath)
	}

	if srcInfo, err := os.Stat(srcAbs); err == nil {
		if dstInfo, err := os.Stat(dstAbs); err == nil && os.SameFile(srcInfo, dstInfo) {
			return fmt.Errorf("%w: %s and %s", errs.ErrSameFile, srcPath, dstPath)
		}
	}

	return nil
}

// zstdMagic starts every zstd frame. S2 and LZ4 blocks carry no magic.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func looksCompressed(prefix []byte) bool {
	return bytes.HasPrefix(prefix, zstdMagic)
}

// prefixWriter keeps the first bytes written through it.
type prefixWriter struct {
	buf [4]byte
	n   int
}

func (w *prefixWriter) Write(p []byte) (int, error) {
	w.n += copy(w.buf[w.n:], p)
	return len(p), nil
}

func (w *prefixWriter) bytes() []byte {
	return w.buf[:w.n]
}

// closeInto closes c and joins a close error into *err.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && !errors.Is(cerr, errs.ErrStreamClosed) {
		*err = errors.Join(*err, cerr)
	}
}
