package stream

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/dnacoder/coder"
	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
	"github.com/arloliu/dnacoder/internal/pool"
	"github.com/arloliu/dnacoder/section"
)

// Stream exposes the decoded view of an encoded resource.
//
// Position, length and seek offsets are all in logical (decoded) bytes; each
// logical byte occupies WordLength raw bytes after the fixed header. A Stream is
// not safe for concurrent use.
type Stream struct {
	raw     Storage
	coder   coder.Coder
	header  section.Header
	wordLen int64
	word    []byte // scratch for single-word reads and writes
}

var (
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.ByteReader      = (*Stream)(nil)
	_ io.ByteWriter      = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
)

// New wraps storage with the given coder.
//
// If storage is empty, the coder's header is written at offset 0. Otherwise the
// existing header is read and must match the coder's variant. In both cases the
// cursor is left right after the header.
//
// Parameters:
//   - storage: Raw seekable storage; owned by the Stream on success
//   - c: Coder for the variant
//
// Returns:
//   - *Stream: The stream, positioned at logical offset 0
//   - error: errs.ErrUnrecognizedFormat for a foreign header, errs.ErrVariantMismatch
//     for a header of another variant, or an I/O error. On error the caller keeps
//     ownership of storage.
func New(storage Storage, c coder.Coder) (*Stream, error) {
	header, err := section.NewHeader(c.Variant())
	if err != nil {
		return nil, err
	}

	size, err := storageSize(storage)
	if err != nil {
		return nil, fmt.Errorf("stat storage: %w", err)
	}

	if size == 0 {
		if _, err := storage.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		if _, err := storage.Write(header.Bytes()); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	} else {
		existing, err := readHeader(storage)
		if err != nil {
			return nil, err
		}
		if existing.Variant != header.Variant {
			return nil, fmt.Errorf("%w: resource is %s, coder is %s",
				errs.ErrVariantMismatch, existing.Variant, header.Variant)
		}
	}

	return &Stream{
		raw:     storage,
		coder:   c,
		header:  header,
		wordLen: int64(c.WordLength()),
		word:    make([]byte, 0, c.WordLength()),
	}, nil
}

// readHeader reads and parses the header at raw offset 0, leaving the cursor after it.
func readHeader(r io.ReadSeeker) (section.Header, error) {
	var h section.Header

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return h, err
	}

	buf := make([]byte, section.HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return h, fmt.Errorf("%w: header %q is shorter than %d bytes",
				errs.ErrUnrecognizedFormat, buf[:n], section.HeaderSize)
		}

		return h, fmt.Errorf("read header: %w", err)
	}

	if err := h.Parse(buf); err != nil {
		return h, err
	}

	return h, nil
}

// Coder returns the coder of the stream.
func (s *Stream) Coder() coder.Coder {
	return s.coder
}

// Variant returns the codec variant of the stream.
func (s *Stream) Variant() format.Variant {
	return s.header.Variant
}

// Header returns the header written at the start of the resource.
func (s *Stream) Header() section.Header {
	return s.header
}

// WordLength returns the number of raw bytes per logical byte.
func (s *Stream) WordLength() int {
	return int(s.wordLen)
}

// Length returns the logical length: the number of whole codewords after the header.
func (s *Stream) Length() (int64, error) {
	if s.raw == nil {
		return 0, errs.ErrStreamClosed
	}

	size, err := storageSize(s.raw)
	if err != nil {
		return 0, err
	}

	return s.logicalLength(size), nil
}

// RawLength returns the size of the underlying storage, header included.
func (s *Stream) RawLength() (int64, error) {
	if s.raw == nil {
		return 0, errs.ErrStreamClosed
	}

	return storageSize(s.raw)
}

func (s *Stream) logicalLength(rawSize int64) int64 {
	if rawSize <= section.HeaderSize {
		return 0
	}

	return (rawSize - section.HeaderSize) / s.wordLen
}

// Position returns the current logical position.
func (s *Stream) Position() (int64, error) {
	if s.raw == nil {
		return 0, errs.ErrStreamClosed
	}

	cur, err := s.raw.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	return (cur - section.HeaderSize) / s.wordLen, nil
}

// SetPosition moves to the logical position pos, like Seek(pos, io.SeekStart).
func (s *Stream) SetPosition(pos int64) error {
	_, err := s.Seek(pos, io.SeekStart)
	return err
}

// Seek implements io.Seeker over logical offsets.
//
// io.SeekStart is relative to the first codeword, io.SeekCurrent to the current
// word, and io.SeekEnd to the end of the last whole codeword, so a trailing
// partial word is never a seek target. Seeking past the end is allowed; a
// following write extends the resource.
//
// Returns the new logical position.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.raw == nil {
		return 0, errs.ErrStreamClosed
	}

	if offset > math.MaxInt64/s.wordLen || offset < math.MinInt64/s.wordLen {
		return 0, fmt.Errorf("%w: %d", errs.ErrOffsetOutOfRange, offset)
	}
	delta := offset * s.wordLen

	var base int64
	switch whence {
	case io.SeekStart:
		base = section.HeaderSize
	case io.SeekCurrent:
		cur, err := s.raw.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, err
		}
		base = cur
	case io.SeekEnd:
		size, err := storageSize(s.raw)
		if err != nil {
			return 0, err
		}
		base = section.HeaderSize + s.logicalLength(size)*s.wordLen
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidWhence, whence)
	}

	if delta > 0 && base > math.MaxInt64-delta {
		return 0, fmt.Errorf("%w: %d", errs.ErrOffsetOutOfRange, offset)
	}
	target := base + delta
	if target < section.HeaderSize {
		return 0, fmt.Errorf("%w: logical offset %d", errs.ErrNegativePosition, (target-section.HeaderSize)/s.wordLen)
	}

	raw, err := s.raw.Seek(target, io.SeekStart)
	if err != nil {
		return 0, err
	}

	return (raw - section.HeaderSize) / s.wordLen, nil
}

// ReadByte reads and decodes one codeword.
//
// It returns io.EOF when no raw bytes remain, and errs.ErrTruncatedWord when
// fewer than WordLength raw bytes remain. On any error the cursor is left at
// the start of the offending word.
func (s *Stream) ReadByte() (byte, error) {
	if s.raw == nil {
		return 0, errs.ErrStreamClosed
	}

	word := s.word[:s.wordLen]
	n, err := io.ReadFull(s.raw, word)
	switch {
	case errors.Is(err, io.EOF):
		return 0, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		if rerr := s.rewind(n); rerr != nil {
			return 0, rerr
		}

		return 0, fmt.Errorf("%w: %d of %d bytes available", errs.ErrTruncatedWord, n, s.wordLen)
	case err != nil:
		return 0, err
	}

	b, err := s.coder.DecodeBytes(word)
	if err != nil {
		if rerr := s.rewind(n); rerr != nil {
			return 0, rerr
		}

		return 0, err
	}

	return b, nil
}

// Read implements io.Reader.
//
// It issues one raw read of len(p)*WordLength bytes and decodes every whole
// codeword into p. A trailing partial codeword is not counted and the cursor is
// moved back to its start. io.EOF is returned once no whole codeword remains.
func (s *Stream) Read(p []byte) (int, error) {
	if s.raw == nil {
		return 0, errs.ErrStreamClosed
	}
	if len(p) == 0 {
		return 0, nil
	}

	bb := pool.GetWordBuffer()
	defer pool.PutWordBuffer(bb)

	bb.Resize(len(p) * int(s.wordLen))
	got, rerr := io.ReadFull(s.raw, bb.B)
	if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
		rerr = nil
	}

	words := got / int(s.wordLen)
	for i := 0; i < words; i++ {
		start := i * int(s.wordLen)
		b, err := s.coder.DecodeBytes(bb.B[start : start+int(s.wordLen)])
		if err != nil {
			if seekErr := s.rewind(got - start); seekErr != nil {
				return i, seekErr
			}

			return i, err
		}
		p[i] = b
	}

	if rem := got % int(s.wordLen); rem > 0 {
		if err := s.rewind(rem); err != nil {
			return words, err
		}
	}

	if rerr != nil {
		return words, rerr
	}
	if words == 0 {
		return 0, io.EOF
	}

	return words, nil
}

// ReadInto reads up to count logical bytes into buf[offset:offset+count].
// It returns errs.ErrRange if the window does not fit in buf.
func (s *Stream) ReadInto(buf []byte, offset, count int) (int, error) {
	if err := checkRange(buf, offset, count); err != nil {
		return 0, err
	}

	return s.Read(buf[offset : offset+count])
}

// Write implements io.Writer.
//
// All bytes of p are encoded into one buffer and written with a single raw
// write. On a short raw write the number of whole codewords written is returned.
func (s *Stream) Write(p []byte) (int, error) {
	if s.raw == nil {
		return 0, errs.ErrStreamClosed
	}
	if len(p) == 0 {
		return 0, nil
	}

	bb := pool.GetWordBuffer()
	defer pool.PutWordBuffer(bb)

	bb.Grow(len(p) * int(s.wordLen))
	for _, b := range p {
		bb.B = s.coder.AppendWord(bb.B, b)
	}

	n, err := s.raw.Write(bb.B)
	if err != nil {
		return n / int(s.wordLen), err
	}
	if n < len(bb.B) {
		return n / int(s.wordLen), io.ErrShortWrite
	}

	return len(p), nil
}

// WriteFrom writes buf[offset:offset+count].
// It returns errs.ErrRange if the window does not fit in buf.
func (s *Stream) WriteFrom(buf []byte, offset, count int) (int, error) {
	if err := checkRange(buf, offset, count); err != nil {
		return 0, err
	}

	return s.Write(buf[offset : offset+count])
}

// WriteByte encodes b and writes its codeword.
func (s *Stream) WriteByte(b byte) error {
	if s.raw == nil {
		return errs.ErrStreamClosed
	}

	s.word = s.coder.AppendWord(s.word[:0], b)
	n, err := s.raw.Write(s.word)
	if err != nil {
		return err
	}
	if n < len(s.word) {
		return io.ErrShortWrite
	}

	return nil
}

// Close releases the underlying storage. Every later call returns errs.ErrStreamClosed.
func (s *Stream) Close() error {
	if s.raw == nil {
		return errs.ErrStreamClosed
	}

	raw := s.raw
	s.raw = nil

	return raw.Close()
}

// rewind moves the raw cursor back by n bytes.
func (s *Stream) rewind(n int) error {
	if n == 0 {
		return nil
	}
	_, err := s.raw.Seek(-int64(n), io.SeekCurrent)

	return err
}

func checkRange(buf []byte, offset, count int) error {
	if offset < 0 || count < 0 || offset > len(buf)-count {
		return fmt.Errorf("%w: offset %d count %d buffer %d", errs.ErrRange, offset, count, len(buf))
	}

	return nil
}
