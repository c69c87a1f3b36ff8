package stream

import (
	"fmt"
	"io"

	"github.com/arloliu/dnacoder/errs"
)

// MemStorage is an in-memory Storage.
//
// Writes past the end extend the buffer, zero-filling any gap, the same way a
// file does. The zero value is an empty storage ready to use.
type MemStorage struct {
	buf    []byte
	off    int64
	closed bool
}

var _ Storage = (*MemStorage)(nil)

// NewMemStorage creates a storage holding a copy of data, positioned at offset 0.
func NewMemStorage(data []byte) *MemStorage {
	return &MemStorage{buf: append([]byte(nil), data...)}
}

// Bytes returns the raw content. The slice aliases the storage until the next write.
func (m *MemStorage) Bytes() []byte {
	return m.buf
}

// Size returns the raw length.
func (m *MemStorage) Size() int64 {
	return int64(len(m.buf))
}

// Read implements io.Reader.
func (m *MemStorage) Read(p []byte) (int, error) {
	if m.closed {
		return 0, errs.ErrStreamClosed
	}
	if m.off >= int64(len(m.buf)) {
		return 0, io.EOF
	}

	n := copy(p, m.buf[m.off:])
	m.off += int64(n)

	return n, nil
}

// Write implements io.Writer.
func (m *MemStorage) Write(p []byte) (int, error) {
	if m.closed {
		return 0, errs.ErrStreamClosed
	}

	end := m.off + int64(len(p))
	if end > int64(len(m.buf)) {
		if end > int64(cap(m.buf)) {
			grown := make([]byte, end, max(end, 2*int64(cap(m.buf))))
			copy(grown, m.buf)
			m.buf = grown
		} else {
			prev := len(m.buf)
			m.buf = m.buf[:end]
			clear(m.buf[prev:])
		}
	}

	n := copy(m.buf[m.off:], p)
	m.off += int64(n)

	return n, nil
}

// Seek implements io.Seeker.
func (m *MemStorage) Seek(offset int64, whence int) (int64, error) {
	if m.closed {
		return 0, errs.ErrStreamClosed
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.off + offset
	case io.SeekEnd:
		abs = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidWhence, whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrNegativePosition, abs)
	}
	m.off = abs

	return abs, nil
}

// Close implements io.Closer. The content stays readable through Bytes.
func (m *MemStorage) Close() error {
	if m.closed {
		return errs.ErrStreamClosed
	}
	m.closed = true

	return nil
}
