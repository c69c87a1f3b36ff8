package stream

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/dnacoder/coder"
	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
	"github.com/arloliu/dnacoder/section"
)

// Detect reads the header from r and returns the variant it identifies.
//
// Exactly section.HeaderSize bytes are consumed when available. A resource
// shorter than the header, or one whose header matches no registered variant,
// yields errs.ErrUnrecognizedFormat; callers may then treat it as plain data.
func Detect(r io.Reader) (format.Variant, error) {
	buf := make([]byte, section.HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: header %q is shorter than %d bytes",
				errs.ErrUnrecognizedFormat, buf[:n], section.HeaderSize)
		}

		return 0, err
	}

	var h section.Header
	if err := h.Parse(buf); err != nil {
		return 0, err
	}

	return h.Variant, nil
}

// NewFromStorage detects the variant of non-empty storage and wraps it with the
// matching builtin coder. On error the caller keeps ownership of storage.
func NewFromStorage(storage Storage) (*Stream, error) {
	if _, err := storage.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	variant, err := Detect(storage)
	if err != nil {
		return nil, err
	}

	c, err := coder.Get(variant)
	if err != nil {
		return nil, err
	}

	return New(storage, c)
}

// NewWithVariant wraps storage with the builtin coder of variant, writing the
// header if storage is empty. On error the caller keeps ownership of storage.
func NewWithVariant(storage Storage, variant format.Variant) (*Stream, error) {
	c, err := coder.Get(variant)
	if err != nil {
		return nil, err
	}

	return New(storage, c)
}

// Open opens an existing encoded file for reading and writing and returns the
// stream matching its header.
func Open(path string) (*Stream, error) {
	return OpenFile(path, os.O_RDWR, 0)
}

// OpenReadOnly opens an existing encoded file for reading only.
// Writes to the returned stream fail with the file's error.
func OpenReadOnly(path string) (*Stream, error) {
	return OpenFile(path, os.O_RDONLY, 0)
}

// OpenFile opens an existing encoded file with the given flags and dispatches on
// its header. The file is closed on every error path.
//
// Returns:
//   - *Stream: Stream of the detected variant, positioned at logical offset 0
//   - error: errs.ErrUnrecognizedFormat when the header matches no variant,
//     or the error from os.OpenFile
func OpenFile(path string, flag int, perm os.FileMode) (*Stream, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}

	s, err := NewFromStorage(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return s, nil
}

// Create creates or truncates the named file and writes the header of variant.
func Create(path string, variant format.Variant) (*Stream, error) {
	return CreateFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644, variant)
}

// CreateFile opens the named file with the given flags and wraps it with the
// builtin coder of variant. An empty file gets the variant's header; a
// non-empty file must already carry it (os.O_RDWR|os.O_CREATE opens or creates).
// The file is closed on every error path.
func CreateFile(path string, flag int, perm os.FileMode, variant format.Variant) (*Stream, error) {
	c, err := coder.Get(variant)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}

	s, err := New(f, c)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	return s, nil
}
