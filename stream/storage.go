package stream

import (
	"io"
	"io/fs"
)

// Storage is the raw, seekable backing store of a Stream.
//
// A Stream takes exclusive ownership of its Storage and closes it on Close.
// *os.File and *MemStorage satisfy Storage.
type Storage interface {
	io.ReadWriteSeeker
	io.Closer
}

type statter interface {
	Stat() (fs.FileInfo, error)
}

type sizer interface {
	Size() int64
}

// storageSize returns the raw length of s without moving its cursor.
func storageSize(s io.Seeker) (int64, error) {
	switch v := s.(type) {
	case sizer:
		return v.Size(), nil
	case statter:
		fi, err := v.Stat()
		if err != nil {
			return 0, err
		}

		return fi.Size(), nil
	}

	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}

	return end, nil
}
