// Package stream provides a random-access view of encoded resources in terms of
// their decoded bytes.
//
// # Overview
//
// A Stream wraps raw seekable Storage (usually an *os.File) holding a 5-byte
// header followed by fixed-length codewords. Reads decode, writes encode, and
// position, length and seek offsets are all expressed in logical bytes:
//
//	rawCursor = HeaderSize + position*WordLength
//	length    = (rawSize - HeaderSize) / WordLength
//
// # Basic Usage
//
// Creating a resource:
//
//	s, err := stream.Create("data.dna", format.VariantFourSymbol)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	_, err = s.Write([]byte("hello"))
//
// Opening an existing resource, whatever its variant:
//
//	s, err := stream.Open("data.dna")
//	if errors.Is(err, errs.ErrUnrecognizedFormat) {
//	    // not encoded; treat as plain data
//	}
//	defer s.Close()
//
//	s.Seek(3, io.SeekStart)
//	b, err := s.ReadByte() // 'l'
//
// # Truncated Resources
//
// A resource whose raw size leaves a partial codeword after the last whole one
// reports only the whole words in Length. ReadByte on the partial word fails
// with errs.ErrTruncatedWord; Read stops before it and then returns io.EOF.
//
// # Thread Safety
//
// A Stream is not safe for concurrent use; callers serialize access. Coders
// are immutable and shared between streams of the same variant.
package stream
