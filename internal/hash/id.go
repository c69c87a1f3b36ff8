// Package hash provides xxHash64 digests of logical content.
//
// Digests are informational: converters report them so a caller can compare
// the input of an encode with the output of the matching decode. They are not
// stored in encoded resources.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the xxHash64 of data written to it. It implements io.Writer.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds p to the digest. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	return d.d.Write(p)
}

// Sum64 returns the current digest value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}

// Reset clears the digest.
func (d *Digest) Reset() {
	d.d.Reset()
}

// Sum returns the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Format renders a digest the way converters log and print it.
func Format(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
