// Package pool provides pooled byte buffers for raw codeword batches and copy loops.
package pool

import "sync"

const (
	WordBufferDefaultSize  = 1024 * 4    // 4KiB, a few hundred encoded bytes
	WordBufferMaxThreshold = 1024 * 1024 // 1MiB
	CopyBufferDefaultSize  = 1024 * 32   // 32KiB, one logical copy chunk
	CopyBufferMaxThreshold = 1024 * 1024 * 4
)

// ByteBuffer is a growable byte slice that can be returned to a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new empty ByteBuffer with the specified capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer, keeping the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by at least WordBufferDefaultSize, buffers above four times
// that size grow by 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := WordBufferDefaultSize
	if cap(bb.B) > 4*WordBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Resize sets the length of the buffer to n, growing it if necessary.
// Bytes beyond the previous length are not cleared.
func (bb *ByteBuffer) Resize(n int) {
	if n < 0 {
		panic("Resize: negative length")
	}
	if n > cap(bb.B) {
		bb.Grow(n - len(bb.B))
	}
	bb.B = bb.B[:n]
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being
// retained, so one huge write does not pin memory for the process lifetime.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	wordDefaultPool = NewByteBufferPool(WordBufferDefaultSize, WordBufferMaxThreshold)
	copyDefaultPool = NewByteBufferPool(CopyBufferDefaultSize, CopyBufferMaxThreshold)
)

// GetWordBuffer retrieves a buffer for encoded codewords.
func GetWordBuffer() *ByteBuffer {
	return wordDefaultPool.Get()
}

// PutWordBuffer returns a codeword buffer to the pool.
func PutWordBuffer(bb *ByteBuffer) {
	wordDefaultPool.Put(bb)
}

// GetCopyBuffer retrieves a buffer for logical-byte copy loops.
func GetCopyBuffer() *ByteBuffer {
	return copyDefaultPool.Get()
}

// PutCopyBuffer returns a copy buffer to the pool.
func PutCopyBuffer(bb *ByteBuffer) {
	copyDefaultPool.Put(bb)
}
