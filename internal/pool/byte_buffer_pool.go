package pool

import (
	"io"
	"sync"
)

// Default and max-retained sizes for the two buffer pools used while reading
// an XPT stream: small scratch for header/namestr record reassembly, larger
// scratch for observation-row and materialization buffering.
const (
	RecordBufferDefaultSize  = 1024 * 4    // 4KiB, a few namestr records
	RecordBufferMaxThreshold = 1024 * 64   // 64KiB
	RowBufferDefaultSize     = 1024 * 64   // 64KiB
	RowBufferMaxThreshold    = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice wrapper sized for reuse via sync.Pool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
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

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Growth strategy: buffers of up to 4*RecordBufferDefaultSize capacity grow
// by RecordBufferDefaultSize to minimize reallocations; larger buffers grow
// by 25% of current capacity to balance memory usage against reallocation
// cost. Either way, growth is at least requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := RecordBufferDefaultSize
	if cap(bb.B) > 4*RecordBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers via sync.Pool, discarding any buffer that
// has grown past maxThreshold to avoid retaining outsized allocations.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the
// specified default size. maxThreshold of 0 means no upper limit.
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

// Get retrieves a ByteBuffer from the pool.
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
	recordPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)
	rowPool    = NewByteBufferPool(RowBufferDefaultSize, RowBufferMaxThreshold)
)

// GetRecordBuffer retrieves a ByteBuffer from the header/namestr record pool.
func GetRecordBuffer() *ByteBuffer {
	return recordPool.Get()
}

// PutRecordBuffer returns a ByteBuffer to the header/namestr record pool.
func PutRecordBuffer(bb *ByteBuffer) {
	recordPool.Put(bb)
}

// GetRowBuffer retrieves a ByteBuffer from the observation-row pool.
func GetRowBuffer() *ByteBuffer {
	return rowPool.Get()
}

// PutRowBuffer returns a ByteBuffer to the observation-row pool.
func PutRowBuffer(bb *ByteBuffer) {
	rowPool.Put(bb)
}
