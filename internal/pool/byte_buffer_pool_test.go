package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_MustWrite_And_Reset(t *testing.T) {
	bb := NewByteBuffer(RecordBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.B)

	originalCap := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(RecordBufferDefaultSize)
	bb.MustWrite([]byte("test data"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(RecordBufferDefaultSize)
	bb.B = append(bb.B, make([]byte, RecordBufferDefaultSize)...)

	bb.Grow(1024)

	assert.GreaterOrEqual(t, cap(bb.B), RecordBufferDefaultSize+1024)
	assert.Equal(t, RecordBufferDefaultSize, len(bb.B), "Grow must not change length")
}

func TestGetPutRecordBuffer(t *testing.T) {
	bb := GetRecordBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, cap(bb.B), RecordBufferDefaultSize)

	bb.MustWrite([]byte("namestr scratch"))
	PutRecordBuffer(bb)
	assert.Equal(t, 0, bb.Len(), "Put should reset before pooling")
}

func TestGetPutRowBuffer_DiscardsOversized(t *testing.T) {
	bb := GetRowBuffer()
	bb.Grow(2 * RowBufferMaxThreshold)
	assert.Greater(t, cap(bb.B), RowBufferMaxThreshold)

	PutRowBuffer(bb) // should be discarded, not pooled

	bb2 := GetRowBuffer()
	assert.LessOrEqual(t, cap(bb2.B), RowBufferMaxThreshold*2)
}

func TestPutRecordBuffer_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		PutRecordBuffer(nil)
	})
}

func TestBufferPool_ConcurrentAccess(t *testing.T) {
	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			bb := GetRecordBuffer()
			bb.MustWrite([]byte("record"))
			assert.Equal(t, 6, bb.Len())
			PutRecordBuffer(bb)
		}()
	}

	wg.Wait()
}
