package xptmat

import (
	"encoding/binary"
	"math"

	"github.com/go-xpt/xpt/compress"
	"github.com/go-xpt/xpt/internal/pool"
)

// column holds one materialized field's values, either directly as a typed
// slice or, if the caller opted in via WithCompressedColumns, as a flat
// byte encoding run through a compress.Codec. A compressed column is
// decompressed on every access; the decoded slice is not cached.
type column struct {
	numeric bool

	values []float64
	texts  []string

	codec      compress.Codec
	compressed []byte
}

func newNumericColumn(values []float64) column {
	return column{numeric: true, values: values}
}

func newTextColumn(texts []string) column {
	return column{numeric: false, texts: texts}
}

// compressWith replaces the column's in-memory slice with its compressed flat
// encoding, freeing the original slice. It is only called once, while
// Materialize is assembling the result, so no locking is needed.
func (c *column) compressWith(codec compress.Codec) error {
	var flat []byte
	if c.numeric {
		flat = encodeFloat64s(c.values)
	} else {
		flat = encodeStrings(c.texts)
	}

	compressed, err := codec.Compress(flat)
	if err != nil {
		return err
	}

	c.codec = codec
	c.compressed = compressed
	c.values = nil
	c.texts = nil

	return nil
}

// decodeFloats returns the column's values, decompressing them on each call
// if the column was stored compressed.
func (c *column) decodeFloats() ([]float64, error) {
	if c.codec == nil {
		return c.values, nil
	}

	flat, err := c.codec.Decompress(c.compressed)
	if err != nil {
		return nil, err
	}

	return decodeFloat64s(flat), nil
}

// decodeTexts returns the column's strings, decompressing them on each call
// if the column was stored compressed.
func (c *column) decodeTexts() ([]string, error) {
	if c.codec == nil {
		return c.texts, nil
	}

	flat, err := c.codec.Decompress(c.compressed)
	if err != nil {
		return nil, err
	}

	return decodeStrings(flat), nil
}

// encodeFloat64s packs values into a flat little-endian byte run using the
// observation-row scratch pool, and returns a fresh copy of it so the
// scratch goes back to the pool before any codec sees the bytes (a codec
// such as NoOpCompressor keeps the slice it is given).
func encodeFloat64s(values []float64) []byte {
	bb := pool.GetRowBuffer()
	defer pool.PutRowBuffer(bb)

	needed := len(values) * 8
	bb.Grow(needed)
	bb.B = bb.B[:needed]
	buf := bb.B
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}

	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}

func decodeFloat64s(buf []byte) []float64 {
	values := make([]float64, len(buf)/8)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return values
}

// encodeStrings packs a []string as a flat run of uint32-length-prefixed
// UTF-8 segments, so the compressed blob can be decompressed back into
// individual strings without any other side channel.
func encodeStrings(texts []string) []byte {
	size := 0
	for _, s := range texts {
		size += 4 + len(s)
	}

	buf := make([]byte, size)
	offset := 0
	for _, s := range texts {
		binary.LittleEndian.PutUint32(buf[offset:], uint32(len(s)))
		offset += 4
		copy(buf[offset:], s)
		offset += len(s)
	}
	return buf
}

func decodeStrings(buf []byte) []string {
	var texts []string
	offset := 0
	for offset < len(buf) {
		n := int(binary.LittleEndian.Uint32(buf[offset:]))
		offset += 4
		texts = append(texts, string(buf[offset:offset+n]))
		offset += n
	}
	return texts
}
