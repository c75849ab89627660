// Package format defines small value types shared between the xptmat
// materialization layer and the compress codec registry, kept separate from
// both to avoid an import cycle between them.
package format

// CompressionType identifies the algorithm used to compress a materialized
// column's in-memory representation. It has no bearing on the XPT wire
// format itself, which is never compressed.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores a column's bytes uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd compresses a column with Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 compresses a column with S2 (a Snappy derivative).
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 compresses a column with LZ4.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
