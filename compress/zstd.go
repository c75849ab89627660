package compress

// ZstdCompressor provides Zstandard compression for materialized columns
// kept in memory after a bulk decode, trading compression speed for ratio.
//
// Good fit for columns that are rarely touched after Materialize finishes,
// or whose values repeat heavily (a character column of a handful of
// distinct codes, a numeric column dominated by a default value).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
