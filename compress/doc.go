// Package compress provides compression codecs for xptmat's in-memory
// materialized columns.
//
// XPT itself has no on-disk compression: every field is a fixed-width IBM
// float or padded character run. This package instead compresses a
// Materialize result's columnar cache, for callers who decode a whole
// dataset once and then hold it in memory for repeated random access.
//
// # Algorithms
//
//   - None (format.CompressionNone): returns the column bytes unchanged.
//   - Zstd (format.CompressionZstd): best ratio, higher CPU cost per access.
//   - S2 (format.CompressionS2): balanced ratio and speed.
//   - LZ4 (format.CompressionLZ4): fastest decompression, more modest ratio.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "column AGE")
//	compressed, err := codec.Compress(columnBytes)
//	original, err := codec.Decompress(compressed)
//
// Each codec implements Codec (Compressor + Decompressor) and is safe for
// concurrent use.
package compress
