//go:build nobuild

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress encodes a flattened column with cgo-backed Zstd at a moderate
// level, favoring ratio for columns kept around after a bulk load.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress restores a column previously compressed with Compress.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
