package xptmat

import (
	"github.com/go-xpt/xpt/format"
	"github.com/go-xpt/xpt/internal/options"
)

// config accumulates the settings Materialize applies before draining the
// row stream. It is unexported: callers only ever see MaterializeOption.
type config struct {
	compressed map[string]format.CompressionType
}

// MaterializeOption configures a single Materialize call.
type MaterializeOption = options.Option[*config]

// WithCompressedColumns opts the named fields into compressed in-memory
// storage using codec. Passing the same field name to more than one
// WithCompressedColumns call leaves the last one in effect.
//
// An unrecognized field name is only caught once Materialize has the
// reader's schema available, at which point it fails with
// ErrFieldNotFound. An unrecognized codec fails immediately with
// ErrUnsupportedCompression.
func WithCompressedColumns(codec format.CompressionType, fields ...string) MaterializeOption {
	return options.New(func(c *config) error {
		if _, err := lookupCodec(codec); err != nil {
			return err
		}

		if c.compressed == nil {
			c.compressed = make(map[string]format.CompressionType, len(fields))
		}
		for _, f := range fields {
			c.compressed[f] = codec
		}

		return nil
	})
}
