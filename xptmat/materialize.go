package xptmat

import (
	"fmt"

	"github.com/go-xpt/xpt/compress"
	"github.com/go-xpt/xpt/errs"
	"github.com/go-xpt/xpt/format"
	"github.com/go-xpt/xpt/internal/hash"
	"github.com/go-xpt/xpt/internal/options"
	"github.com/go-xpt/xpt/xpt"
)

// lookupCodec adapts compress.GetCodec's generic error into the
// materialization layer's own sentinel, so callers of WithCompressedColumns
// never see a compress-package error type.
func lookupCodec(ct format.CompressionType) (compress.Codec, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, errs.ErrUnsupportedCompression
	}
	return codec, nil
}

// Materialize drains r's remaining rows and returns a Materialized value
// holding one column per declared field, for O(1) indexed access instead of
// a second streaming pass.
//
// Calling Materialize on a Reader already partially or fully drained by
// Rows/Next/DictRows materializes only the rows that remain; this mirrors
// Next's own single-pass contract and is not specially guarded against.
func Materialize(r *xpt.Reader, opts ...MaterializeOption) (Materialized, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return Materialized{}, err
	}

	fields := r.Fields()
	variables := r.Variables()

	for name := range cfg.compressed {
		if _, ok := r.FieldPosition(name); !ok {
			return Materialized{}, fmt.Errorf("%w: %s", errs.ErrFieldNotFound, name)
		}
	}

	numericCols := make([][]float64, len(fields))
	textCols := make([][]string, len(fields))

	rowCount := 0
	for {
		row, ok, err := r.Next()
		if err != nil {
			return Materialized{}, fmt.Errorf("reading row %d: %w", rowCount, err)
		}
		if !ok {
			break
		}

		for i := range variables {
			if variables[i].Numeric {
				v, _ := row.Value(i)
				numericCols[i] = append(numericCols[i], v)
			} else {
				s, _ := row.Text(i)
				textCols[i] = append(textCols[i], s)
			}
		}
		rowCount++
	}

	fieldPos := make(map[uint64]int, len(fields))
	columns := make([]column, len(fields))
	for i, v := range variables {
		fieldPos[hash.FieldID(v.Name)] = i

		if v.Numeric {
			columns[i] = newNumericColumn(numericCols[i])
		} else {
			columns[i] = newTextColumn(textCols[i])
		}

		if ct, ok := cfg.compressed[v.Name]; ok {
			codec, err := lookupCodec(ct)
			if err != nil {
				return Materialized{}, err
			}
			if err := columns[i].compressWith(codec); err != nil {
				return Materialized{}, fmt.Errorf("compressing column %s: %w", v.Name, err)
			}
		}
	}

	return Materialized{
		fields:   fields,
		fieldPos: fieldPos,
		columns:  columns,
		rowCount: rowCount,
	}, nil
}
