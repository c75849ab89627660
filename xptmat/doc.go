// Package xptmat materializes an xpt.Reader's row stream into a columnar,
// randomly-addressable snapshot.
//
// Materialize drains the remaining rows once and returns a Materialized
// value holding one []float64 or []string column per declared field.
// ValueAt, TextAt, and RowAt then give O(1) indexed access in place of a
// second streaming pass over the source.
//
// Any subset of columns can be opted into in-memory compression via
// WithCompressedColumns, trading a decompression cost on every access to
// such a column for a smaller memory footprint while the snapshot is held.
//
//	r, _ := xpt.Open(src)
//	m, _ := xptmat.Materialize(r, xptmat.WithCompressedColumns(format.CompressionZstd, "NOTES"))
//	v, _ := m.ValueAt("AGE", 12)
package xptmat
