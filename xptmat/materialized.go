package xptmat

import (
	"github.com/go-xpt/xpt/internal/hash"
	"github.com/go-xpt/xpt/xpt"
)

// Materialized is a fully-decoded, columnar snapshot of an XPT dataset's
// remaining rows, built once by Materialize. It is immutable after
// construction and safe for concurrent reads.
type Materialized struct {
	fields   []string
	fieldPos map[uint64]int
	columns  []column
	rowCount int
}

// Fields returns the materialized field names, in declaration order.
func (m Materialized) Fields() []string {
	return m.fields
}

// RowCount returns the number of rows held in the materialized snapshot.
func (m Materialized) RowCount() int {
	return m.rowCount
}

// ValueAt returns the numeric value of field at row, and true. It returns
// (0, false) if field is unknown, field is a character column, or row is
// out of range.
func (m Materialized) ValueAt(field string, row int) (float64, bool) {
	i, ok := m.fieldPos[hash.FieldID(field)]
	if !ok || !m.columns[i].numeric {
		return 0, false
	}
	if row < 0 || row >= m.rowCount {
		return 0, false
	}

	values, err := m.columns[i].decodeFloats()
	if err != nil || row >= len(values) {
		return 0, false
	}
	return values[row], true
}

// TextAt returns the character value of field at row, and true. It returns
// ("", false) if field is unknown, field is a numeric column, or row is
// out of range.
func (m Materialized) TextAt(field string, row int) (string, bool) {
	i, ok := m.fieldPos[hash.FieldID(field)]
	if !ok || m.columns[i].numeric {
		return "", false
	}
	if row < 0 || row >= m.rowCount {
		return "", false
	}

	texts, err := m.columns[i].decodeTexts()
	if err != nil || row >= len(texts) {
		return "", false
	}
	return texts[row], true
}

// RowAt reassembles row as an xpt.Row, decompressing any compressed
// columns along the way. It returns (xpt.Row{}, false) if row is out of
// range.
func (m Materialized) RowAt(row int) (xpt.Row, bool) {
	if row < 0 || row >= m.rowCount {
		return xpt.Row{}, false
	}

	values := make([]float64, 0, len(m.columns))
	texts := make([]string, 0, len(m.columns))
	kinds := make([]bool, len(m.columns))
	numericIdx := make([]int, len(m.columns))
	textIdx := make([]int, len(m.columns))

	for i, c := range m.columns {
		kinds[i] = c.numeric
		if c.numeric {
			decoded, err := c.decodeFloats()
			if err != nil || row >= len(decoded) {
				return xpt.Row{}, false
			}
			numericIdx[i] = len(values)
			values = append(values, decoded[row])
		} else {
			decoded, err := c.decodeTexts()
			if err != nil || row >= len(decoded) {
				return xpt.Row{}, false
			}
			textIdx[i] = len(texts)
			texts = append(texts, decoded[row])
		}
	}

	return xpt.NewRow(values, texts, kinds, numericIdx, textIdx), true
}
