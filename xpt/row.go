package xpt

// Row is one decoded observation: an ordered tuple of values, one per
// declared variable, in declaration order.
//
// A numeric value is IEEE binary64 (NaN represents a SAS missing value); a
// character value is a right-trimmed, ISO-8859-1-decoded string.
type Row struct {
	Numerics []float64
	Texts    []string
	// kinds[i] reports whether field i is numeric; len(kinds) == number of
	// declared variables. Numerics/Texts are indexed independently of i,
	// via a parallel cursor, to avoid sparsely allocating one slice sized
	// to the full field count for the other kind.
	kinds      []bool
	numericIdx []int
	textIdx    []int
}

// NewRow assembles a Row from its parallel storage, for callers outside this
// package that reconstruct rows from a different backing store (xptmat's
// columnar materialization, in particular). Callers are responsible for
// keeping kinds/numericIdx/textIdx consistent with values/texts.
func NewRow(values []float64, texts []string, kinds []bool, numericIdx []int, textIdx []int) Row {
	return Row{
		Numerics:   values,
		Texts:      texts,
		kinds:      kinds,
		numericIdx: numericIdx,
		textIdx:    textIdx,
	}
}

// Value returns the numeric value at field index i and true, or (0, false)
// if field i is a character field.
func (r Row) Value(i int) (float64, bool) {
	if i < 0 || i >= len(r.kinds) || !r.kinds[i] {
		return 0, false
	}
	return r.Numerics[r.numericIdx[i]], true
}

// Text returns the character value at field index i and true, or ("",
// false) if field i is a numeric field.
func (r Row) Text(i int) (string, bool) {
	if i < 0 || i >= len(r.kinds) || r.kinds[i] {
		return "", false
	}
	return r.Texts[r.textIdx[i]], true
}

// Len returns the number of declared fields in the row.
func (r Row) Len() int {
	return len(r.kinds)
}
